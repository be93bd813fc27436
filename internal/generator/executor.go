package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// ErrCancelled is returned when the user cancels at a conflict prompt.
var ErrCancelled = errors.New("generation cancelled")

// ExecuteOptions configures execution behavior
type ExecuteOptions struct {
	DryRun bool
	Force  bool
	// Resolver decides what happens to targets that exist with different
	// content. Without one (and without Force) such targets fail validation.
	Resolver *Resolver
	Writer   io.Writer // Where to write output (defaults to os.Stdout)
}

// Execute runs operations with validation.
//
// All operations are validated before the first one executes. Execution
// stops at the first error; earlier writes are kept.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	force := opts.Force || opts.Resolver != nil

	// Phase 1: Validate all operations
	for _, op := range ops {
		if err := op.Validate(ctx, force); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	// Phase 2: Execute or report
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return err
		}

		verb := ""
		if c, ok := op.(Conflicter); ok {
			existing, err := os.ReadFile(c.Target())
			switch {
			case errors.Is(err, fs.ErrNotExist):
			case err != nil:
				return fmt.Errorf("execution failed: %w", err)
			case bytes.Equal(existing, c.Proposed()):
				fmt.Fprintf(opts.Writer, "= Identical %s\n", c.Target())
				continue
			default:
				decision := Overwrite
				if !opts.Force && opts.Resolver != nil {
					decision, err = opts.Resolver.ResolveConflict(c.Target(), existing, c.Proposed())
					if err != nil {
						return fmt.Errorf("resolving conflict for %s: %w", c.Target(), err)
					}
				}
				switch decision {
				case Skip:
					fmt.Fprintf(opts.Writer, "- Skip %s\n", c.Target())
					continue
				case Cancel:
					return ErrCancelled
				}
				verb = "Overwrite "
			}
		}

		if opts.DryRun {
			fmt.Fprintf(opts.Writer, "✓ [DRY RUN] %s%s\n", verb, op.Description())
			continue
		}
		if err := op.Execute(ctx); err != nil {
			return fmt.Errorf("execution failed: %w", err)
		}
		fmt.Fprintf(opts.Writer, "✓ %s%s\n", verb, op.Description())
	}

	return nil
}
