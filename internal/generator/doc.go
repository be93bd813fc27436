// Package generator holds the file-writing primitives every hatch stage
// goes through.
//
// # Features
//
//   - Operations that are validated as a batch before any is executed
//   - Template rendering with helper functions and a parse cache
//   - Conflict resolution for existing files (interactive, --force, --skip)
//   - Line diffs for reviewing a conflict before deciding
//
// # Idempotency
//
// Writing a file whose current bytes equal the proposed bytes is a no-op
// reported as "Identical". Re-running a generation with the same inputs
// therefore never prompts and never rewrites anything.
//
// # No rollback
//
// Operations run in order and stop at the first failure. Files written
// before the failure stay on disk so the partial tree can be inspected.
//
//	err := generator.Execute(ctx, ops, generator.ExecuteOptions{
//	    Resolver: resolver,
//	})
package generator
