package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrConflict is returned by Validate when the target exists with
// different content and the caller did not allow overwriting.
var ErrConflict = errors.New("file already exists with different content")

// Operation represents a file system operation that can be validated and executed.
//
// Validate checks if the operation would succeed without executing it.
// force=true skips conflict checks (e.g., file already exists).
//
// Execute performs the actual operation. This should only be called after Validate succeeds.
//
// Description returns a human-readable description for output (e.g., "Create src/index.js (234 bytes)").
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
}

// Conflicter is implemented by operations that write a single target file.
// Execute uses it to detect identical content and to hand real conflicts
// to a Resolver.
type Conflicter interface {
	Target() string
	Proposed() []byte
}

// WriteFileOp creates or replaces a file with content.
//
// Validation rejects nil content (empty is fine), a target that is a
// directory, and, unless force is set, an existing file whose bytes differ.
// Execution creates parent directories as needed.
type WriteFileOp struct {
	Path    string      // File path to create
	Content []byte      // File content (can be empty, must not be nil)
	Mode    fs.FileMode // File permissions (e.g., 0644)
}

func (op *WriteFileOp) Validate(ctx context.Context, force bool) error {
	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	info, err := os.Stat(op.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return fmt.Errorf("cannot stat %s: %w", op.Path, err)
	case info.IsDir():
		return fmt.Errorf("%s is a directory", op.Path)
	}

	if force {
		return nil
	}

	existing, err := os.ReadFile(op.Path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", op.Path, err)
	}
	if !bytes.Equal(existing, op.Content) {
		return fmt.Errorf("%w: %s", ErrConflict, op.Path)
	}
	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(op.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}
	mode := op.Mode
	if mode == 0 {
		mode = 0644
	}
	if err := os.WriteFile(op.Path, op.Content, mode); err != nil {
		return err
	}
	// WriteFile keeps the old mode of an existing file.
	return os.Chmod(op.Path, mode)
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.Path, len(op.Content))
}

func (op *WriteFileOp) Target() string   { return op.Path }
func (op *WriteFileOp) Proposed() []byte { return op.Content }
