// Package materialize turns template sets into file writes under a
// destination directory.
package materialize

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/simonhull/firebird-suite/hatch/internal/generator"
	"github.com/simonhull/firebird-suite/hatch/internal/variant"
)

// TemplateSuffix is stripped from the names of rendered files.
const TemplateSuffix = ".tmpl"

// TemplateMissingError reports a template set whose source directory does
// not exist in the template tree.
type TemplateMissingError struct {
	Set    string
	Source string
}

func (e *TemplateMissingError) Error() string {
	return fmt.Sprintf("template set %s: source %q not found", e.Set, e.Source)
}

// Materializer plans and writes template sets.
type Materializer struct {
	fsys     fs.FS
	renderer *generator.Renderer
	opts     generator.ExecuteOptions
}

// New creates a materializer over a template tree. opts controls how
// planned writes are executed (dry run, conflicts, output).
func New(fsys fs.FS, opts generator.ExecuteOptions) *Materializer {
	return &Materializer{
		fsys:     fsys,
		renderer: generator.NewRenderer(),
		opts:     opts,
	}
}

// Materialize plans the set and executes the writes.
func (m *Materializer) Materialize(ctx context.Context, set variant.TemplateSet, dest string, data any) error {
	ops, err := m.Plan(set, dest, data)
	if err != nil {
		return err
	}
	if err := generator.Execute(ctx, ops, m.opts); err != nil {
		return fmt.Errorf("template set %s (%s): %w", set.Name, set.Class, err)
	}
	return nil
}

// Plan returns one write per source file of the set's class, in lexical
// path order. Templates are rendered with data; everything else is copied
// byte for byte.
func (m *Materializer) Plan(set variant.TemplateSet, dest string, data any) ([]generator.Operation, error) {
	info, err := fs.Stat(m.fsys, set.Source)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return nil, &TemplateMissingError{Set: set.Name, Source: set.Source}
	}
	if err != nil {
		return nil, fmt.Errorf("template set %s: %w", set.Name, err)
	}

	root := filepath.Join(dest, filepath.FromSlash(set.Dest))
	var ops []generator.Operation

	err = fs.WalkDir(m.fsys, set.Source, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel := strings.TrimPrefix(p, set.Source+"/")
		if !Matches(set.Class, rel) {
			return nil
		}

		var content []byte
		if set.Class == variant.Templates {
			content, err = m.renderer.RenderFS(m.fsys, p, data)
			rel = strings.TrimSuffix(rel, TemplateSuffix)
		} else {
			content, err = fs.ReadFile(m.fsys, p)
		}
		if err != nil {
			return err
		}

		ops = append(ops, &generator.WriteFileOp{
			Path:    filepath.Join(root, filepath.FromSlash(rel)),
			Content: content,
			Mode:    modeOf(d),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("template set %s: %w", set.Name, err)
	}
	return ops, nil
}

func modeOf(d fs.DirEntry) fs.FileMode {
	if info, err := d.Info(); err == nil && info.Mode()&0111 != 0 {
		return 0755
	}
	return 0644
}

// Classify places a slash-separated relative file path in exactly one of
// NormalFiles, DotFiles or DotDirectories.
func Classify(rel string) variant.CopyClass {
	segments := strings.Split(path.Clean(rel), "/")
	for _, dir := range segments[:len(segments)-1] {
		if strings.HasPrefix(dir, ".") {
			return variant.DotDirectories
		}
	}
	if strings.HasPrefix(segments[len(segments)-1], ".") {
		return variant.DotFiles
	}
	return variant.NormalFiles
}

// Matches reports whether a file belongs to a copy class.
func Matches(class variant.CopyClass, rel string) bool {
	switch class {
	case variant.AllEntries, variant.Templates:
		return true
	default:
		return Classify(rel) == class
	}
}
