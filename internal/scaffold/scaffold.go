// Package scaffold runs one generation from a resolved answer record:
// template sets, manifest, contributors, package.json and the post-writing
// steps, in that order.
package scaffold

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/simonhull/firebird-suite/hatch/internal/answers"
	"github.com/simonhull/firebird-suite/hatch/internal/contributors"
	"github.com/simonhull/firebird-suite/hatch/internal/generator"
	"github.com/simonhull/firebird-suite/hatch/internal/logger"
	"github.com/simonhull/firebird-suite/hatch/internal/manifest"
	"github.com/simonhull/firebird-suite/hatch/internal/materialize"
	"github.com/simonhull/firebird-suite/hatch/internal/pipeline"
	"github.com/simonhull/firebird-suite/hatch/internal/postwrite"
	"github.com/simonhull/firebird-suite/hatch/internal/templates"
	"github.com/simonhull/firebird-suite/hatch/internal/variant"
)

// ManifestFile is the manifest's name inside the destination.
const ManifestFile = "package.json"

// Options configures a Generator.
type Options struct {
	// Templates is the template tree. Defaults to the embedded one.
	Templates fs.FS
	// Execute controls how every file write is carried out.
	Execute generator.ExecuteOptions
	// Runner spawns the post-writing commands. Without one the
	// post-writing steps are skipped.
	Runner   postwrite.Runner
	Managers []string
	Install  bool
	Logger   logger.Logger
	// Now is the clock used for copyright years. Defaults to time.Now.
	Now func() time.Time
}

// Result describes a finished generation.
type Result struct {
	Dest     string
	Variant  variant.Selection
	Stages   []string
	Manifest manifest.Manifest
	Report   postwrite.Report
}

// Generator creates npm packages.
type Generator struct {
	opts Options
}

// New creates a generator.
func New(opts Options) *Generator {
	if opts.Templates == nil {
		opts.Templates = templates.FS()
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewSilentLogger()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Generator{opts: opts}
}

// Run generates the package described by rec into dest.
//
// Configuration errors surface before anything is written. Template,
// contributor and manifest errors abort the run and leave the files
// written so far. Post-writing failures never fail the run; they are
// listed in the returned Result.
func (g *Generator) Run(ctx context.Context, rec answers.Record, dest string) (*Result, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	sel, err := variant.Select(rec)
	if err != nil {
		return nil, err
	}
	sets, err := variant.SelectTemplateSets(rec)
	if err != nil {
		return nil, err
	}

	log := g.opts.Logger.WithFields(logger.F("package", rec.PackageName))
	year := g.opts.Now().Year()
	m := materialize.New(g.opts.Templates, g.opts.Execute)

	// 1. template sets
	renderCtx := materialize.NewRenderContext(rec, year)
	for _, set := range sets {
		log.Debug("materializing", logger.F("set", set.Name), logger.F("class", set.Class))
		if err := m.Materialize(ctx, set, dest, renderCtx); err != nil {
			return nil, err
		}
	}

	// 2. manifest seed: whatever is on disk, identity, variant
	manifestPath := filepath.Join(dest, ManifestFile)
	pkg, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}
	identity := manifest.IdentityPatch(rec)
	if len(pkg) > 0 {
		// blank answers keep what the existing package.json says
		identity = manifest.OmitEmpty(identity)
	}
	pkg = manifest.Defaults(pkg, manifest.Patch{"version": manifest.DefaultVersion})
	pkg = manifest.Merge(pkg, identity)
	pkg = manifest.Merge(pkg, manifest.VariantPatch(sel.Config()))

	// 3. contributors
	composer := pipeline.NewComposer(contributors.Pipeline(rec, sel.Config()), g.opts.Execute, log)
	pkg, err = composer.Compose(ctx, pkg, pipeline.Context{
		Answers:      rec,
		Variant:      sel.Config(),
		Dest:         dest,
		Materializer: m,
		Year:         year,
	})
	if err != nil {
		return nil, err
	}

	// 4. package.json
	if err := manifest.Validate(pkg); err != nil {
		return nil, err
	}
	data, err := manifest.Encode(pkg)
	if err != nil {
		return nil, err
	}
	write := &generator.WriteFileOp{Path: manifestPath, Content: data, Mode: 0644}
	if err := generator.Execute(ctx, []generator.Operation{write}, g.opts.Execute); err != nil {
		return nil, fmt.Errorf("writing %s: %w", ManifestFile, err)
	}

	result := &Result{
		Dest:     dest,
		Variant:  sel,
		Stages:   composer.Stages(),
		Manifest: pkg,
	}

	// 5. post-writing, strictly after every write
	if g.opts.Runner == nil || g.opts.Execute.DryRun {
		return result, nil
	}
	orchestrator := postwrite.New(g.opts.Runner, postwrite.Options{
		Managers: g.opts.Managers,
		Install:  g.opts.Install,
		Logger:   log,
	})
	result.Report = orchestrator.Finalize(ctx, rec)
	return result, nil
}
