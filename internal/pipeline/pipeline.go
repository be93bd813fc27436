// Package pipeline runs contributor units in a fixed order and folds their
// package.json patches into one manifest.
package pipeline

import (
	"context"
	"fmt"

	"github.com/simonhull/firebird-suite/hatch/internal/answers"
	"github.com/simonhull/firebird-suite/hatch/internal/generator"
	"github.com/simonhull/firebird-suite/hatch/internal/logger"
	"github.com/simonhull/firebird-suite/hatch/internal/manifest"
	"github.com/simonhull/firebird-suite/hatch/internal/materialize"
	"github.com/simonhull/firebird-suite/hatch/internal/variant"
)

// Contributor is one unit of the pipeline (lint, tests, bundler...).
//
// Contribute returns the files the unit writes and the manifest patch it
// wants merged. It must not write files itself. By convention a
// contributor adds fields (scripts, devDependencies, license) and leaves
// the identity fields (name, description, type, author, repository, bugs,
// keywords, homepage) alone; this is not enforced.
type Contributor interface {
	Name() string
	Contribute(ctx context.Context, pctx Context) (Contribution, error)
}

// Context is what every contributor sees. It is passed by value and
// contributors must treat it as read-only.
type Context struct {
	Answers      answers.Record
	Variant      variant.Config
	Dest         string
	Materializer *materialize.Materializer
	Year         int
}

// Contribution is a contributor's output.
type Contribution struct {
	Files []generator.Operation
	Patch manifest.Patch
}

// ContributorError reports the stage that failed. Earlier stages' files
// stay on disk.
type ContributorError struct {
	Stage string
	Err   error
}

func (e *ContributorError) Error() string {
	return fmt.Sprintf("contributor %s: %v", e.Stage, e.Err)
}

func (e *ContributorError) Unwrap() error {
	return e.Err
}

// Composer runs stages in order.
type Composer struct {
	stages []Contributor
	opts   generator.ExecuteOptions
	log    logger.Logger
}

// NewComposer creates a composer. opts controls how contributed files
// are written. A nil logger is silent.
func NewComposer(stages []Contributor, opts generator.ExecuteOptions, log logger.Logger) *Composer {
	if log == nil {
		log = logger.NewSilentLogger()
	}
	return &Composer{stages: stages, opts: opts, log: log}
}

// Stages returns the stage names in execution order.
func (c *Composer) Stages() []string {
	names := make([]string, len(c.stages))
	for i, s := range c.stages {
		names[i] = s.Name()
	}
	return names
}

// Compose invokes each stage exactly once, in order. A stage's files are
// written before its patch is merged, and both happen before the next
// stage starts. The first failure stops the pipeline.
func (c *Composer) Compose(ctx context.Context, m manifest.Manifest, pctx Context) (manifest.Manifest, error) {
	for _, stage := range c.stages {
		name := stage.Name()
		if err := ctx.Err(); err != nil {
			return m, &ContributorError{Stage: name, Err: err}
		}

		log := c.log.WithFields(logger.F("stage", name))
		log.Debug("contributing")

		contribution, err := stage.Contribute(ctx, pctx)
		if err != nil {
			log.Error("contribution failed", logger.Err(err))
			return m, &ContributorError{Stage: name, Err: err}
		}

		if err := generator.Execute(ctx, contribution.Files, c.opts); err != nil {
			log.Error("writing files failed", logger.Err(err))
			return m, &ContributorError{Stage: name, Err: err}
		}

		m = manifest.Merge(m, contribution.Patch)
		log.Info("stage complete",
			logger.F("files", len(contribution.Files)),
			logger.F("patch_keys", len(contribution.Patch)))
	}
	return m, nil
}
