package contributors

import (
	"context"

	"github.com/simonhull/firebird-suite/hatch/internal/manifest"
	"github.com/simonhull/firebird-suite/hatch/internal/pipeline"
)

// LintStaged writes .lintstagedrc.json, run by the pre-commit hook.
type LintStaged struct{}

func (LintStaged) Name() string { return "lint-staged" }

func (l LintStaged) Contribute(ctx context.Context, pctx pipeline.Context) (pipeline.Contribution, error) {
	files, err := copyAll(pctx, l.Name(), "lint-staged")
	if err != nil {
		return pipeline.Contribution{}, err
	}
	return pipeline.Contribution{
		Files: files,
		Patch: manifest.Patch{"devDependencies": deps("lint-staged", "^14.0.1")},
	}, nil
}
