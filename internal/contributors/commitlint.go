package contributors

import (
	"context"

	"github.com/simonhull/firebird-suite/hatch/internal/manifest"
	"github.com/simonhull/firebird-suite/hatch/internal/pipeline"
)

// CommitLint writes the conventional commits config checked by the
// commit-msg hook. ES module packages get a .cjs config.
type CommitLint struct {
	ESModules bool
}

func (CommitLint) Name() string { return "commitlint" }

func (c CommitLint) Contribute(ctx context.Context, pctx pipeline.Context) (pipeline.Contribution, error) {
	files, err := copyAll(pctx, c.Name(), "commitlint", variantDir(c.ESModules))
	if err != nil {
		return pipeline.Contribution{}, err
	}
	return pipeline.Contribution{
		Files: files,
		Patch: manifest.Patch{
			"devDependencies": deps(
				"@commitlint/cli", "^17.8.0",
				"@commitlint/config-conventional", "^17.8.0",
			),
		},
	}, nil
}
