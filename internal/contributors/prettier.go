package contributors

import (
	"context"

	"github.com/simonhull/firebird-suite/hatch/internal/manifest"
	"github.com/simonhull/firebird-suite/hatch/internal/pipeline"
)

// Prettier writes .prettierrc.json and .prettierignore.
type Prettier struct{}

func (Prettier) Name() string { return "prettier" }

func (p Prettier) Contribute(ctx context.Context, pctx pipeline.Context) (pipeline.Contribution, error) {
	files, err := copyAll(pctx, p.Name(), "prettier")
	if err != nil {
		return pipeline.Contribution{}, err
	}
	return pipeline.Contribution{
		Files: files,
		Patch: manifest.Patch{
			"scripts": map[string]any{"format": "prettier --write ."},
			"devDependencies": deps(
				"prettier", "^3.0.2",
				"prettier-plugin-jsdoc", "^1.1.1",
			),
		},
	}, nil
}
