package contributors

import (
	"context"

	"github.com/simonhull/firebird-suite/hatch/internal/generator"
	"github.com/simonhull/firebird-suite/hatch/internal/manifest"
	"github.com/simonhull/firebird-suite/hatch/internal/pipeline"
)

// Husky writes the pre-commit and commit-msg hooks. The "init" script it
// adds installs them.
type Husky struct{}

func (Husky) Name() string { return "husky" }

func (h Husky) Contribute(ctx context.Context, pctx pipeline.Context) (pipeline.Contribution, error) {
	files, err := copyAll(pctx, h.Name(), "husky")
	if err != nil {
		return pipeline.Contribution{}, err
	}
	// hooks must be executable
	for _, op := range files {
		if w, ok := op.(*generator.WriteFileOp); ok {
			w.Mode = 0755
		}
	}
	return pipeline.Contribution{
		Files: files,
		Patch: manifest.Patch{
			"scripts":         map[string]any{"init": "husky install"},
			"devDependencies": deps("husky", "^8.0.3"),
		},
	}, nil
}
