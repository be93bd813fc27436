package contributors

import (
	"context"

	"github.com/simonhull/firebird-suite/hatch/internal/manifest"
	"github.com/simonhull/firebird-suite/hatch/internal/pipeline"
)

// TypeScript emits type declarations from the JSDoc annotated sources.
type TypeScript struct{}

func (TypeScript) Name() string { return "typescript" }

func (ts TypeScript) Contribute(ctx context.Context, pctx pipeline.Context) (pipeline.Contribution, error) {
	files, err := copyAll(pctx, ts.Name(), "typescript")
	if err != nil {
		return pipeline.Contribution{}, err
	}
	return pipeline.Contribution{
		Files: files,
		Patch: manifest.Patch{
			"scripts":         map[string]any{"types": "tsc -p tsconfig.json"},
			"devDependencies": deps("typescript", "^5.2.2"),
		},
	}, nil
}
