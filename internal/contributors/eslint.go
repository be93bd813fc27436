package contributors

import (
	"context"

	"github.com/simonhull/firebird-suite/hatch/internal/manifest"
	"github.com/simonhull/firebird-suite/hatch/internal/pipeline"
)

// ESLint writes .eslintrc.json and .eslintignore.
type ESLint struct{}

func (ESLint) Name() string { return "eslint" }

func (e ESLint) Contribute(ctx context.Context, pctx pipeline.Context) (pipeline.Contribution, error) {
	files, err := copyAll(pctx, e.Name(), "eslint")
	if err != nil {
		return pipeline.Contribution{}, err
	}
	return pipeline.Contribution{
		Files: files,
		Patch: manifest.Patch{
			"scripts": map[string]any{
				"lint":     "eslint .",
				"lint:fix": "eslint . --fix",
			},
			"devDependencies": deps(
				"eslint", "^8.47.0",
				"eslint-config-prettier", "^9.0.0",
				"eslint-config-standard", "^17.1.0",
				"eslint-plugin-import", "^2.28.1",
				"eslint-plugin-jest", "^27.2.3",
				"eslint-plugin-jsdoc", "^46.8.2",
				"eslint-plugin-n", "^16.0.2",
				"eslint-plugin-promise", "^6.1.1",
			),
		},
	}, nil
}
