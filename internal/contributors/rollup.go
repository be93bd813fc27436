package contributors

import (
	"context"

	"github.com/simonhull/firebird-suite/hatch/internal/manifest"
	"github.com/simonhull/firebird-suite/hatch/internal/pipeline"
)

// Rollup writes the bundler config: rollup.config.mjs for CommonJS
// packages (dual build), rollup.config.js for ES module packages.
type Rollup struct {
	ESModules bool
}

func (Rollup) Name() string { return "rollup" }

func (r Rollup) Contribute(ctx context.Context, pctx pipeline.Context) (pipeline.Contribution, error) {
	files, err := copyAll(pctx, r.Name(), "rollup", variantDir(r.ESModules))
	if err != nil {
		return pipeline.Contribution{}, err
	}
	return pipeline.Contribution{
		Files: files,
		Patch: manifest.Patch{
			"scripts": map[string]any{"build": "rimraf dist && npm run types && rollup -c"},
			"devDependencies": deps(
				"rollup", "^3.28.0",
				"@rollup/plugin-babel", "^6.0.3",
				"@rollup/plugin-node-resolve", "^15.2.0",
				"rollup-plugin-dts", "^6.1.0",
				"rimraf", "^5.0.1",
			),
		},
	}, nil
}
