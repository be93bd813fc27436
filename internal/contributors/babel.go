package contributors

import (
	"context"

	"github.com/simonhull/firebird-suite/hatch/internal/manifest"
	"github.com/simonhull/firebird-suite/hatch/internal/pipeline"
)

// Babel writes the transpiler config used by the bundler (and by jest for
// CommonJS packages).
type Babel struct {
	ESModules bool
}

func (Babel) Name() string { return "babel" }

func (b Babel) Contribute(ctx context.Context, pctx pipeline.Context) (pipeline.Contribution, error) {
	files, err := copyAll(pctx, b.Name(), "babel", variantDir(b.ESModules))
	if err != nil {
		return pipeline.Contribution{}, err
	}
	return pipeline.Contribution{
		Files: files,
		Patch: manifest.Patch{
			"dependencies": deps(
				"@babel/runtime-corejs3", "^7.22.11",
				"core-js", "^3.32.1",
			),
			"devDependencies": deps(
				"@babel/cli", "^7.22.10",
				"@babel/core", "^7.22.10",
				"@babel/plugin-transform-runtime", "^7.22.10",
				"@babel/preset-env", "^7.22.10",
			),
		},
	}, nil
}
