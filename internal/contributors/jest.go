package contributors

import (
	"context"

	"github.com/simonhull/firebird-suite/hatch/internal/manifest"
	"github.com/simonhull/firebird-suite/hatch/internal/pipeline"
	"github.com/simonhull/firebird-suite/hatch/internal/variant"
)

// Jest writes the sample test and the variant's jest config. It leaves
// scripts.test to the manifest patches, which know the variant's command.
type Jest struct {
	ESModules bool
}

func (Jest) Name() string { return "jest" }

func (j Jest) Contribute(ctx context.Context, pctx pipeline.Context) (pipeline.Contribution, error) {
	tests, err := pctx.Materializer.Plan(variant.TemplateSet{
		Name:   j.Name(),
		Source: assetRoot + "/jest/__tests__",
		Class:  variant.AllEntries,
		Dest:   "__tests__",
	}, pctx.Dest, nil)
	if err != nil {
		return pipeline.Contribution{}, err
	}
	config, err := copyAll(pctx, j.Name(), "jest", variantDir(j.ESModules))
	if err != nil {
		return pipeline.Contribution{}, err
	}

	watch := "jest --watch"
	if j.ESModules {
		watch = manifest.ScriptTestESModules + " --watch"
	}
	return pipeline.Contribution{
		Files: append(tests, config...),
		Patch: manifest.Patch{
			"scripts": map[string]any{"test:watch": watch},
			"devDependencies": deps(
				"jest", "^29.7.0",
				"@faker-js/faker", "^8.0.2",
			),
		},
	}, nil
}
