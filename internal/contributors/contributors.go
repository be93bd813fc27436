// Package contributors holds the fixed set of pipeline units that add
// tooling to the generated package: version control attributes, linting,
// git hooks, formatting, type declarations, transpiling, tests, commit
// message linting, bundling and the license.
package contributors

import (
	"path"

	"github.com/simonhull/firebird-suite/hatch/internal/answers"
	"github.com/simonhull/firebird-suite/hatch/internal/generator"
	"github.com/simonhull/firebird-suite/hatch/internal/pipeline"
	"github.com/simonhull/firebird-suite/hatch/internal/variant"
)

// Pipeline returns the contributors for a record in execution order. The
// license unit is only present when the record asks for a license.
func Pipeline(rec answers.Record, cfg variant.Config) []pipeline.Contributor {
	stages := []pipeline.Contributor{
		Git{},
		ESLint{},
		Husky{},
		LintStaged{},
		Prettier{},
		TypeScript{},
		Babel{ESModules: cfg.ESModules},
		Jest{ESModules: cfg.ESModules},
		CommitLint{ESModules: cfg.ESModules},
		Rollup{ESModules: cfg.ESModules},
	}
	if rec.IncludeLicense {
		stages = append(stages, License{Options: LicenseOptionsFrom(rec)})
	}
	return stages
}

const assetRoot = "contributors"

// variantDir names the per-variant asset directory of a unit.
func variantDir(esm bool) string {
	if esm {
		return "esmodules"
	}
	return "commonjs"
}

// copyAll plans every file under contributors/<dir>, hidden entries
// included, into the destination root.
func copyAll(pctx pipeline.Context, name string, dir ...string) ([]generator.Operation, error) {
	source := path.Join(append([]string{assetRoot}, dir...)...)
	return pctx.Materializer.Plan(variant.TemplateSet{
		Name:   name,
		Source: source,
		Class:  variant.AllEntries,
		Dest:   ".",
	}, pctx.Dest, nil)
}

// deps builds a dependency map patch value.
func deps(pairs ...string) map[string]any {
	out := make(map[string]any, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out[pairs[i]] = pairs[i+1]
	}
	return out
}
