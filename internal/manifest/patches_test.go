package manifest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/simonhull/firebird-suite/hatch/internal/answers"
	"github.com/simonhull/firebird-suite/hatch/internal/variant"
	"github.com/stretchr/testify/assert"
)

func TestIdentityPatch(t *testing.T) {
	rec := answers.Record{
		PackageName:        "my-lib",
		PackageDescription: "A library",
		PackageHomePageURL: "https://my-lib.dev",
		AuthorName:         "Ada",
		AuthorEmail:        "ada@example.com",
		AuthorHomepage:     "https://ada.dev",
		URLRepository:      "https://github.com/ada/my-lib",
		PackageKeywords:    "cli, scaffold",
		PackageType:        answers.CommonJS,
	}

	got := Merge(Manifest{}, IdentityPatch(rec))

	want := Manifest{
		"name":        "my-lib",
		"description": "A library",
		"type":        "commonjs",
		"author":      map[string]any{"name": "Ada", "email": "ada@example.com", "url": "https://ada.dev"},
		"repository":  map[string]any{"url": "https://github.com/ada/my-lib"},
		"bugs":        map[string]any{"url": "https://github.com/ada/my-lib/issues"},
		"keywords":    []string{"cli", "scaffold"},
		"homepage":    "https://my-lib.dev",
		"files":       []string{"dist"},
		"scripts": map[string]any{
			"test":                 "jest",
			"documentation:create": "readme-md-generator -y",
		},
		"devDependencies": map[string]any{"readme-md-generator": "^1.0.0"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("identity manifest mismatch (-want +got):\n%s", diff)
	}
}

func TestIdentityPatch_EmptyAnswers(t *testing.T) {
	got := IdentityPatch(answers.Record{PackageName: "x", PackageType: answers.Module})

	assert.Equal(t, []string{}, got["keywords"], "keywords are never nil")
	assert.Equal(t, map[string]any{"url": ""}, got["bugs"])
}

func TestIdentityPatch_WebsiteFallsBackAsHomepage(t *testing.T) {
	got := IdentityPatch(answers.Record{PackageName: "x", PackageWebsite: "https://x.dev"})

	assert.Equal(t, "https://x.dev", got["homepage"])
}

func TestVariantPatch_OverridesTestScript(t *testing.T) {
	// whatever the base says, the module variant decides scripts.test
	for _, baseTest := range []string{"jest", "mocha", ""} {
		base := Merge(Manifest{}, Patch{"scripts": map[string]any{"test": baseTest, "lint": "eslint ."}})

		got := Merge(base, VariantPatch(variant.Config{ESModules: true}))

		scripts := got["scripts"].(map[string]any)
		assert.Equal(t, ScriptTestESModules, scripts["test"])
		assert.Equal(t, "eslint .", scripts["lint"])
	}
}

func TestVariantPatch_CommonJSKeepsJest(t *testing.T) {
	m := Merge(Merge(Manifest{}, IdentityPatch(answers.Record{PackageName: "x", PackageType: answers.CommonJS})), VariantPatch(variant.Config{}))

	assert.Equal(t, ScriptTestJest, m["scripts"].(map[string]any)["test"])
	assert.Equal(t, "./dist/cjs/index.cjs", m["main"])
}

func TestVariantPatch_EntryPoints(t *testing.T) {
	esm := VariantPatch(variant.Config{ESModules: true})
	cjs := VariantPatch(variant.Config{ESModules: false})

	assert.Equal(t, "./dist/esm/index.js", esm["main"])
	assert.NotContains(t, esm["exports"].(map[string]any)["."], "require")
	assert.Contains(t, cjs["exports"].(map[string]any)["."], "require")
}
