package manifest

import (
	"github.com/simonhull/firebird-suite/hatch/internal/answers"
	"github.com/simonhull/firebird-suite/hatch/internal/variant"
)

// DefaultVersion is written when the manifest has no version yet.
const DefaultVersion = "1.0.0"

// Base script commands.
const (
	ScriptTestJest       = "jest"
	ScriptTestESModules  = "node --experimental-vm-modules node_modules/jest/bin/jest.js"
	ScriptDocumentation  = "readme-md-generator -y"
	readmeGeneratorRange = "^1.0.0"
)

// IdentityPatch holds the fields derived from the answers: package
// identity, author, links, keywords and the base scripts. It is the first
// patch applied. Contributors are expected to leave these fields alone;
// nothing enforces it.
func IdentityPatch(rec answers.Record) Patch {
	homepage := rec.PackageHomePageURL
	if homepage == "" {
		homepage = rec.PackageWebsite
	}
	return Patch{
		"name":        rec.PackageName,
		"description": rec.PackageDescription,
		"type":        string(rec.PackageType),
		"author": map[string]any{
			"name":  rec.AuthorName,
			"email": rec.AuthorEmail,
			"url":   rec.AuthorHomepage,
		},
		"repository": map[string]any{
			"url": rec.URLRepository,
		},
		"bugs": map[string]any{
			"url": BugsURL(rec.URLRepository),
		},
		"keywords": Keywords(rec.PackageKeywords),
		"homepage": homepage,
		"files":    []string{"dist"},
		"scripts": map[string]any{
			"test":                 ScriptTestJest,
			"documentation:create": ScriptDocumentation,
		},
		"devDependencies": map[string]any{
			"readme-md-generator": readmeGeneratorRange,
		},
	}
}

// VariantPatch holds the module-system specific fields. It is applied
// right after IdentityPatch and overrides it: ES module packages run jest
// through node's VM modules support.
func VariantPatch(cfg variant.Config) Patch {
	if cfg.ESModules {
		return Patch{
			"main":   "./dist/esm/index.js",
			"module": "./dist/esm/index.js",
			"types":  "./dist/index.d.ts",
			"exports": map[string]any{
				".": map[string]any{
					"types":  "./dist/index.d.ts",
					"import": "./dist/esm/index.js",
				},
			},
			"scripts": map[string]any{
				"test": ScriptTestESModules,
			},
		}
	}
	return Patch{
		"main":   "./dist/cjs/index.cjs",
		"module": "./dist/esm/index.js",
		"types":  "./dist/index.d.ts",
		"exports": map[string]any{
			".": map[string]any{
				"types":   "./dist/index.d.ts",
				"require": "./dist/cjs/index.cjs",
				"import":  "./dist/esm/index.js",
			},
		},
	}
}
