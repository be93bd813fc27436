package manifest

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/simonhull/firebird-suite/hatch/internal/answers"
	"github.com/simonhull/firebird-suite/hatch/internal/variant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validManifest() Manifest {
	rec := answers.Record{PackageName: "my-lib", PackageType: answers.Module, PackageKeywords: "a"}
	m := Merge(Manifest{}, IdentityPatch(rec))
	m = Merge(m, VariantPatch(variant.Config{ESModules: true}))
	return Defaults(m, Patch{"version": DefaultVersion})
}

func issuePaths(t *testing.T, err error) []string {
	t.Helper()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected *ValidationError, got %v", err)
	var paths []string
	for _, issue := range ve.Issues {
		paths = append(paths, issue.Path)
	}
	return paths
}

func TestValidate_GeneratedManifest(t *testing.T) {
	assert.NoError(t, Validate(validManifest()))
}

func TestValidate_ScopedName(t *testing.T) {
	m := validManifest()
	m["name"] = "@ada/my-lib"

	assert.NoError(t, Validate(m))
}

func TestValidate_BadName(t *testing.T) {
	m := validManifest()
	m["name"] = "My Lib"

	assert.Contains(t, issuePaths(t, Validate(m)), "/name")
}

func TestValidate_MissingVersion(t *testing.T) {
	m := validManifest()
	delete(m, "version")

	err := Validate(m)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}

func TestValidate_NotSemver(t *testing.T) {
	m := validManifest()
	m["version"] = "1.0"

	assert.Contains(t, issuePaths(t, Validate(m)), "/version")
}

func TestValidate_BadDependencyRange(t *testing.T) {
	m := Merge(validManifest(), Patch{"devDependencies": map[string]any{
		"jest":        "^29.7.0",
		"broken":      "^^1",
		"local":       "file:../local",
		"tagged":      "latest",
		"range":       ">=1.2.0 <2",
		"from-github": "github:user/repo",
	}})

	paths := issuePaths(t, Validate(m))

	assert.Equal(t, []string{"/devDependencies/broken"}, paths)
}

func TestValidate_ScriptMustBeString(t *testing.T) {
	m := Merge(validManifest(), Patch{"scripts": map[string]any{"test": 42}})

	paths := issuePaths(t, Validate(m))

	assert.Contains(t, paths, "/scripts/test")
}

func TestValidate_UnknownType(t *testing.T) {
	m := validManifest()
	m["type"] = "umd"

	assert.Contains(t, issuePaths(t, Validate(m)), "/type")
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Issues: []Issue{{Path: "/name", Message: "bad"}, {Path: "/version", Message: "worse"}}}

	assert.True(t, strings.HasPrefix(err.Error(), "invalid package.json: "))
	assert.Contains(t, err.Error(), "/name: bad; /version: worse")
}

func TestIsRange(t *testing.T) {
	assert.True(t, isRange("^1.0.0"))
	assert.True(t, isRange("1.x"))
	assert.True(t, isRange("*"))
	assert.False(t, isRange("latest"))
	assert.False(t, isRange("npm:lodash@^4"))
	assert.False(t, isRange(""))
}

func TestSchemaNameRuleMatchesAnswerCheck(t *testing.T) {
	var doc struct {
		Properties struct {
			Name struct {
				Pattern   string `json:"pattern"`
				MaxLength int    `json:"maxLength"`
			} `json:"name"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(schemaBytes, &doc))

	assert.Equal(t, answers.PackageNamePattern, doc.Properties.Name.Pattern)
	assert.Equal(t, answers.MaxPackageNameLength, doc.Properties.Name.MaxLength)
}
