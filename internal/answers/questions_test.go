package answers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestions_Schema(t *testing.T) {
	qs := Questions("my-lib")

	require.Len(t, qs, 13)
	assert.Equal(t, KeyPackageName, qs[0].Key)
	assert.Equal(t, "my-lib", qs[0].Default)
	assert.True(t, qs[0].Required)

	byKey := map[string]Question{}
	for _, q := range qs {
		byKey[q.Key] = q
	}
	assert.Equal(t, Select, byKey[KeyPackageType].Kind)
	assert.Equal(t, []string{"commonjs", "module"}, byKey[KeyPackageType].Choices)
	assert.Equal(t, "commonjs", byKey[KeyPackageType].Default)
	assert.Equal(t, true, byKey[KeyRunGitInit].Default)
	assert.Equal(t, true, byKey[KeyRunPackageScripts].Default)
	assert.Equal(t, false, byKey[KeyIncludeLicense].Default)
}

func TestKeys_MatchSchemaOrder(t *testing.T) {
	keys := Keys()

	assert.Equal(t, KeyPackageName, keys[0])
	assert.Equal(t, KeyIncludeLicense, keys[len(keys)-1])
}

func TestSchemaYAML(t *testing.T) {
	out, err := SchemaYAML("demo")
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.HasPrefix(s, "questions:\n"))
	assert.Contains(t, s, "key: packageName")
	assert.Contains(t, s, "kind: select")
	assert.Contains(t, s, "default: demo")
}

func TestRecordValidate(t *testing.T) {
	assert.NoError(t, Record{PackageName: "x", PackageType: Module}.Validate())
	assert.Error(t, Record{PackageName: " ", PackageType: Module}.Validate())
	assert.Error(t, Record{PackageName: "x", PackageType: "esm"}.Validate())
}

func TestRecordValidate_PackageName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"my-lib", true},
		{"@scope/my-lib", true},
		{"lib.js_2", true},
		{"Not A Valid Name", false},
		{"MyLib", false},
		{"@scope/", false},
		{".hidden", false},
		{strings.Repeat("a", MaxPackageNameLength), true},
		{strings.Repeat("a", MaxPackageNameLength+1), false},
	}

	for _, tt := range tests {
		err := Record{PackageName: tt.name, PackageType: CommonJS}.Validate()
		if tt.valid {
			assert.NoError(t, err, tt.name)
			continue
		}
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr, tt.name)
		assert.Equal(t, KeyPackageName, cfgErr.Key)
		assert.Equal(t, tt.name, cfgErr.Value)
	}
}

func TestConfigurationError_Message(t *testing.T) {
	err := &ConfigurationError{Key: KeyPackageType, Value: "umd", Reason: "unknown package type"}
	assert.Equal(t, `invalid answer packageType="umd": unknown package type`, err.Error())

	err = &ConfigurationError{Key: KeyPackageName, Reason: "package name is required"}
	assert.Equal(t, "invalid answer packageName: package name is required", err.Error())
}
