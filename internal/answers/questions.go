package answers

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind is the prompt style of a question.
type Kind int

const (
	Input Kind = iota
	Select
	Confirm
)

func (k Kind) String() string {
	switch k {
	case Input:
		return "input"
	case Select:
		return "select"
	case Confirm:
		return "confirm"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalYAML writes the kind by name.
func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// Question is one entry of the question schema.
type Question struct {
	Key      string   `yaml:"key"`
	Kind     Kind     `yaml:"kind"`
	Message  string   `yaml:"message"`
	Default  any      `yaml:"default"`
	Choices  []string `yaml:"choices,omitempty"`
	Required bool     `yaml:"required,omitempty"`
}

// Questions returns the question schema in prompt order. appName is the
// default package name, usually the destination directory name.
func Questions(appName string) []Question {
	return []Question{
		{Key: KeyPackageName, Kind: Input, Message: "Project's name", Default: appName, Required: true},
		{Key: KeyPackageDescription, Kind: Input, Message: "Project's description", Default: ""},
		{Key: KeyPackageHomePageURL, Kind: Input, Message: "Project homepage url", Default: ""},
		{Key: KeyAuthorName, Kind: Input, Message: "Author's name", Default: ""},
		{Key: KeyAuthorEmail, Kind: Input, Message: "Author's email", Default: ""},
		{Key: KeyAuthorHomepage, Kind: Input, Message: "Author's homepage", Default: ""},
		{Key: KeyURLRepository, Kind: Input, Message: "GitHub repository url", Default: ""},
		{Key: KeyPackageKeywords, Kind: Input, Message: "Package keywords (comma separated)", Default: ""},
		{Key: KeyPackageWebsite, Kind: Input, Message: "Your package website", Default: ""},
		{
			Key:     KeyPackageType,
			Kind:    Select,
			Message: `Use "type": "commonjs" or "type": "module" in package.json?`,
			Default: string(CommonJS),
			Choices: []string{string(CommonJS), string(Module)},
		},
		{Key: KeyRunGitInit, Kind: Confirm, Message: "Run git init automatically?", Default: true},
		{Key: KeyRunPackageScripts, Kind: Confirm, Message: "Install dependencies and run the package setup scripts?", Default: true},
		{Key: KeyIncludeLicense, Kind: Confirm, Message: "Include an MIT license?", Default: false},
	}
}

// Keys returns the answer keys in schema order.
func Keys() []string {
	qs := Questions("")
	keys := make([]string, len(qs))
	for i, q := range qs {
		keys[i] = q.Key
	}
	return keys
}

// SchemaYAML renders the question schema as YAML.
func SchemaYAML(appName string) ([]byte, error) {
	return yaml.Marshal(struct {
		Questions []Question `yaml:"questions"`
	}{Questions(appName)})
}

func isKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}
