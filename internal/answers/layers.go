package answers

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Layers collects answers from every source into one viper instance.
// Precedence, lowest first: schema defaults, config defaults, answer file,
// flags, prompts. Only keys that no answer file or flag provided are
// prompted for.
type Layers struct {
	v         *viper.Viper
	questions []Question
	explicit  map[string]bool
}

// NewLayers starts from the schema defaults.
func NewLayers(appName string) *Layers {
	l := &Layers{
		v:         viper.New(),
		questions: Questions(appName),
		explicit:  make(map[string]bool),
	}
	for _, q := range l.questions {
		l.v.SetDefault(q.Key, q.Default)
	}
	return l
}

// SetDefaults overrides schema defaults, typically with the answers
// section of the user config. Unknown keys are a ConfigurationError.
func (l *Layers) SetDefaults(values map[string]any) error {
	for key, value := range values {
		k, err := canonicalKey(key)
		if err != nil {
			return err
		}
		l.v.SetDefault(k, value)
	}
	return nil
}

// LoadFile merges a YAML answer file. Keys it sets count as explicit.
func (l *Layers) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read answer file: %w", err)
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse answer file %s: %w", path, err)
	}

	values := make(map[string]any, len(raw))
	for key, value := range raw {
		k, err := canonicalKey(key)
		if err != nil {
			return err
		}
		values[k] = value
		l.explicit[k] = true
	}
	return l.v.MergeConfigMap(values)
}

// BindFlag binds a command-line flag to an answer key. A flag the user
// actually passed counts as explicit.
func (l *Layers) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("no flag bound to %s", key)
	}
	k, err := canonicalKey(key)
	if err != nil {
		return err
	}
	if err := l.v.BindPFlag(k, flag); err != nil {
		return fmt.Errorf("failed to bind flag --%s: %w", flag.Name, err)
	}
	if flag.Changed {
		l.explicit[k] = true
	}
	return nil
}

// set records an explicit answer.
func (l *Layers) set(key string, value any) error {
	k, err := canonicalKey(key)
	if err != nil {
		return err
	}
	l.v.Set(k, value)
	l.explicit[k] = true
	return nil
}

// isExplicit reports whether key came from an answer file, flag or set.
func (l *Layers) isExplicit(key string) bool {
	return l.explicit[key]
}

// Pending returns the questions still to be asked, with each default
// replaced by the value the lower layers resolved.
func (l *Layers) Pending() []Question {
	var pending []Question
	for _, q := range l.questions {
		if l.explicit[q.Key] {
			continue
		}
		q.Default = l.v.Get(q.Key)
		pending = append(pending, q)
	}
	return pending
}

// Prompt asks every pending question and records the answers.
func (l *Layers) Prompt(ctx context.Context, p Prompter) error {
	for _, q := range l.Pending() {
		value, err := p.Ask(ctx, q)
		if err != nil {
			return fmt.Errorf("asking %s: %w", q.Key, err)
		}
		l.v.Set(q.Key, value)
		l.explicit[q.Key] = true
	}
	return nil
}

// Resolve produces the answer record. Each key must hold a value of the
// right shape; the record is then validated.
func (l *Layers) Resolve() (Record, error) {
	var rec Record
	var err error

	str := func(key string) string {
		if err != nil {
			return ""
		}
		var s string
		s, err = l.stringValue(key)
		return s
	}
	boolean := func(key string) bool {
		if err != nil {
			return false
		}
		var b bool
		b, err = l.boolValue(key)
		return b
	}

	rec.PackageName = str(KeyPackageName)
	rec.PackageDescription = str(KeyPackageDescription)
	rec.PackageHomePageURL = str(KeyPackageHomePageURL)
	rec.AuthorName = str(KeyAuthorName)
	rec.AuthorEmail = str(KeyAuthorEmail)
	rec.AuthorHomepage = str(KeyAuthorHomepage)
	rec.URLRepository = str(KeyURLRepository)
	rec.PackageKeywords = str(KeyPackageKeywords)
	rec.PackageWebsite = str(KeyPackageWebsite)
	rec.PackageType = PackageType(str(KeyPackageType))
	rec.RunGitInit = boolean(KeyRunGitInit)
	rec.RunPackageScripts = boolean(KeyRunPackageScripts)
	rec.IncludeLicense = boolean(KeyIncludeLicense)
	if err != nil {
		return Record{}, err
	}

	if err := rec.Validate(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (l *Layers) stringValue(key string) (string, error) {
	value := l.v.Get(key)
	if value == nil {
		return "", &ConfigurationError{Key: key, Reason: "no value"}
	}
	// Answer files may list keywords as a YAML sequence.
	if list, ok := value.([]any); ok {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			parts = append(parts, cast.ToString(item))
		}
		return strings.Join(parts, ","), nil
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return "", &ConfigurationError{Key: key, Value: fmt.Sprint(value), Reason: "not a string"}
	}
	return strings.TrimSpace(s), nil
}

func (l *Layers) boolValue(key string) (bool, error) {
	value := l.v.Get(key)
	if value == nil {
		return false, &ConfigurationError{Key: key, Reason: "no value"}
	}
	b, err := cast.ToBoolE(value)
	if err != nil {
		return false, &ConfigurationError{Key: key, Value: fmt.Sprint(value), Reason: "not a boolean"}
	}
	return b, nil
}

// canonicalKey maps a key in any letter case to its schema spelling.
func canonicalKey(key string) (string, error) {
	for _, k := range Keys() {
		if strings.EqualFold(k, key) {
			return k, nil
		}
	}
	return "", &ConfigurationError{Key: key, Reason: "unknown question"}
}
