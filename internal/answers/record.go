// Package answers holds the question schema, the answer record it
// produces, and the layering that fills the record from defaults, config,
// answer files, flags and interactive prompts.
package answers

import (
	"fmt"
	"regexp"
	"strings"
)

// Answer keys. They double as flag-independent names in answer files.
const (
	KeyPackageName        = "packageName"
	KeyPackageDescription = "packageDescription"
	KeyPackageHomePageURL = "packageHomePageUrl"
	KeyAuthorName         = "authorName"
	KeyAuthorEmail        = "authorEmail"
	KeyAuthorHomepage     = "authorHomepage"
	KeyURLRepository      = "urlRepository"
	KeyPackageKeywords    = "packageKeywords"
	KeyPackageWebsite     = "packageWebsite"
	KeyPackageType        = "packageType"
	KeyRunGitInit         = "runGitInit"
	KeyRunPackageScripts  = "runPackageScripts"
	KeyIncludeLicense     = "includeLicense"
)

// PackageType is the module system written to package.json "type".
type PackageType string

const (
	CommonJS PackageType = "commonjs"
	Module   PackageType = "module"
)

// PackageTypes lists the accepted package types in prompt order.
var PackageTypes = []PackageType{CommonJS, Module}

// Valid reports whether t is a known package type.
func (t PackageType) Valid() bool {
	return t == CommonJS || t == Module
}

// Record is a fully resolved set of answers. Every field has a value once
// Resolve returns; the record is passed by value and never changed
// afterwards.
type Record struct {
	PackageName        string      `yaml:"packageName"`
	PackageDescription string      `yaml:"packageDescription"`
	PackageHomePageURL string      `yaml:"packageHomePageUrl"`
	AuthorName         string      `yaml:"authorName"`
	AuthorEmail        string      `yaml:"authorEmail"`
	AuthorHomepage     string      `yaml:"authorHomepage"`
	URLRepository      string      `yaml:"urlRepository"`
	PackageKeywords    string      `yaml:"packageKeywords"`
	PackageWebsite     string      `yaml:"packageWebsite"`
	PackageType        PackageType `yaml:"packageType"`
	RunGitInit         bool        `yaml:"runGitInit"`
	RunPackageScripts  bool        `yaml:"runPackageScripts"`
	IncludeLicense     bool        `yaml:"includeLicense"`
}

// PackageNamePattern is the npm package name rule, optionally scoped.
// The package.json schema carries the same pattern.
const PackageNamePattern = `^(?:@[a-z0-9*~-][a-z0-9*._~-]*/)?[a-z0-9~-][a-z0-9._~-]*$`

// MaxPackageNameLength is npm's limit on package names.
const MaxPackageNameLength = 214

var packageNameRe = regexp.MustCompile(PackageNamePattern)

// Validate checks the constraints that make a record usable: a valid npm
// package name and a known package type.
func (r Record) Validate() error {
	if strings.TrimSpace(r.PackageName) == "" {
		return &ConfigurationError{Key: KeyPackageName, Reason: "package name is required"}
	}
	if len(r.PackageName) > MaxPackageNameLength {
		return &ConfigurationError{
			Key:    KeyPackageName,
			Value:  r.PackageName,
			Reason: fmt.Sprintf("package name is longer than %d characters", MaxPackageNameLength),
		}
	}
	if !packageNameRe.MatchString(r.PackageName) {
		return &ConfigurationError{
			Key:    KeyPackageName,
			Value:  r.PackageName,
			Reason: "not a valid npm package name (lowercase letters, digits, '-', '.', '_', '~', optional @scope/)",
		}
	}
	if !r.PackageType.Valid() {
		return &ConfigurationError{
			Key:    KeyPackageType,
			Value:  string(r.PackageType),
			Reason: fmt.Sprintf("unknown package type (want %q or %q)", CommonJS, Module),
		}
	}
	return nil
}

// ConfigurationError reports a missing or invalid answer. It is raised
// before anything is written.
type ConfigurationError struct {
	Key    string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid answer %s=%q: %s", e.Key, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid answer %s: %s", e.Key, e.Reason)
}
