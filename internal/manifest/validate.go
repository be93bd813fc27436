package manifest

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/package.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// Issue is one problem found in a manifest.
type Issue struct {
	Path    string // JSON pointer into the manifest, e.g. "/scripts/test"
	Message string
}

// ValidationError lists every problem found in a manifest.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.Path + ": " + issue.Message
	}
	return "invalid package.json: " + strings.Join(parts, "; ")
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("package.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("package.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks the manifest against the package.json schema, that the
// version is semver, and that dependency ranges parse. Problems come back
// as a *ValidationError; other errors mean validation could not run.
func Validate(m Manifest) error {
	schema, err := getSchema()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	data, err := Encode(m)
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("preparing manifest for validation: %w", err)
	}

	var issues []Issue
	if err := schema.Validate(inst); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return fmt.Errorf("unexpected validation error: %w", err)
		}
		issues = append(issues, schemaIssues(ve)...)
	}
	issues = append(issues, versionIssues(m)...)

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

func schemaIssues(ve *jsonschema.ValidationError) []Issue {
	var issues []Issue
	collect(ve, &issues)
	if len(issues) == 0 {
		return []Issue{{Message: ve.Error()}}
	}
	return issues
}

// collect gathers the leaf errors, which name the offending property.
func collect(ve *jsonschema.ValidationError, issues *[]Issue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collect(cause, issues)
		}
		return
	}
	msg := ve.Error()
	if ve.ErrorKind != nil {
		msg = ve.ErrorKind.LocalizedString(printer)
	}
	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}
	*issues = append(*issues, Issue{Path: path, Message: msg})
}

func versionIssues(m Manifest) []Issue {
	var issues []Issue
	if v, ok := m["version"].(string); ok {
		if _, err := semver.StrictNewVersion(v); err != nil {
			issues = append(issues, Issue{Path: "/version", Message: fmt.Sprintf("%q is not a semantic version", v)})
		}
	}

	for _, field := range []string{"dependencies", "devDependencies", "peerDependencies"} {
		deps, ok := asMap(m[field])
		if !ok {
			continue
		}
		names := make([]string, 0, len(deps))
		for name := range deps {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			spec, ok := deps[name].(string)
			if !ok || !isRange(spec) {
				continue
			}
			if _, err := semver.NewConstraint(spec); err != nil {
				issues = append(issues, Issue{
					Path:    "/" + field + "/" + name,
					Message: fmt.Sprintf("%q is not a valid version range", spec),
				})
			}
		}
	}
	return issues
}

// isRange reports whether a dependency specifier is a version range rather
// than a dist-tag, URL, path or protocol reference.
func isRange(spec string) bool {
	if spec == "" || strings.ContainsAny(spec, ":/") {
		return false
	}
	switch spec[0] {
	case '^', '~', '>', '<', '=', '*':
		return true
	}
	return spec[0] >= '0' && spec[0] <= '9'
}
