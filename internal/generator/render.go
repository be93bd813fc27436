package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"text/template"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Renderer handles template parsing and rendering with caching.
// A Renderer caches by template path, so use one per template filesystem.
type Renderer struct {
	funcMap template.FuncMap
	cache   map[string]*template.Template
	mu      sync.RWMutex
}

// NewRenderer creates a renderer with built-in helper functions
func NewRenderer() *Renderer {
	return &Renderer{
		funcMap: defaultFuncMap(),
		cache:   make(map[string]*template.Template),
	}
}

// RenderString renders a template from a string.
// The name is used for caching and error messages.
func (r *Renderer) RenderString(name, templateStr string, data any) ([]byte, error) {
	return r.render("string:"+name, name, func() (string, error) { return templateStr, nil }, data)
}

// RenderFS renders the template stored at path in fsys.
func (r *Renderer) RenderFS(fsys fs.FS, path string, data any) ([]byte, error) {
	return r.render("fs:"+path, path, func() (string, error) {
		b, err := fs.ReadFile(fsys, path)
		if err != nil {
			return "", fmt.Errorf("failed to read template from fs '%s': %w", path, err)
		}
		return string(b), nil
	}, data)
}

// ClearCache clears the template cache (useful for testing)
func (r *Renderer) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]*template.Template)
}

func (r *Renderer) render(key, name string, source func() (string, error), data any) ([]byte, error) {
	r.mu.RLock()
	tmpl, ok := r.cache[key]
	r.mu.RUnlock()

	if !ok {
		text, err := source()
		if err != nil {
			return nil, err
		}
		tmpl, err = template.New(name).
			Funcs(r.funcMap).
			Option("missingkey=error").
			Parse(text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template '%s': %w", name, err)
		}

		r.mu.Lock()
		r.cache[key] = tmpl
		r.mu.Unlock()
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render template '%s': %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}

func defaultFuncMap() template.FuncMap {
	return template.FuncMap{
		// Case conversion
		"camelCase": CamelCase, // my-lib → myLib
		"kebabCase": KebabCase, // MyLib → my-lib
		"title":     Title,     // my lib → My Lib

		// String manipulation
		"quote":     Quote,
		"upper":     strings.ToUpper,
		"lower":     strings.ToLower,
		"trim":      strings.TrimSpace,
		"join":      strings.Join,
		"hasPrefix": strings.HasPrefix,
		"replace":   strings.ReplaceAll,

		// Utilities
		"json":    JSON,
		"default": Default,
	}
}

// CamelCase converts kebab-case, snake_case or scoped npm names to camelCase.
// Examples: my-lib → myLib, @scope/my_lib → myLib
func CamelCase(s string) string {
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || unicode.IsSpace(r)
	})
	for i, part := range parts {
		r := []rune(part)
		if i == 0 {
			r[0] = unicode.ToLower(r[0])
		} else {
			r[0] = unicode.ToUpper(r[0])
		}
		parts[i] = string(r)
	}
	return strings.Join(parts, "")
}

// KebabCase converts PascalCase, camelCase or spaced words to kebab-case.
// Examples: MyLib → my-lib, HTTPServer → http-server, my lib → my-lib
func KebabCase(s string) string {
	var b strings.Builder
	runes := []rune(strings.TrimSpace(s))
	for i, r := range runes {
		switch {
		case r == ' ' || r == '_':
			b.WriteRune('-')
		case unicode.IsUpper(r):
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteRune('-')
				}
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

var titleCaser = cases.Title(language.English)

// Title converts a string to title case (first letter of each word capitalized)
func Title(s string) string {
	return titleCaser.String(s)
}

// Quote wraps a string in double quotes
func Quote(s string) string {
	return fmt.Sprintf("%q", s)
}

// JSON encodes v as compact JSON without HTML escaping.
func JSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Default returns the default value if the given value is nil or empty
func Default(defaultVal, val any) any {
	switch v := val.(type) {
	case nil:
		return defaultVal
	case string:
		if v == "" {
			return defaultVal
		}
	case []string:
		if len(v) == 0 {
			return defaultVal
		}
	case []any:
		if len(v) == 0 {
			return defaultVal
		}
	}
	return val
}
