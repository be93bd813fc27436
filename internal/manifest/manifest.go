// Package manifest builds the generated package.json.
//
// A Manifest is folded from patches with Merge: nested objects merge key
// by key, everything else is replaced. Merge never modifies its inputs, so
// a pipeline threads the manifest explicitly:
//
//	m = manifest.Merge(m, manifest.IdentityPatch(rec))
//	m = manifest.Merge(m, manifest.VariantPatch(cfg))
//
// Patches touching disjoint keys commute. When two patches write the same
// key the later one wins.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// Manifest is the decoded package.json object.
type Manifest map[string]any

// Patch is a partial manifest. Nil values are ignored by Merge.
type Patch map[string]any

// Merge returns a new manifest with patch folded into m. Object values
// merge recursively; scalars and arrays are replaced by the patch value.
func Merge(m Manifest, patch Patch) Manifest {
	return Manifest(mergeMaps(m, patch))
}

// Defaults fills keys that m lacks from defaults. Existing values win.
func Defaults(m Manifest, defaults Patch) Manifest {
	return Manifest(mergeMaps(defaults, m))
}

func mergeMaps(base, patch map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(patch))
	for k, v := range base {
		out[k] = clone(v)
	}
	for k, v := range patch {
		if v == nil {
			continue
		}
		pm, patchIsMap := asMap(v)
		bm, baseIsMap := asMap(out[k])
		if patchIsMap && baseIsMap {
			out[k] = mergeMaps(bm, pm)
			continue
		}
		out[k] = clone(v)
	}
	return out
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Patch:
		return m, true
	case Manifest:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, true
	}
	return nil, false
}

func clone(v any) any {
	if m, ok := asMap(v); ok {
		return mergeMaps(nil, m)
	}
	switch s := v.(type) {
	case []any:
		out := make([]any, len(s))
		for i, item := range s {
			out[i] = clone(item)
		}
		return out
	case []string:
		return append([]string{}, s...)
	}
	return v
}

// OmitEmpty returns a copy of p without empty strings, empty slices and
// objects left empty once their own empty values are dropped.
func OmitEmpty(p Patch) Patch {
	return Patch(omitEmpty(p))
}

func omitEmpty(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if sub, ok := asMap(v); ok {
			if pruned := omitEmpty(sub); len(pruned) > 0 {
				out[k] = pruned
			}
			continue
		}
		switch val := v.(type) {
		case nil:
		case string:
			if val != "" {
				out[k] = val
			}
		case []string:
			if len(val) > 0 {
				out[k] = clone(val)
			}
		case []any:
			if len(val) > 0 {
				out[k] = clone(val)
			}
		default:
			out[k] = v
		}
	}
	return out
}

// Keywords splits a comma separated keyword string. Tokens are trimmed
// and empty ones dropped. The result is never nil.
func Keywords(raw string) []string {
	keywords := []string{}
	for _, token := range strings.Split(raw, ",") {
		if token = strings.TrimSpace(token); token != "" {
			keywords = append(keywords, token)
		}
	}
	return keywords
}

// BugsURL derives the issue tracker URL from a repository URL.
func BugsURL(repository string) string {
	if repository == "" {
		return ""
	}
	return strings.TrimSuffix(repository, "/") + "/issues"
}

// Load reads a package.json. A missing file yields an empty manifest.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Decode(data)
}

// Decode parses package.json content. Numbers are kept as json.Number so
// they encode back unchanged.
func Decode(data []byte) (Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	m := Manifest{}
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("invalid package.json: %w", err)
	}
	return m, nil
}

// fieldOrder is the conventional package.json key order. Keys not listed
// follow in lexical order.
var fieldOrder = []string{
	"name", "version", "description", "keywords", "homepage", "bugs",
	"repository", "license", "author", "type", "main", "module", "types",
	"exports", "files", "scripts", "dependencies", "devDependencies",
}

// Encode renders the manifest as package.json: conventional top-level key
// order, two-space indent, no HTML escaping, trailing newline.
func Encode(m Manifest) ([]byte, error) {
	keys := orderedKeys(m)

	var buf bytes.Buffer
	if len(keys) == 0 {
		buf.WriteString("{}\n")
		return buf.Bytes(), nil
	}

	buf.WriteString("{\n")
	for i, k := range keys {
		name, err := encodeValue(k, "")
		if err != nil {
			return nil, err
		}
		value, err := encodeValue(m[k], "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", k, err)
		}
		buf.WriteString("  ")
		buf.Write(name)
		buf.WriteString(": ")
		buf.Write(value)
		if i < len(keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

func encodeValue(v any, prefix string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(prefix, "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func orderedKeys(m Manifest) []string {
	keys := make([]string, 0, len(m))
	known := make(map[string]bool, len(fieldOrder))
	for _, k := range fieldOrder {
		known[k] = true
		if _, ok := m[k]; ok {
			keys = append(keys, k)
		}
	}
	var rest []string
	for k := range m {
		if !known[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}
