package generator

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	addStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("green"))
	delStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("red"))
	hunkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
)

// DiffGenerator renders line diffs between an existing file and the
// content hatch wants to write.
type DiffGenerator struct {
	Context int  // unchanged lines shown around each change
	Color   bool // style +/- lines with lipgloss
}

// NewDiffGenerator returns a generator with 3 lines of context and color.
func NewDiffGenerator() *DiffGenerator {
	return &DiffGenerator{Context: 3, Color: true}
}

type editKind int

const (
	editEqual editKind = iota
	editDelete
	editInsert
)

type edit struct {
	kind editKind
	text string
}

// Generate returns a unified-style diff, or "" when the inputs are equal.
func (g *DiffGenerator) Generate(oldName, newName string, oldContent, newContent []byte) string {
	a := splitLines(string(oldContent))
	b := splitLines(string(newContent))
	edits := diffLines(a, b)

	changed := false
	for _, e := range edits {
		if e.kind != editEqual {
			changed = true
			break
		}
	}
	if !changed {
		return ""
	}

	var out strings.Builder
	fmt.Fprintf(&out, "--- %s\n+++ %s\n", oldName, newName)

	// Mark which edits fall within Context of a change.
	show := make([]bool, len(edits))
	for i, e := range edits {
		if e.kind == editEqual {
			continue
		}
		lo, hi := max(0, i-g.Context), min(len(edits)-1, i+g.Context)
		for j := lo; j <= hi; j++ {
			show[j] = true
		}
	}

	oldLine, newLine := 1, 1
	inHunk := false
	for i, e := range edits {
		if !show[i] {
			inHunk = false
		} else {
			if !inHunk {
				out.WriteString(g.style(hunkStyle, fmt.Sprintf("@@ -%d +%d @@", oldLine, newLine)) + "\n")
				inHunk = true
			}
			switch e.kind {
			case editEqual:
				out.WriteString(" " + e.text + "\n")
			case editDelete:
				out.WriteString(g.style(delStyle, "-"+e.text) + "\n")
			case editInsert:
				out.WriteString(g.style(addStyle, "+"+e.text) + "\n")
			}
		}
		if e.kind != editInsert {
			oldLine++
		}
		if e.kind != editDelete {
			newLine++
		}
	}
	return out.String()
}

func (g *DiffGenerator) style(s lipgloss.Style, text string) string {
	if !g.Color {
		return text
	}
	return s.Render(text)
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// diffLines computes an edit script from the longest common subsequence.
// Inputs are config-file sized, so the quadratic table is fine.
func diffLines(a, b []string) []edit {
	n, m := len(a), len(b)
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	edits := make([]edit, 0, n+m)
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case a[i] == b[j]:
			edits = append(edits, edit{editEqual, a[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			edits = append(edits, edit{editDelete, a[i]})
			i++
		default:
			edits = append(edits, edit{editInsert, b[j]})
			j++
		}
	}
	for ; i < n; i++ {
		edits = append(edits, edit{editDelete, a[i]})
	}
	for ; j < m; j++ {
		edits = append(edits, edit{editInsert, b[j]})
	}
	return edits
}
