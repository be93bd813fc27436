package generator

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConflictResolution represents what to do with an existing file
type ConflictResolution int

const (
	Skip ConflictResolution = iota
	Overwrite
	ShowDiff
	Cancel
)

// ConflictStrategy determines how to resolve conflicts
type ConflictStrategy interface {
	Resolve(path string, existing, newer []byte) (ConflictResolution, error)
}

// Resolver handles file conflict resolution
type Resolver struct {
	strategy ConflictStrategy
}

var (
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("white")).Bold(true)
)

// NewResolver creates a conflict resolver from CLI flags.
// Returns error if --force is combined with --skip or --diff.
func NewResolver(force, skip, diff bool) (*Resolver, error) {
	if force && (skip || diff) {
		return nil, fmt.Errorf("--force cannot be combined with --skip or --diff")
	}

	var s ConflictStrategy
	switch {
	case force:
		s = &ForceStrategy{}
	case skip:
		s = &SkipStrategy{}
	case diff:
		s = &DiffStrategy{Out: os.Stdout, Diff: NewDiffGenerator()}
	default:
		s = &InteractiveStrategy{Out: os.Stdout}
	}
	return &Resolver{strategy: s}, nil
}

// NewResolverWithStrategy wraps an explicit strategy.
func NewResolverWithStrategy(s ConflictStrategy) *Resolver {
	return &Resolver{strategy: s}
}

// ResolveConflict determines what to do with a file that already exists.
func (r *Resolver) ResolveConflict(path string, existing, newer []byte) (ConflictResolution, error) {
	return r.strategy.Resolve(path, existing, newer)
}

// ForceStrategy always returns Overwrite (no prompts)
type ForceStrategy struct{}

func (s *ForceStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	return Overwrite, nil
}

// SkipStrategy always returns Skip (no prompts)
type SkipStrategy struct{}

func (s *SkipStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	return Skip, nil
}

// FailStrategy refuses every conflict. It is the default when there is no
// terminal to ask on.
type FailStrategy struct{}

func (s *FailStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	return Cancel, fmt.Errorf("%w: %s (use --force or --skip)", ErrConflict, path)
}

// DiffStrategy prints the diff first, then asks interactively.
type DiffStrategy struct {
	Out  io.Writer
	Diff *DiffGenerator
}

func (s *DiffStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	fmt.Fprint(s.Out, s.Diff.Generate(path, path+" (generated)", existing, newer))
	return (&InteractiveStrategy{Out: s.Out}).Resolve(path, existing, newer)
}

// InteractiveStrategy shows a keyboard-driven menu. Choosing "Show diff"
// prints the diff and shows the menu again.
type InteractiveStrategy struct {
	Out io.Writer
}

func (s *InteractiveStrategy) Resolve(path string, existing, newer []byte) (ConflictResolution, error) {
	diffGen := NewDiffGenerator()
	for {
		p := tea.NewProgram(newConflictMenuModel(path))
		final, err := p.Run()
		if err != nil {
			return Cancel, fmt.Errorf("failed to show menu: %w", err)
		}

		selected := final.(conflictMenuModel).selected
		if selected == nil {
			return Cancel, nil
		}
		if *selected != ShowDiff {
			return *selected, nil
		}
		fmt.Fprint(s.Out, diffGen.Generate(path, path+" (generated)", existing, newer))
	}
}

type conflictMenuModel struct {
	path     string
	choices  []string
	cursor   int
	selected *ConflictResolution
}

func newConflictMenuModel(path string) conflictMenuModel {
	return conflictMenuModel{
		path: path,
		choices: []string{
			"Show diff and decide",
			"Skip (keep existing file)",
			"Overwrite (replace with generated file)",
			"Cancel generation",
		},
	}
}

func (m conflictMenuModel) Init() tea.Cmd {
	return nil
}

func (m conflictMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case "enter":
		resolution := choiceResolutions[m.cursor]
		m.selected = &resolution
		return m, tea.Quit
	}
	return m, nil
}

var choiceResolutions = []ConflictResolution{ShowDiff, Skip, Overwrite, Cancel}

func (m conflictMenuModel) View() string {
	var b strings.Builder

	b.WriteString(warningStyle.Render("⚠️  File already exists: ") + titleStyle.Render(m.path) + "\n\n")
	b.WriteString(mutedStyle.Render("    [↑/↓] Navigate    [Enter] Select    [q] Cancel") + "\n\n")

	for i, choice := range m.choices {
		if m.cursor == i {
			b.WriteString("    " + selectedStyle.Render("> "+choice) + "\n")
		} else {
			b.WriteString("      " + choice + "\n")
		}
	}
	return b.String()
}
