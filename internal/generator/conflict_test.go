package generator

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolver_ValidFlags(t *testing.T) {
	tests := []struct {
		name  string
		force bool
		skip  bool
		diff  bool
		want  ConflictStrategy
	}{
		{"no flags", false, false, false, &InteractiveStrategy{}},
		{"force only", true, false, false, &ForceStrategy{}},
		{"skip only", false, true, false, &SkipStrategy{}},
		{"diff only", false, false, true, &DiffStrategy{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver, err := NewResolver(tt.force, tt.skip, tt.diff)
			require.NoError(t, err)
			require.NotNil(t, resolver)
			assert.IsType(t, tt.want, resolver.strategy)
		})
	}
}

func TestNewResolver_InvalidCombinations(t *testing.T) {
	for _, flags := range [][3]bool{{true, true, false}, {true, false, true}, {true, true, true}} {
		_, err := NewResolver(flags[0], flags[1], flags[2])
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be combined")
	}
}

func TestForceStrategy_AlwaysOverwrites(t *testing.T) {
	resolution, err := (&ForceStrategy{}).Resolve("a.json", []byte("old"), []byte("newer"))

	require.NoError(t, err)
	assert.Equal(t, Overwrite, resolution)
}

func TestSkipStrategy_AlwaysSkips(t *testing.T) {
	resolution, err := (&SkipStrategy{}).Resolve("a.json", []byte("old"), []byte("newer"))

	require.NoError(t, err)
	assert.Equal(t, Skip, resolution)
}

func TestFailStrategy_ReturnsConflict(t *testing.T) {
	resolution, err := (&FailStrategy{}).Resolve("a.json", []byte("old"), []byte("newer"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
	assert.Equal(t, Cancel, resolution)
	assert.Contains(t, err.Error(), "--force")
}

func TestConflictMenuModel_Navigation(t *testing.T) {
	m := newConflictMenuModel("package.json")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(conflictMenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(conflictMenuModel)
	assert.Equal(t, 2, m.cursor)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(conflictMenuModel)
	require.NotNil(t, m.selected)
	assert.Equal(t, Overwrite, *m.selected)
	assert.NotNil(t, cmd)
}

func TestConflictMenuModel_CursorBounds(t *testing.T) {
	m := newConflictMenuModel("package.json")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(conflictMenuModel)
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < 10; i++ {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(conflictMenuModel)
	}
	assert.Equal(t, len(m.choices)-1, m.cursor)
}

func TestConflictMenuModel_QuitWithoutSelection(t *testing.T) {
	m := newConflictMenuModel("package.json")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, next.(conflictMenuModel).selected)
	assert.NotNil(t, cmd)
}

func TestConflictMenuModel_View(t *testing.T) {
	view := newConflictMenuModel("package.json").View()

	assert.Contains(t, view, "package.json")
	assert.Contains(t, view, "Show diff and decide")
	assert.Contains(t, view, "Cancel generation")
}
