package listview

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func rows(n int) Slice[string] {
	out := make(Slice[string], n)
	for i := range out {
		out[i] = fmt.Sprintf("row %d", i)
	}
	return out
}

func plain(_ int, item string, selected bool) string {
	if selected {
		return "> " + item
	}
	return "  " + item
}

func TestVirtualListModel_Navigation(t *testing.T) {
	m := NewVirtualListModel[string](rows(20), 5, 40, plain)

	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, 0, m.VisibleFrom())
	assert.Equal(t, 5, m.VisibleTo())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, m.Selected())

	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 7, m.Selected())
	assert.Equal(t, 3, m.VisibleFrom())
	assert.Equal(t, 8, m.VisibleTo())

	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 19, m.Selected())
	assert.Equal(t, 20, m.VisibleTo())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 18, m.Selected())
	assert.Equal(t, 15, m.VisibleFrom())

	for range 4 {
		m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	}
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, 0, m.VisibleFrom())
}

func TestVirtualListModel_View(t *testing.T) {
	m := NewVirtualListModel[string](rows(10), 3, 40, plain)
	m.SetSelected(4)

	lines := strings.Split(m.View(), "\n")
	assert.Equal(t, []string{"  row 2", "  row 3", "> row 4"}, lines)

	m.SetSize(10, 80)
	assert.Len(t, strings.Split(m.View(), "\n"), 8)
	assert.Equal(t, 80, m.Width())
	assert.Equal(t, 10, m.Height())
}

func TestVirtualListModel_Empty(t *testing.T) {
	m := NewVirtualListModel[string](rows(0), 3, 40, plain)
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.Selected())
	assert.Empty(t, m.View())

	m.SetSource(rows(2))
	assert.Equal(t, 2, m.ItemCount())
	m.SetSelected(9)
	assert.Equal(t, 1, m.Selected())
}
