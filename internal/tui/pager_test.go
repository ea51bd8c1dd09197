package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/batchview/pkg/batched"
)

func newTestPager(n, size int) PagerModel[[]string] {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	return NewPagerModel[[]string]("test", batched.ArrayOf(lines).Batched(size), StringItems)
}

func press(t *testing.T, m PagerModel[[]string], msg tea.KeyMsg) PagerModel[[]string] {
	t.Helper()
	next, _ := m.Update(msg)
	pm, ok := next.(PagerModel[[]string])
	require.True(t, ok)
	return pm
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPagerModel_Navigation(t *testing.T) {
	m := newTestPager(25, 10)
	assert.Equal(t, 0, m.Current())
	assert.Contains(t, m.View(), "line 1")
	assert.Contains(t, m.View(), "(10 items, batch size 10)")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Current())
	assert.Contains(t, m.View(), "line 11")

	m = press(t, m, runes("l"))
	assert.Equal(t, 2, m.Current())
	assert.Contains(t, m.View(), "(5 items, batch size 10)")

	// Already on the last batch.
	m = press(t, m, runes("n"))
	assert.Equal(t, 2, m.Current())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, m.Current())

	m = press(t, m, runes("g"))
	assert.Equal(t, 0, m.Current())

	m = press(t, m, runes("h"))
	assert.Equal(t, 0, m.Current())

	m = press(t, m, runes("G"))
	assert.Equal(t, 2, m.Current())
	assert.Contains(t, m.View(), "line 25")
}

func TestPagerModel_Scroll(t *testing.T) {
	m := newTestPager(30, 30)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 9})
	m = next.(PagerModel[[]string])

	for range 6 {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	view := m.View()
	assert.Contains(t, view, "line 3")
	assert.Contains(t, view, "line 7")
	assert.NotContains(t, view, "line 8")
	assert.Equal(t, 0, m.Current())
}

func TestPagerModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		m := newTestPager(5, 2)
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd, msg.String())
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}

func TestPagerModel_Empty(t *testing.T) {
	m := newTestPager(0, 4)
	assert.Contains(t, m.View(), "No items to display.")

	m = press(t, m, runes("G"))
	assert.Equal(t, 0, m.Current())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.Current())
}

func TestPagerModel_Help(t *testing.T) {
	m := newTestPager(5, 2)
	assert.NotContains(t, m.View(), "first batch")

	m = press(t, m, runes("?"))
	assert.Contains(t, m.View(), "first batch")
}
