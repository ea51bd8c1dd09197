package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Source supplies the rows of a list.
type Source[T any] interface {
	Len() int
	At(i int) T
}

// Slice adapts a slice to Source.
type Slice[T any] []T

// Len returns the number of rows.
func (s Slice[T]) Len() int { return len(s) }

// At returns row i.
func (s Slice[T]) At(i int) T { return s[i] }

// RenderFunc renders the row at index i.
type RenderFunc[T any] func(i int, item T, selected bool) string

// VirtualListModel scrolls a cursor through a Source and renders only the
// rows in view.
type VirtualListModel[T any] struct {
	source     Source[T]
	renderFunc RenderFunc[T]

	// selected is the cursor row; top is the first visible row.
	selected int
	top      int

	height int
	width  int
}

// NewVirtualListModel creates a list over source with the given viewport.
func NewVirtualListModel[T any](source Source[T], height, width int, renderFunc RenderFunc[T]) *VirtualListModel[T] {
	return &VirtualListModel[T]{
		source:     source,
		renderFunc: renderFunc,
		height:     max(height, 1),
		width:      width,
	}
}

// Init initializes the model (required for tea.Model interface).
func (m *VirtualListModel[T]) Init() tea.Cmd {
	return nil
}

// Update handles keyboard and resize messages.
func (m *VirtualListModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.SetSize(msg.Height, msg.Width)
	}
	return m, nil
}

//nolint:exhaustive // Only navigation keys are handled.
func (m *VirtualListModel[T]) handleKeyMsg(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyUp:
		m.SetSelected(m.selected - 1)
	case tea.KeyDown:
		m.SetSelected(m.selected + 1)
	case tea.KeyPgUp:
		m.SetSelected(m.selected - m.height)
	case tea.KeyPgDown:
		m.SetSelected(m.selected + m.height)
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return
		}
		switch msg.Runes[0] {
		case 'j':
			m.SetSelected(m.selected + 1)
		case 'k':
			m.SetSelected(m.selected - 1)
		}
	}
}

// SetSource replaces the rows and moves the cursor to the top.
func (m *VirtualListModel[T]) SetSource(source Source[T]) {
	m.source = source
	m.selected = 0
	m.top = 0
}

// SetSize changes the viewport and keeps the cursor visible.
func (m *VirtualListModel[T]) SetSize(height, width int) {
	m.height = max(height, 1)
	m.width = width
	m.scrollToSelected()
}

// SetSelected moves the cursor, capping to valid bounds.
func (m *VirtualListModel[T]) SetSelected(index int) {
	n := m.ItemCount()
	if n == 0 {
		m.selected = 0
		m.top = 0
		return
	}
	m.selected = min(max(index, 0), n-1)
	m.scrollToSelected()
}

func (m *VirtualListModel[T]) scrollToSelected() {
	if m.selected < m.top {
		m.top = m.selected
	}
	if m.selected >= m.top+m.height {
		m.top = m.selected - m.height + 1
	}
}

// View renders the rows in the viewport.
func (m *VirtualListModel[T]) View() string {
	n := m.ItemCount()
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	for i := m.top; i < min(m.top+m.height, n); i++ {
		if i > m.top {
			sb.WriteByte('\n')
		}
		sb.WriteString(m.renderFunc(i, m.source.At(i), i == m.selected))
	}
	return sb.String()
}

// ItemCount returns the number of rows.
func (m *VirtualListModel[T]) ItemCount() int {
	if m.source == nil {
		return 0
	}
	return m.source.Len()
}

// Selected returns the cursor row.
func (m *VirtualListModel[T]) Selected() int {
	return m.selected
}

// VisibleFrom returns the first visible row.
func (m *VirtualListModel[T]) VisibleFrom() int {
	return m.top
}

// VisibleTo returns the row after the last visible one.
func (m *VirtualListModel[T]) VisibleTo() int {
	return min(m.top+m.height, m.ItemCount())
}

// Height returns the viewport height.
func (m *VirtualListModel[T]) Height() int {
	return m.height
}

// Width returns the viewport width.
func (m *VirtualListModel[T]) Width() int {
	return m.width
}
