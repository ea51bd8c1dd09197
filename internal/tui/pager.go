package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	listview "github.com/rshade/batchview/internal/tui/list"
)

// Default terminal dimensions used before the first WindowSizeMsg.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// chromeLines is the number of lines the header, divider and help take.
const chromeLines = 4

// Batches is the part of a bidirectional batched view the pager navigates.
// *batched.BidirectionalView satisfies it.
type Batches[S any] interface {
	Count() int
	BatchSize() int
	At(i int) S
	IndexAfter(i int) int
	IndexBefore(i int) int
}

// ItemsFunc exposes the items of one batch as list rows.
type ItemsFunc[S any] func(batch S) listview.Source[string]

// PagerModel is the Bubble Tea model for browsing batches.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type PagerModel[S any] struct {
	title   string
	batches Batches[S]
	items   ItemsFunc[S]
	current int

	list *listview.VirtualListModel[string]
	keys keyMap
	help help.Model

	width  int
	height int
}

// NewPagerModel creates a pager positioned on the first batch.
func NewPagerModel[S any](title string, batches Batches[S], items ItemsFunc[S]) PagerModel[S] {
	m := PagerModel[S]{
		title:   title,
		batches: batches,
		items:   items,
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.list = listview.NewVirtualListModel[string](nil, m.listHeight(), m.width, renderRow)
	m.load()
	return m
}

// StringItems is the ItemsFunc for batches that are string slices.
func StringItems(batch []string) listview.Source[string] {
	return listview.Slice[string](batch)
}

// Init initializes the model (Bubble Tea interface).
func (m PagerModel[S]) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m PagerModel[S]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.list.SetSize(m.listHeight(), m.width)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m PagerModel[S]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := m.batches.Count()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Next):
		if m.current < count-1 {
			m.current = m.batches.IndexAfter(m.current)
			m.load()
		}
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		if m.current > 0 {
			m.current = m.batches.IndexBefore(m.current)
			m.load()
		}
		return m, nil
	case key.Matches(msg, m.keys.First):
		m.current = 0
		m.load()
		return m, nil
	case key.Matches(msg, m.keys.Last):
		m.current = max(count-1, 0)
		m.load()
		return m, nil
	}

	m.list.Update(msg)
	return m, nil
}

// load slices the current batch out of the view. The index is clamped
// because the view reflects a source that may have shrunk.
func (m *PagerModel[S]) load() {
	count := m.batches.Count()
	if count == 0 {
		m.current = 0
		m.list.SetSource(listview.Slice[string](nil))
		return
	}
	m.current = min(m.current, count-1)
	m.list.SetSource(m.items(m.batches.At(m.current)))
}

func (m PagerModel[S]) listHeight() int {
	return max(m.height-chromeLines, 1)
}

// renderRow numbers rows within their batch.
func renderRow(i int, item string, selected bool) string {
	row := fmt.Sprintf("%6d  %s", i+1, item)
	if selected {
		return selectedStyle.Render(row)
	}
	return row
}

// View renders the current batch (Bubble Tea interface).
func (m PagerModel[S]) View() string {
	count := m.batches.Count()
	if count == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(m.title),
			mutedStyle.Render("No items to display."),
			m.help.View(m.keys),
		)
	}

	header := strings.Join([]string{
		titleStyle.Render(m.title),
		labelStyle.Render("Batch ") + valueStyle.Render(strconv.Itoa(m.current+1)) +
			labelStyle.Render(" of ") + valueStyle.Render(strconv.Itoa(count)),
		labelStyle.Render(fmt.Sprintf("(%d items, batch size %d)", m.list.ItemCount(), m.batches.BatchSize())),
	}, "  ")

	return lipgloss.JoinVertical(lipgloss.Left,
		dividerStyle.Render(header),
		m.list.View(),
		"",
		m.help.View(m.keys),
	)
}

// Current returns the 0-based index of the displayed batch.
func (m PagerModel[S]) Current() int {
	return m.current
}
