// Package listview provides a virtual scrolling list for Bubble Tea models.
//
// Only the rows inside the viewport are rendered, so scrolling cost is
// O(viewport height) regardless of how many rows the list holds. Rows are
// read through a Source, which lets a list display a batch without copying
// it.
package listview
