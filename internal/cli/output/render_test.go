package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/batchview/internal/cli/pagination"
	"github.com/rshade/batchview/pkg/batched"
)

func sampleBatches() (Summary, *batched.BidirectionalView[int, []string]) {
	items := []string{"a", "b", "c", "d", "e"}
	view := batched.ArrayOf(items).Batched(2)
	return Summary{TotalItems: 5, TotalBatches: view.Count(), BatchSize: 2}, view
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
	assert.Contains(t, err.Error(), "table, json, ndjson, yaml")
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "18,248", FormatNumber(18248))
	assert.Equal(t, "1,000,000", FormatNumber(1000000))
}

func TestRenderer_Batches(t *testing.T) {
	summary, view := sampleBatches()

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		r, err := New(&buf, "table")
		require.NoError(t, err)
		require.NoError(t, r.Batches(summary, view.All()))

		lines := strings.Split(buf.String(), "\n")
		assert.Equal(t, "BATCH  ITEM", lines[0])
		assert.Equal(t, "0      a", lines[1])
		assert.Equal(t, "2      e", lines[5])
		assert.Contains(t, buf.String(), "5 items in 3 batches of 2")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		r, _ := New(&buf, "json")
		require.NoError(t, r.Batches(summary, view.All()))

		var doc batchesDocument
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		assert.Equal(t, summary, doc.Summary)
		require.Len(t, doc.Batches, 3)
		assert.Equal(t, Batch{Index: 2, Size: 1, Items: []string{"e"}}, doc.Batches[2])
	})

	t.Run("ndjson", func(t *testing.T) {
		var buf bytes.Buffer
		r, _ := New(&buf, "ndjson")
		require.NoError(t, r.Batches(summary, view.All()))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 4)
		assert.JSONEq(t, `{"index":0,"size":2,"items":["a","b"]}`, lines[0])
		assert.JSONEq(t, `{"summary":{"total_items":5,"total_batches":3,"batch_size":2}}`, lines[3])
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		r, _ := New(&buf, "yaml")
		require.NoError(t, r.Batches(summary, view.Backward()))

		var doc batchesDocument
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
		require.Len(t, doc.Batches, 3)
		assert.Equal(t, 2, doc.Batches[0].Index)
		assert.Equal(t, []string{"a", "b"}, doc.Batches[2].Items)
	})

	t.Run("empty json", func(t *testing.T) {
		var buf bytes.Buffer
		r, _ := New(&buf, "json")
		empty := batched.ArrayOf([]string{}).Batched(4)
		require.NoError(t, r.Batches(Summary{BatchSize: 4}, empty.All()))
		assert.Contains(t, buf.String(), `"batches": []`)
	})
}

func TestRenderer_Page(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	page, meta := pagination.PageOf(items, pagination.PaginationParams{Page: 2, PageSize: 2})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		r, _ := New(&buf, "table")
		require.NoError(t, r.Page(Page{Items: page, Pagination: meta}))
		out := buf.String()
		assert.Contains(t, out, "3  c")
		assert.Contains(t, out, "4  d")
		assert.Contains(t, out, "Page 2 of 3 (5 items)")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		r, _ := New(&buf, "json")
		require.NoError(t, r.Page(Page{Items: page, Pagination: meta}))
		var got Page
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, []string{"c", "d"}, got.Items)
		assert.Equal(t, meta, got.Pagination)
	})

	t.Run("ndjson", func(t *testing.T) {
		var buf bytes.Buffer
		r, _ := New(&buf, "ndjson")
		require.NoError(t, r.Page(Page{Items: page, Pagination: meta}))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.JSONEq(t, `{"item":"c"}`, lines[0])
		assert.Contains(t, lines[2], `"current_page":2`)
	})

	t.Run("nil items encode as empty list", func(t *testing.T) {
		var buf bytes.Buffer
		r, _ := New(&buf, "json")
		require.NoError(t, r.Page(Page{}))
		assert.Contains(t, buf.String(), `"items": []`)
	})
}

func TestRenderer_Summary(t *testing.T) {
	s := Summary{TotalItems: 12345, TotalBatches: 124, BatchSize: 100}

	var buf bytes.Buffer
	r, _ := New(&buf, "table")
	require.NoError(t, r.Summary(s))
	assert.Contains(t, buf.String(), "ITEMS")
	assert.Contains(t, buf.String(), "12,345")

	buf.Reset()
	r, _ = New(&buf, "yaml")
	require.NoError(t, r.Summary(s))
	assert.Contains(t, buf.String(), "total_items: 12345")
	assert.Equal(t, "yaml", r.Format())
}
