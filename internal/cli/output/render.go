package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/rshade/batchview/internal/cli/pagination"
	"github.com/rshade/batchview/internal/config"
)

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// ErrUnknownFormat is returned by New for unsupported formats.
var ErrUnknownFormat = errors.New("unknown output format")

// printer formats counts with thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// headerStyle is applied to table headers on terminals.
//
//nolint:gochecknoglobals // Immutable style.
var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// Batch is one rendered batch.
type Batch struct {
	Index int      `json:"index" yaml:"index"`
	Size  int      `json:"size"  yaml:"size"`
	Items []string `json:"items" yaml:"items"`
}

// Summary describes a whole batched listing.
type Summary struct {
	TotalItems   int `json:"total_items"   yaml:"total_items"`
	TotalBatches int `json:"total_batches" yaml:"total_batches"`
	BatchSize    int `json:"batch_size"    yaml:"batch_size"`
}

// Page is one rendered page with its metadata.
type Page struct {
	Items      []string                  `json:"items"      yaml:"items"`
	Pagination pagination.PaginationMeta `json:"pagination" yaml:"pagination"`
}

type batchesDocument struct {
	Summary Summary `json:"summary" yaml:"summary"`
	Batches []Batch `json:"batches" yaml:"batches"`
}

// Renderer writes results to w in a fixed format.
type Renderer struct {
	w      io.Writer
	format string
	styled bool
}

// New returns a renderer for format. Table headers are styled only when w is
// a terminal.
func New(w io.Writer, format string) (*Renderer, error) {
	if !config.IsValidFormat(format) {
		return nil, fmt.Errorf("%w %q: use one of %s", ErrUnknownFormat, format,
			strings.Join(config.Formats(), ", "))
	}
	return &Renderer{w: w, format: format, styled: isTerminal(w)}, nil
}

// Format returns the renderer's output format.
func (r *Renderer) Format() string {
	return r.format
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// FormatNumber formats n with thousand separators.
func FormatNumber(n int) string {
	return printer.Sprintf("%d", n)
}

// Batches renders every batch yielded by batches. ndjson streams one line
// per batch followed by the summary; the other formats buffer the batch
// headers (not the items) before writing.
func (r *Renderer) Batches(summary Summary, batches iter.Seq2[int, []string]) error {
	switch r.format {
	case config.FormatNDJSON:
		enc := json.NewEncoder(r.w)
		for i, items := range batches {
			if err := enc.Encode(Batch{Index: i, Size: len(items), Items: items}); err != nil {
				return fmt.Errorf("encoding NDJSON: %w", err)
			}
		}
		if err := enc.Encode(map[string]Summary{"summary": summary}); err != nil {
			return fmt.Errorf("encoding NDJSON summary: %w", err)
		}
		return nil
	case config.FormatJSON, config.FormatYAML:
		doc := batchesDocument{Summary: summary, Batches: []Batch{}}
		for i, items := range batches {
			doc.Batches = append(doc.Batches, Batch{Index: i, Size: len(items), Items: items})
		}
		return r.encode(doc)
	default:
		return r.table([]string{"BATCH", "ITEM"}, func(tw io.Writer) error {
			for i, items := range batches {
				for _, item := range items {
					if _, err := fmt.Fprintf(tw, "%d\t%s\n", i, item); err != nil {
						return err
					}
				}
			}
			return nil
		}, r.summaryLine(summary))
	}
}

// Page renders a single page of items.
func (r *Renderer) Page(page Page) error {
	if page.Items == nil {
		page.Items = []string{}
	}

	switch r.format {
	case config.FormatNDJSON:
		enc := json.NewEncoder(r.w)
		for _, item := range page.Items {
			if err := enc.Encode(map[string]string{"item": item}); err != nil {
				return fmt.Errorf("encoding NDJSON: %w", err)
			}
		}
		if err := enc.Encode(map[string]pagination.PaginationMeta{"pagination": page.Pagination}); err != nil {
			return fmt.Errorf("encoding NDJSON pagination: %w", err)
		}
		return nil
	case config.FormatJSON, config.FormatYAML:
		return r.encode(page)
	default:
		m := page.Pagination
		offset := (m.CurrentPage - 1) * m.PageSize
		footer := fmt.Sprintf("Page %s of %s (%s items)",
			FormatNumber(m.CurrentPage), FormatNumber(m.TotalPages), FormatNumber(m.TotalItems))
		return r.table([]string{"#", "ITEM"}, func(tw io.Writer) error {
			for i, item := range page.Items {
				if _, err := fmt.Fprintf(tw, "%d\t%s\n", offset+i+1, item); err != nil {
					return err
				}
			}
			return nil
		}, footer)
	}
}

// Summary renders only the totals of a listing.
func (r *Renderer) Summary(summary Summary) error {
	switch r.format {
	case config.FormatNDJSON:
		if err := json.NewEncoder(r.w).Encode(summary); err != nil {
			return fmt.Errorf("encoding NDJSON: %w", err)
		}
		return nil
	case config.FormatJSON, config.FormatYAML:
		return r.encode(summary)
	default:
		return r.table([]string{"ITEMS", "BATCH SIZE", "BATCHES"}, func(tw io.Writer) error {
			_, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", FormatNumber(summary.TotalItems),
				FormatNumber(summary.BatchSize), FormatNumber(summary.TotalBatches))
			return err
		}, "")
	}
}

func (r *Renderer) summaryLine(s Summary) string {
	return fmt.Sprintf("%s items in %s batches of %s",
		FormatNumber(s.TotalItems), FormatNumber(s.TotalBatches), FormatNumber(s.BatchSize))
}

// encode writes v as indented JSON or YAML.
func (r *Renderer) encode(v any) error {
	if r.format == config.FormatYAML {
		enc := yaml.NewEncoder(r.w)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// table lays rows out with tabwriter. The header line is styled after
// alignment so escape codes do not skew column widths.
func (r *Renderer) table(header []string, rows func(io.Writer) error, footer string) error {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := rows(tw); err != nil {
		return fmt.Errorf("writing row: %w", err)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	out := buf.String()
	if r.styled {
		head, rest, _ := strings.Cut(out, "\n")
		out = headerStyle.Render(head) + "\n" + rest
	}
	if footer != "" {
		out += "\n" + footer + "\n"
	}

	_, err := io.WriteString(r.w, out)
	return err
}
