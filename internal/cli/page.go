package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/batchview/internal/cli/output"
	"github.com/rshade/batchview/internal/cli/pagination"
)

// NewPageCmd creates the page command, which prints a single page of the
// input lines. Page p is batch p-1 of the input batched by the page size.
func NewPageCmd() *cobra.Command {
	params := pagination.NewPaginationParams()

	cmd := &cobra.Command{
		Use:   "page [file]",
		Short: "Print one page of input lines",
		Long: `Reads lines from a file (or stdin) and prints the requested page along with
pagination metadata. Requests past the last page return the last page.`,
		Example: `  # Second page of 50 lines
  batchview page --page 2 input.txt

  # Page metadata as JSON
  batchview page --page 3 --page-size 20 --output json input.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(cmd, args, *params)
		},
	}

	cmd.Flags().IntVar(&params.Page, "page", pagination.DefaultPage, "page number (1-based)")
	cmd.Flags().IntVar(&params.PageSize, "page-size", pagination.DefaultPageSize, "lines per page")

	return cmd
}

func runPage(cmd *cobra.Command, args []string, params pagination.PaginationParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	lines, err := readLines(cmd, args)
	if err != nil {
		return err
	}

	items, meta := pagination.PageOf(lines, params)
	logger.Debug().Ctx(cmd.Context()).
		Int("requested_page", params.Page).Int("page", meta.CurrentPage).
		Int("total_pages", meta.TotalPages).Msg("page selected")

	return renderer.Page(output.Page{Items: items, Pagination: meta})
}
