package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/logging"
	"github.com/rshade/pagenav/internal/pagination"
)

// windowFlags holds the flags of the window command.
type windowFlags struct {
	params  pagination.Params
	output  string
	explain bool
}

// NewWindowCmd creates the window command, which prints the page numbers a
// control would show for a given page.
func NewWindowCmd() *cobra.Command {
	flags := windowFlags{params: *pagination.NewParams()}

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Compute the visible page-number window",
		Long: `Computes which page numbers a page-number control shows for a target page.

The target is centered when there are enough pages on both sides; otherwise
the window is pinned to the first or last page. Give the page count directly
with --total, or derive it from --items and --page-size.`,
		Example: `  # Window around page 12 of 50
  pagenav window --page 12 --total 50

  # Narrow window of 5, as YAML
  pagenav window --page 3 --total 8 --count 5 --output yaml

  # Derive pages from an item count and show the arithmetic
  pagenav window --page 4 --items 95 --page-size 10 --explain`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWindowCmd(cmd, flags)
		},
	}

	cmd.Flags().IntVar(&flags.params.Page, "page", pagination.DefaultPage, "target page (clamped to the sequence)")
	cmd.Flags().IntVar(&flags.params.TotalPages, "total", 0, "total number of pages")
	cmd.Flags().IntVar(&flags.params.TotalItems, "items", 0, "total number of items (derives --total with --page-size)")
	cmd.Flags().IntVar(&flags.params.PageSize, "page-size", pagination.DefaultPageSize, "items per page with --items")
	cmd.Flags().IntVar(&flags.params.Count, "count", pagination.DefaultDisplayCount, "page numbers shown at once")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output format: table, json or yaml (default from config)")
	cmd.Flags().BoolVar(&flags.explain, "explain", false, "show how the window was derived")

	return cmd
}

func runWindowCmd(cmd *cobra.Command, flags windowFlags) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if err := flags.params.Validate(); err != nil {
		return err
	}
	format, err := resolveOutputFormat(flags.output)
	if err != nil {
		return err
	}

	meta := pagination.MetaFromParams(flags.params)
	log.Debug().
		Ctx(ctx).
		Str("component", "window").
		Int("page", meta.CurrentPage).
		Int("total_pages", meta.TotalPages).
		Ints("window", meta.Window).
		Msg("computed window")

	if format != outputTable {
		return writeStructured(cmd.OutOrStdout(), format, meta)
	}

	out := cmd.OutOrStdout()
	if err = renderWindowTable(out, meta, flags.params.IsItemBased()); err != nil {
		return err
	}
	if flags.explain {
		return renderWindowExplanation(out, meta.Window, meta.CurrentPage, meta.TotalPages, flags.params.Count)
	}
	return nil
}

// renderWindowTable writes page metadata as aligned key/value rows.
func renderWindowTable(w io.Writer, meta pagination.PageMeta, itemBased bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	fmt.Fprintf(tw, "Current page:\t%s\n", printer.Sprintf("%d", meta.CurrentPage))
	fmt.Fprintf(tw, "Total pages:\t%s\n", printer.Sprintf("%d", meta.TotalPages))
	if itemBased {
		fmt.Fprintf(tw, "Total items:\t%s\n", printer.Sprintf("%d", meta.TotalItems))
		fmt.Fprintf(tw, "Page size:\t%s\n", printer.Sprintf("%d", meta.PageSize))
	}
	fmt.Fprintf(tw, "Has previous:\t%s\n", yesNo(meta.HasPrevious))
	fmt.Fprintf(tw, "Has next:\t%s\n", yesNo(meta.HasNext))
	fmt.Fprintf(tw, "Window:\t%s\n", formatWindow(meta.Window, meta.CurrentPage))

	return tw.Flush()
}

// renderWindowExplanation shows the centering arithmetic behind window. The
// start and end shown are the window's own bounds, not a second computation.
func renderWindowExplanation(w io.Writer, window []int, target, total, count int) error {
	if len(window) == 0 {
		_, err := fmt.Fprintln(w, "\nNo pages: the window is empty.")
		return err
	}
	count = min(count, total)
	middle := pagination.Middle(count)
	rest := count - 1
	start, end := window[0], window[len(window)-1]

	_, err := fmt.Fprintf(w, "\nmiddle = ceil(%d / 2) = %d\n"+
		"start  = max(min(%d - %d + 1, %d - %d), 1) = %d\n"+
		"end    = min(%d + %d, %d) = %d\n",
		count, middle,
		target, middle, total, rest, start,
		start, rest, total, end)
	return err
}

// formatWindow joins page numbers, bracketing the current one.
func formatWindow(window []int, current int) string {
	if len(window) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(window))
	for i, p := range window {
		parts[i] = strconv.Itoa(p)
		if p == current {
			parts[i] = "[" + parts[i] + "]"
		}
	}
	return strings.Join(parts, " ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
