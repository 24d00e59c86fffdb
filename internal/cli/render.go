package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/logging"
	"github.com/rshade/pagenav/internal/pager"
	"github.com/rshade/pagenav/internal/pagerhtml"
	"github.com/rshade/pagenav/internal/tui/pagebar"
)

// Render formats.
const (
	formatTerminal = "terminal"
	formatHTML     = "html"
)

// urlPlaceholder is replaced by the page number in --url-template.
const urlPlaceholder = "%d"

// ErrBadURLTemplate is returned when --url-template lacks the page placeholder.
var ErrBadURLTemplate = errors.New("url template must contain %d for the page number")

// renderFlags holds the flags of the render command.
type renderFlags struct {
	page           int
	total          int
	width          int
	containerWidth int
	format         string
	renderer       string
	urlTemplate    string
	element        string
	highlightStyle string
	highlightColor string
	hideOnNarrow   bool
	document       bool
}

// NewRenderCmd creates the render command, which prints the page-number
// control once for the given state.
func NewRenderCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the page-number control",
		Long: `Renders the page-number control for a page of a sequence, either as a
styled terminal line or as HTML.

The display count is chosen once from the widths: below the configured narrow
width (default 80 columns) the narrow count is used. Without --width the
terminal width of stdout is measured, if stdout is a terminal.`,
		Example: `  # Terminal line for page 12 of 50
  pagenav render --page 12 --total 50

  # Force a narrow layout with bracketed buttons
  pagenav render --page 12 --total 50 --width 60 --renderer brackets

  # HTML buttons with hrefs and a custom highlight
  pagenav render --page 3 --total 20 --format html --element button \
    --url-template '/items?page=%d' --highlight-style 'color: #fff; background: #c00'`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRenderCmd(cmd, flags)
		},
	}

	cmd.Flags().IntVar(&flags.page, "page", 1, "current page")
	cmd.Flags().IntVar(&flags.total, "total", 0, "total number of pages")
	cmd.Flags().IntVar(&flags.width, "width", 0, "viewport width in columns (default: measured terminal width)")
	cmd.Flags().IntVar(&flags.containerWidth, "container-width", 0, "container width in columns (0 = unknown)")
	cmd.Flags().StringVar(&flags.format, "format", formatTerminal, "output format: terminal or html")
	cmd.Flags().StringVar(&flags.renderer, "renderer", "terminal", "terminal button renderer: terminal, plain or brackets")
	cmd.Flags().StringVar(&flags.urlTemplate, "url-template", "", "URL for each page, with %d for the page number")
	cmd.Flags().StringVar(&flags.element, "element", pagerhtml.DefaultTag, "HTML element for buttons")
	cmd.Flags().StringVar(&flags.highlightStyle, "highlight-style", "", "inline CSS for the current page in HTML")
	cmd.Flags().StringVar(&flags.highlightColor, "highlight-color", "", "accent color for the terminal (default from config)")
	cmd.Flags().BoolVar(&flags.hideOnNarrow, "hide-on-narrow", false, "hide the control in narrow containers")
	cmd.Flags().BoolVar(&flags.document, "document", false, "wrap HTML output in a standalone page")

	return cmd
}

func runRenderCmd(cmd *cobra.Command, flags renderFlags) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if flags.total < 0 {
		return fmt.Errorf("total must be >= 0, got %d", flags.total)
	}

	pagerCfg := config.GetPagerConfig()
	if cmd.Flags().Changed("hide-on-narrow") {
		pagerCfg.HideOnNarrow = flags.hideOnNarrow
	}

	opts := pagerCfg.ToPagerOptions()
	opts.TotalPages = flags.total
	opts.CurrentPage = flags.page
	opts.Logger = log
	if flags.urlTemplate != "" {
		getURL, err := urlFromTemplate(flags.urlTemplate)
		if err != nil {
			return err
		}
		opts.GetURL = getURL
	}

	width := flags.width
	if width == 0 {
		width = measureTerminalWidth(os.Stdout)
	}

	switch flags.format {
	case formatTerminal:
		color := flags.highlightColor
		if color == "" {
			color = pagerCfg.HighlightColor
		}
		return renderTerminal(cmd.OutOrStdout(), opts, flags, color, width)
	case formatHTML:
		return renderHTML(cmd, opts, flags, width)
	default:
		return fmt.Errorf("unsupported format %q (use terminal or html)", flags.format)
	}
}

func renderTerminal(w io.Writer, opts pager.Options, flags renderFlags, color string, width int) error {
	renderer, ok := pagebar.RendererByName(flags.renderer)
	if !ok {
		return fmt.Errorf("unknown renderer %q (use terminal, plain or brackets)", flags.renderer)
	}
	styles := pagebar.NewStyles(color)

	bar := pagebar.New(pagebar.Options{
		Pager:    opts,
		Renderer: renderer,
		Styles:   &styles,
	}).Mount(flags.containerWidth, width)

	view := bar.View()
	if view == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, view)
	return err
}

func renderHTML(cmd *cobra.Command, opts pager.Options, flags renderFlags, width int) error {
	p := pager.New(opts)
	p.Mount(flags.containerWidth, width)

	htmlOpts := pagerhtml.Options{
		Element:        pagerhtml.Tag(flags.element),
		HighlightStyle: pagerhtml.ParseInlineStyle(flags.highlightStyle),
	}

	component := pagerhtml.Pagination(p, htmlOpts)
	if flags.document {
		component = pagerhtml.Page(fmt.Sprintf("Page %d", p.CurrentPage()), p, htmlOpts)
	}

	out := cmd.OutOrStdout()
	if err := component.Render(cmd.Context(), out); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	_, err := fmt.Fprintln(out)
	return err
}

// urlFromTemplate builds a URL generator that substitutes the page number
// for every %d in tmpl.
func urlFromTemplate(tmpl string) (func(int) string, error) {
	if !strings.Contains(tmpl, urlPlaceholder) {
		return nil, fmt.Errorf("%w: %q", ErrBadURLTemplate, tmpl)
	}
	return func(page int) string {
		return strings.ReplaceAll(tmpl, urlPlaceholder, strconv.Itoa(page))
	}, nil
}

// measureTerminalWidth returns the width of f if it is a terminal, else 0
// (unknown).
func measureTerminalWidth(f *os.File) int {
	if !isTerminal(f) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
