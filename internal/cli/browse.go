package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/ingest"
	"github.com/rshade/pagenav/internal/logging"
	"github.com/rshade/pagenav/internal/pagination"
	"github.com/rshade/pagenav/internal/tui"
	"github.com/rshade/pagenav/internal/tui/pagebar"
)

// ErrNotInteractive is returned when browse cannot open a terminal UI.
var ErrNotInteractive = errors.New("browse needs an interactive terminal on stdout")

// browseFlags holds the flags of the browse command.
type browseFlags struct {
	pageSize int
	page     int
	sort     string
	renderer string
}

// NewBrowseCmd creates the browse command, an interactive pager over lines
// from files or stdin.
func NewBrowseCmd() *cobra.Command {
	var flags browseFlags

	cmd := &cobra.Command{
		Use:   "browse [file...]",
		Short: "Page through lines interactively",
		Long: `Opens a full-screen browser over the lines of the given files (or stdin, or
"-") with a page-number control below the list.

Keys: ←/→ or h/l previous and next page, [ and ] jump ten pages, g/G first
and last page, j/k move within the page, ? help, q quit. Page buttons can
also be clicked with the mouse.`,
		Example: `  # Browse a log file, 30 lines per page
  pagenav browse --page-size 30 app.log

  # Browse sorted command output from stdin
  ls -1 /usr/bin | pagenav browse --sort asc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowseCmd(cmd, args, flags)
		},
	}

	cmd.Flags().IntVar(&flags.pageSize, "page-size", 0, "lines per page (default: fit the terminal height)")
	cmd.Flags().IntVar(&flags.page, "page", pagination.DefaultPage, "page to start on")
	cmd.Flags().StringVar(&flags.sort, "sort", "", "sort lines: asc or desc (default: input order)")
	cmd.Flags().StringVar(&flags.renderer, "renderer", "terminal", "button renderer: terminal, plain or brackets")

	return cmd
}

func runBrowseCmd(cmd *cobra.Command, args []string, flags browseFlags) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	order, err := pagination.ParseSortOrder(flags.sort)
	if err != nil {
		return err
	}
	if flags.pageSize < 0 || flags.pageSize > pagination.MaxPageSize {
		return fmt.Errorf("%w: got %d", pagination.ErrInvalidPageSize, flags.pageSize)
	}
	renderer, ok := pagebar.RendererByName(flags.renderer)
	if !ok {
		return fmt.Errorf("unknown renderer %q (use terminal, plain or brackets)", flags.renderer)
	}
	if !isTerminal(os.Stdout) {
		return ErrNotInteractive
	}

	var stdin *os.File
	if len(args) == 0 || containsStdin(args) {
		if isTerminal(os.Stdin) {
			return errors.New("no input: pass files or pipe lines on stdin")
		}
		stdin = os.Stdin
	}

	var lines []ingest.Line
	if stdin != nil {
		lines, err = ingest.LoadLines(ctx, args, stdin)
	} else {
		lines, err = ingest.LoadLines(ctx, args, nil)
	}
	if err != nil {
		return err
	}
	lines = sortLines(lines, order)

	log.Info().
		Ctx(ctx).
		Str("component", "browse").
		Int("lines", len(lines)).
		Int("page_size", flags.pageSize).
		Msg("starting browser")

	// Lines came from stdin, so keys have to come from the controlling terminal.
	var progOpts []tea.ProgramOption
	if stdin != nil {
		progOpts = append(progOpts, tea.WithInputTTY())
	}

	model := tui.NewBrowseModel(ctx, lines, browseOptions(args, flags, renderer))
	return tui.RunBrowse(ctx, model, progOpts...)
}

// browseOptions builds the browser configuration from the global config and flags.
func browseOptions(args []string, flags browseFlags, renderer pagebar.Renderer) tui.BrowseOptions {
	pagerCfg := config.GetPagerConfig()
	opts := pagerCfg.ToPagerOptions()
	opts.CurrentPage = flags.page
	styles := pagebar.NewStyles(pagerCfg.HighlightColor)
	highlight := lipgloss.NewStyle().Underline(true)

	title := "stdin"
	if len(args) == 1 && args[0] != ingest.StdinSource {
		title = filepath.Base(args[0])
	} else if len(args) > 1 {
		title = fmt.Sprintf("%d files", len(args))
	}

	return tui.BrowseOptions{
		Title:    title,
		PageSize: flags.pageSize,
		Bar: pagebar.Options{
			Pager:          opts,
			Renderer:       renderer,
			Styles:         &styles,
			HighlightStyle: &highlight,
		},
	}
}

// sortLines reorders lines by text. An empty order keeps input order.
func sortLines(lines []ingest.Line, order string) []ingest.Line {
	return pagination.SortBy(lines, func(l ingest.Line) string { return l.Text }, order)
}

func containsStdin(args []string) bool {
	for _, a := range args {
		if a == ingest.StdinSource {
			return true
		}
	}
	return false
}
