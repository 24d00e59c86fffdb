package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/logging"
	"github.com/rshade/pagenav/internal/pager"
	"github.com/rshade/pagenav/internal/pagerhtml"
)

// Server timeouts.
const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// serveFlags holds the flags of the serve command.
type serveFlags struct {
	addr           string
	total          int
	title          string
	element        string
	highlightStyle string
}

// NewServeCmd creates the serve command, which serves the HTML control over HTTP.
func NewServeCmd() *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a demo page with the HTML control",
		Long: `Starts an HTTP server that renders the page-number control as a standalone
HTML page. Each button links to /?page=N, so the control can be clicked
through in a browser. The server stops on SIGINT or SIGTERM.`,
		Example: `  # Serve 40 pages on port 8080
  pagenav serve --total 40

  # Use <button> elements and a red highlight
  pagenav serve --total 40 --element button --highlight-style 'background: #c00; color: #fff'`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServeCmd(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.addr, "addr", ":8080", "address to listen on")
	cmd.Flags().IntVar(&flags.total, "total", 20, "total number of pages")
	cmd.Flags().StringVar(&flags.title, "title", "pagenav", "page title")
	cmd.Flags().StringVar(&flags.element, "element", pagerhtml.DefaultTag, "HTML element for buttons")
	cmd.Flags().StringVar(&flags.highlightStyle, "highlight-style", "", "inline CSS for the current page")

	return cmd
}

func runServeCmd(cmd *cobra.Command, flags serveFlags) error {
	if flags.total < 0 {
		return fmt.Errorf("total must be >= 0, got %d", flags.total)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logging.FromContext(ctx)
	handler := newServeHandler(flags, log)

	listener, err := net.Listen("tcp", flags.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", flags.addr, err)
	}
	cmd.Printf("Serving on http://%s (Ctrl+C to stop)\n", listener.Addr())

	return serveHTTP(ctx, listener, handler, log)
}

// newServeHandler builds the HTTP handler, one fresh Pager per request.
func newServeHandler(flags serveFlags, log *zerolog.Logger) http.Handler {
	pagerCfg := config.GetPagerConfig()
	newPager := func() *pager.Pager {
		opts := pagerCfg.ToPagerOptions()
		opts.TotalPages = flags.total
		opts.GetURL = func(page int) string { return fmt.Sprintf("/?page=%d", page) }
		opts.Logger = log
		return pager.New(opts)
	}

	htmlOpts := pagerhtml.Options{
		Element:        pagerhtml.Tag(flags.element),
		HighlightStyle: pagerhtml.ParseInlineStyle(flags.highlightStyle),
	}

	inner := pagerhtml.Handler(flags.title, newPager, htmlOpts)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		inner.ServeHTTP(w, r.WithContext(log.WithContext(r.Context())))
	})
}

// serveHTTP runs an HTTP server on listener until ctx ends, then drains
// in-flight requests within shutdownTimeout.
func serveHTTP(ctx context.Context, listener net.Listener, handler http.Handler, log *zerolog.Logger) error {
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	log.Info().Ctx(ctx).Str("component", "serve").Str("addr", listener.Addr().String()).Msg("http server listening")
	go func() {
		serveErr <- server.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		log.Info().Str("component", "serve").Msg("http server stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
