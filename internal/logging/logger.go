// Package logging builds the zerolog loggers used across pagenav and carries
// them, together with a per-invocation trace ID, through context.Context.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Output and format names accepted in Config.
const (
	OutputStderr  = "stderr"
	OutputStdout  = "stdout"
	OutputFile    = "file"
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config describes how a logger is built.
type Config struct {
	Level  string
	Format string
	Output string
	File   string
	Caller bool
}

// LogPathResult is the outcome of NewLoggerWithPath.
type LogPathResult struct {
	Logger         zerolog.Logger
	UsingFile      bool
	FilePath       string
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file handle, if one was opened.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLogger builds a logger writing to w with the configured level and format.
func NewLogger(cfg Config, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	if cfg.Format != FormatJSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).Level(lvl).With().Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// NewLoggerWithPath builds a logger for cfg, opening the log file when the
// output is "file". If the file cannot be opened the logger falls back to
// stderr and the reason is reported in the result.
func NewLoggerWithPath(cfg Config) LogPathResult {
	switch cfg.Output {
	case OutputFile:
		if cfg.File == "" {
			return fallback(cfg, "no log file configured")
		}
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o700); err != nil {
			return fallback(cfg, err.Error())
		}
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return fallback(cfg, err.Error())
		}
		// Files always get JSON lines; console escapes do not belong on disk.
		fileCfg := cfg
		fileCfg.Format = FormatJSON
		return LogPathResult{
			Logger:    NewLogger(fileCfg, f),
			UsingFile: true,
			FilePath:  cfg.File,
			file:      f,
		}
	case OutputStdout:
		return LogPathResult{Logger: NewLogger(cfg, os.Stdout)}
	default:
		return LogPathResult{Logger: NewLogger(cfg, os.Stderr)}
	}
}

func fallback(cfg Config, reason string) LogPathResult {
	return LogPathResult{
		Logger:         NewLogger(cfg, os.Stderr),
		FallbackUsed:   true,
		FallbackReason: reason,
	}
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

// PrintLogPathMessage tells the user where logs are being written.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user file logging could not be enabled.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: file logging unavailable (%s), logging to stderr\n", reason)
}
