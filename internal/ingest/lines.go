// Package ingest loads the line records that the browse command pages through.
package ingest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/pagenav/internal/logging"
)

// StdinSource is the source name that reads from standard input.
const StdinSource = "-"

// maxLineBytes is the longest line the scanner accepts.
const maxLineBytes = 1 << 20

// ErrNoSources is returned when LoadLines is called without sources or stdin.
var ErrNoSources = errors.New("no input sources")

// Line is one input line.
type Line struct {
	Source string `json:"source" yaml:"source"`
	Number int    `json:"number" yaml:"number"` // 1-based within Source
	Text   string `json:"text"   yaml:"text"`
}

// LoadLines reads every source and returns their lines in source order.
// Files are read concurrently, bounded by runtime.NumCPU(); the first failure
// cancels the rest. The source "-" reads stdin, which may appear once.
func LoadLines(ctx context.Context, sources []string, stdin io.Reader) ([]Line, error) {
	log := logging.FromContext(ctx)
	if len(sources) == 0 {
		if stdin == nil {
			return nil, ErrNoSources
		}
		sources = []string{StdinSource}
	}

	stdinUsed := false
	for _, src := range sources {
		if src != StdinSource {
			continue
		}
		if stdinUsed || stdin == nil {
			return nil, fmt.Errorf("stdin can only be read once: %w", ErrNoSources)
		}
		stdinUsed = true
	}

	results := make([][]Line, len(sources))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, src := range sources {
		g.Go(func() error {
			lines, err := loadSource(gCtx, src, stdin)
			if err != nil {
				return err
			}
			results[i] = lines
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	all := make([]Line, 0, total)
	for _, r := range results {
		all = append(all, r...)
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Int("sources", len(sources)).
		Int("lines", len(all)).
		Msg("loaded input lines")
	return all, nil
}

func loadSource(ctx context.Context, src string, stdin io.Reader) ([]Line, error) {
	if src == StdinSource {
		return ReadLines(ctx, "stdin", stdin)
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", src, err)
	}
	defer f.Close()

	return ReadLines(ctx, src, f)
}

// ReadLines scans r into lines tagged with source. Scanning stops early if
// ctx is cancelled.
func ReadLines(ctx context.Context, source string, r io.Reader) ([]Line, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	var lines []Line
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines = append(lines, Line{Source: source, Number: len(lines) + 1, Text: scanner.Text()})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return lines, nil
}

// Texts returns the text of each line.
func Texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}
