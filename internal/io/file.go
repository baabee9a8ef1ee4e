package ioutils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
)

// StdinPath is the path that selects standard input.
const StdinPath = "-"

// ErrStdinTwice is returned when standard input is requested more than once.
var ErrStdinTwice = errors.New("standard input can only be read once")

// ErrNoStdin is returned when "-" is requested but no stdin reader was given.
var ErrNoStdin = errors.New("no standard input available")

// PageSource is the HTML of one saved page.
type PageSource struct {
	// Name is the path the page was read from, or "stdin".
	Name string

	// HTML is the raw page source.
	HTML string
}

// ReadPage reads a single page source.
//
// The path "-" reads from stdin; a nil stdin yields ErrNoStdin. The context
// is checked before reading; the read itself is not interruptible.
//
// Example:
//
//	page, err := ReadPage(ctx, "saved-listing.html", os.Stdin)
func ReadPage(ctx context.Context, path string, stdin io.Reader) (PageSource, error) {
	if err := ctx.Err(); err != nil {
		return PageSource{}, err
	}

	if path == StdinPath {
		if stdin == nil {
			return PageSource{}, ErrNoStdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return PageSource{}, fmt.Errorf("read stdin: %w", err)
		}
		return PageSource{Name: "stdin", HTML: string(data)}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return PageSource{}, fmt.Errorf("read page %s: %w", path, err)
	}
	return PageSource{Name: path, HTML: string(data)}, nil
}

// ReadPages reads every path concurrently, at most limit at a time.
//
// The returned pages are in the same order as paths. An empty paths slice
// reads stdin. The first failure cancels the remaining reads.
//
// Returns ErrStdinTwice if "-" appears more than once.
func ReadPages(ctx context.Context, paths []string, stdin io.Reader, limit int) ([]PageSource, error) {
	if len(paths) == 0 {
		paths = []string{StdinPath}
	}

	stdinCount := 0
	for _, path := range paths {
		if path == StdinPath {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return nil, ErrStdinTwice
	}

	if limit < 1 {
		limit = 1
	}

	pages := make([]PageSource, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range paths {
		g.Go(func() error {
			page, err := ReadPage(ctx, path, stdin)
			if err != nil {
				return err
			}
			pages[i] = page
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return pages, nil
}
