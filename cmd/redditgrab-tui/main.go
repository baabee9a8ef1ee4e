package main

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/fatih/color"
	"github.com/handiism/reddit-link-grabber/internal/clipboard"
	"github.com/handiism/reddit-link-grabber/internal/config"
	ioutils "github.com/handiism/reddit-link-grabber/internal/io"
	"github.com/handiism/reddit-link-grabber/internal/tui"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "redditgrab-tui",
		Usage:     "Interactive Reddit thread link grabber",
		ArgsUsage: "[saved-page.html ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   config.DefaultPath(),
				EnvVars: []string{"REDDITGRAB_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "url",
				Aliases: []string{"u"},
				Usage:   "URL the pages were saved from",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	settings, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	pages, err := readPages(c, settings)
	if err != nil {
		return err
	}

	return tui.Run(tui.Options{
		Settings:  settings,
		Clipboard: clipboard.NewSystem(),
		Pages:     pages,
		PageURL:   c.String("url"),
	})
}

// errStdinPage is returned for "-": the TUI reads its keys from stdin.
var errStdinPage = errors.New("the TUI cannot read a page from stdin; save the page to a file")

func readPages(c *cli.Context, settings *config.Settings) ([]ioutils.PageSource, error) {
	if c.NArg() == 0 {
		return nil, nil
	}
	if slices.Contains(c.Args().Slice(), ioutils.StdinPath) {
		return nil, errStdinPage
	}
	return ioutils.ReadPages(c.Context, c.Args().Slice(), nil, settings.MaxConcurrentPageReads)
}
