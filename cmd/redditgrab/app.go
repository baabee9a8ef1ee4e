package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/handiism/reddit-link-grabber/internal/clipboard"
	"github.com/handiism/reddit-link-grabber/internal/config"
	"github.com/handiism/reddit-link-grabber/internal/grab"
	ioutils "github.com/handiism/reddit-link-grabber/internal/io"
	"github.com/handiism/reddit-link-grabber/internal/model"
	"github.com/urfave/cli/v2"
)

// errReported marks failures whose message the progress output already showed.
var errReported = errors.New("reported")

var errInvalidLinks = errors.New("text does not hold only thread links")

const helpTemplate = `{{.Name}} - {{.Usage}}

Usage: {{.HelpName}} [global options] <command> [options] [arguments]

Commands:
{{range .VisibleCommands}}   {{join .Names ", "}}{{"\t"}}{{.Usage}}
{{end}}
Global options:
   {{range .VisibleFlags}}{{.}}
   {{end}}`

// runner holds what the commands share. A nil clipboard means the OS clipboard.
type runner struct {
	settings  *config.Settings
	clipboard clipboard.ReadWriter
}

func newApp(r *runner) *cli.App {
	cli.AppHelpTemplate = helpTemplate

	modeFlags := []cli.Flag{
		&cli.BoolFlag{
			Name:    "append",
			Aliases: []string{"a"},
			Usage:   "Merge with the links already on the clipboard",
		},
		&cli.BoolFlag{
			Name:    "overwrite",
			Aliases: []string{"o"},
			Usage:   "Replace the clipboard contents",
		},
	}

	return &cli.App{
		Name:    "redditgrab",
		Usage:   "Copy Reddit thread links to the clipboard",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   config.DefaultPath(),
				EnvVars: []string{"REDDITGRAB_CONFIG"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Show verbose output",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Print the resulting clipboard text instead of writing it (append still reads the clipboard)",
			},
		},
		Before: r.loadSettings,
		Commands: []*cli.Command{
			{
				Name:  "page",
				Usage: "Grab every thread link from saved page HTML",
				Flags: append([]cli.Flag{
					&cli.StringSliceFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Saved page HTML (repeatable, - for stdin; default stdin)",
					},
					&cli.StringFlag{
						Name:    "url",
						Aliases: []string{"u"},
						Usage:   "URL the page was saved from (default: the page's canonical URL)",
					},
				}, modeFlags...),
				Action: r.grabPage,
			},
			{
				Name:      "link",
				Usage:     "Grab a single thread link",
				ArgsUsage: "[--append] <url>",
				Flags:     modeFlags,
				Action:    r.grabLink,
			},
			{
				Name:  "verify",
				Usage: "Check that the clipboard (or a link file) holds only thread links",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Check a saved link file instead of the clipboard",
					},
				},
				Action: r.verify,
			},
			{
				Name:  "config",
				Usage: "Manage the settings file",
				Subcommands: []*cli.Command{
					{
						Name:  "init",
						Usage: "Write the default settings file",
						Flags: []cli.Flag{
							&cli.BoolFlag{Name: "force", Usage: "Overwrite an existing file"},
						},
						Action: r.configInit,
					},
					{
						Name:   "show",
						Usage:  "Print the effective settings",
						Action: r.configShow,
					},
				},
			},
		},
		Authors: []*cli.Author{
			{
				Name: "handiism",
			},
		},
	}
}

func (r *runner) loadSettings(c *cli.Context) error {
	settings, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if c.Bool("verbose") {
		settings.Verbose = true
	}
	r.settings = settings
	return nil
}

func (r *runner) grabPage(c *cli.Context) error {
	mode, err := r.mode(c)
	if err != nil {
		return err
	}

	pages, err := ioutils.ReadPages(c.Context, c.StringSlice("file"), c.App.Reader, r.settings.MaxConcurrentPageReads)
	if err != nil {
		return err
	}

	if _, err := r.grabber(c).GrabPage(c.Context, pages, c.String("url"), mode); err != nil {
		return fmt.Errorf("%w: %w", errReported, err)
	}
	return nil
}

func (r *runner) grabLink(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one URL, got %d arguments", c.NArg())
	}

	mode, err := r.mode(c)
	if err != nil {
		return err
	}

	if _, err := r.grabber(c).GrabLink(c.Context, c.Args().First(), mode); err != nil {
		return fmt.Errorf("%w: %w", errReported, err)
	}
	return nil
}

func (r *runner) verify(c *cli.Context) error {
	g := r.grabber(c)
	source := "clipboard"

	var v *grab.Verification
	var err error
	if path := c.String("file"); path != "" {
		source = path
		v, err = g.VerifyFile(c.Context, path)
	} else {
		v, err = g.Verify(c.Context)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", errReported, err)
	}

	if v.Valid() {
		color.New(color.FgGreen).Fprintf(c.App.ErrWriter, "✅ %d thread links in %s\n", len(v.Links), source)
		for _, link := range v.Links {
			fmt.Fprintln(c.App.Writer, link)
		}
		return nil
	}

	red := color.New(color.FgRed)
	red.Fprintf(c.App.ErrWriter, "❌ Invalid link found or no links found in %s\n", source)
	red.Fprintf(c.App.ErrWriter, "   The %s should contain one reddit link per line\n", source)
	for _, line := range v.Invalid {
		red.Fprintf(c.App.ErrWriter, "   - %s\n", line)
	}
	return fmt.Errorf("%w: %w", errReported, errInvalidLinks)
}

func (r *runner) configInit(c *cli.Context) error {
	path := c.String("config")
	if _, err := os.Stat(path); err == nil && !c.Bool("force") {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.DefaultSettings().Save(path); err != nil {
		return err
	}
	color.New(color.FgGreen).Fprintf(c.App.ErrWriter, "✅ Wrote %s\n", path)
	return nil
}

func (r *runner) configShow(c *cli.Context) error {
	data, err := json.MarshalIndent(r.settings, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, string(data))
	return nil
}

// mode picks the clipboard mode from the flags, falling back to the settings.
func (r *runner) mode(c *cli.Context) (model.Mode, error) {
	switch {
	case c.Bool("append") && c.Bool("overwrite"):
		return model.ModeOverwrite, errors.New("--append and --overwrite are mutually exclusive")
	case c.Bool("append"):
		return model.ModeAppend, nil
	case c.Bool("overwrite"):
		return model.ModeOverwrite, nil
	default:
		return r.settings.ToMode(), nil
	}
}

func (r *runner) grabber(c *cli.Context) *grab.Grabber {
	cb := r.clipboard
	if cb == nil {
		cb = clipboard.NewSystem()
	}
	dryRun := c.Bool("dry-run")
	if dryRun {
		cb = clipboard.NewPreview(cb, c.App.Writer)
	}
	g := grab.NewGrabber(r.settings, cb, printProgress(c.App.ErrWriter, r.settings.Verbose))
	g.SetDryRun(dryRun)
	return g
}

// printProgress renders progress events, one per line, colored by level.
func printProgress(w io.Writer, verbose bool) func(grab.ProgressEvent) {
	return func(event grab.ProgressEvent) {
		if event.Level == grab.LevelVerbose && !verbose {
			return
		}

		var c *color.Color
		prefix := ""
		switch event.Level {
		case grab.LevelError:
			c, prefix = color.New(color.FgRed), "❌ "
		case grab.LevelWarning:
			c, prefix = color.New(color.FgYellow), "⚠️  "
		case grab.LevelSuccess:
			c, prefix = color.New(color.FgGreen), "✅ "
		case grab.LevelInfo:
			c, prefix = color.New(color.FgCyan), "ℹ️  "
		default:
			c, prefix = color.New(color.FgWhite), "   "
		}

		c.Fprintln(w, prefix+event.Message)
	}
}
