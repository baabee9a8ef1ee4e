package grab

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/handiism/reddit-link-grabber/internal/clipboard"
	"github.com/handiism/reddit-link-grabber/internal/config"
	ioutils "github.com/handiism/reddit-link-grabber/internal/io"
	"github.com/handiism/reddit-link-grabber/internal/model"
	"github.com/handiism/reddit-link-grabber/internal/reddit"
	"github.com/samber/lo"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a grab progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// ErrNoThreadLink is returned by GrabLink when the URL is not a thread link.
var ErrNoThreadLink = errors.New("not a reddit thread link")

// Result describes a completed grab.
type Result struct {
	Mode model.Mode

	// Count is the number of links this grab contributed, not the number of
	// lines now on the clipboard.
	Count int

	// Links are the canonical links that were grabbed.
	Links []string

	// DryRun is set when the clipboard text was printed instead of written.
	DryRun bool
}

// Message returns the confirmation shown to the user, e.g.
// "1 link copied to clipboard!" or "3 links appended to clipboard! (dry run)".
func (r *Result) Message() string {
	noun := "links"
	if r.Count == 1 {
		noun = "link"
	}
	msg := fmt.Sprintf("%d %s %s to clipboard!", r.Count, noun, r.Mode.Verb())
	if r.DryRun {
		msg += " (dry run)"
	}
	return msg
}

// ErrorMessage returns the text shown to the user when a grab in mode fails.
func ErrorMessage(err error, mode model.Mode) string {
	switch {
	case errors.Is(err, clipboard.ErrRead):
		return "An error occurred while reading the clipboard."
	case errors.Is(err, clipboard.ErrWrite) && mode == model.ModeAppend:
		return "An error occurred while appending links."
	case errors.Is(err, clipboard.ErrWrite):
		return "An error occurred while copying links."
	case errors.Is(err, ErrNoThreadLink):
		return "That is not a Reddit thread link."
	default:
		return fmt.Sprintf("An error occurred: %v", err)
	}
}

// Verification is the outcome of checking the clipboard or a link file.
type Verification struct {
	// Links are the lines that are canonical thread links.
	Links []string

	// Invalid are the lines that are not.
	Invalid []string
}

// Valid reports whether the text held at least one link and nothing else.
func (v *Verification) Valid() bool {
	return len(v.Links) > 0 && len(v.Invalid) == 0
}

// Grabber runs grabs against one clipboard.
//
// Each call builds its own LinkSet, so a Grabber holds no state between
// grabs. Callers run one grab at a time.
type Grabber struct {
	settings  *config.Settings
	clipboard clipboard.ReadWriter
	parser    *reddit.PageParser
	dryRun    bool

	onProgress func(ProgressEvent)
}

// NewGrabber creates a new Grabber.
func NewGrabber(settings *config.Settings, cb clipboard.ReadWriter, onProgress func(ProgressEvent)) *Grabber {
	return &Grabber{
		settings:   settings,
		clipboard:  cb,
		parser:     reddit.NewPageParser(settings.AnchorSelector),
		onProgress: onProgress,
	}
}

// SetDryRun marks results as dry runs. The clipboard itself is unchanged:
// pair it with clipboard.Preview so nothing is written.
func (g *Grabber) SetDryRun(dryRun bool) {
	g.dryRun = dryRun
}

// GrabPage extracts every thread link from pages and writes them to the clipboard.
//
// pageURL is the address of the pages; when empty each page's canonical URL
// is used. A page with no thread links is not an error: in overwrite mode
// the clipboard is cleared and the count is zero.
func (g *Grabber) GrabPage(ctx context.Context, pages []ioutils.PageSource, pageURL string, mode model.Mode) (*Result, error) {
	links := model.NewLinkSet()

	for _, source := range pages {
		page, err := g.parser.Parse(source.HTML, pageURL)
		if err != nil {
			err = fmt.Errorf("parse %s: %w", source.Name, err)
			g.progress(ProgressEvent{Message: ErrorMessage(err, mode), Level: LevelError})
			return nil, err
		}

		found := reddit.Extract(page.Candidates, page.URL)
		g.progress(ProgressEvent{
			Message: fmt.Sprintf("%s: %d candidate links, %d thread links", source.Name, len(page.Candidates), found.Len()),
			Level:   LevelVerbose,
		})
		links.AddAll(found)
	}

	if links.Len() == 0 {
		g.progress(ProgressEvent{Message: "No thread links found", Level: LevelWarning})
	}

	count, err := g.merge(ctx, links, mode)
	if err != nil {
		return nil, err
	}

	result := &Result{Mode: mode, Count: count, Links: links.Links(), DryRun: g.dryRun}
	g.progress(ProgressEvent{Message: result.Message(), Level: LevelSuccess})
	return result, nil
}

// GrabLink canonicalizes one URL and writes it to the clipboard.
//
// Returns ErrNoThreadLink, without touching the clipboard, when rawURL does
// not hold a thread link.
func (g *Grabber) GrabLink(ctx context.Context, rawURL string, mode model.Mode) (*Result, error) {
	link, ok := reddit.ExtractSingle(rawURL)
	if !ok {
		g.progress(ProgressEvent{Message: fmt.Sprintf("Not a thread link: %s", rawURL), Level: LevelWarning})
		return nil, fmt.Errorf("%w: %s", ErrNoThreadLink, rawURL)
	}

	g.progress(ProgressEvent{Message: fmt.Sprintf("Canonical link: %s", link), Level: LevelVerbose})

	count, err := g.merge(ctx, model.NewLinkSet(link), mode)
	if err != nil {
		return nil, err
	}

	result := &Result{Mode: mode, Count: count, Links: []string{link}, DryRun: g.dryRun}
	g.progress(ProgressEvent{Message: result.Message(), Level: LevelSuccess})
	return result, nil
}

// Verify reads the clipboard and sorts its lines into thread links and the rest.
func (g *Grabber) Verify(ctx context.Context) (*Verification, error) {
	text, err := g.clipboard.ReadText(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %w", clipboard.ErrRead, err)
		g.progress(ProgressEvent{Message: ErrorMessage(err, model.ModeOverwrite), Level: LevelError})
		return nil, err
	}
	return g.VerifyText(text), nil
}

// VerifyFile sorts the lines of a saved link file the way Verify sorts the
// clipboard.
func (g *Grabber) VerifyFile(ctx context.Context, path string) (*Verification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("read link file: %w", err)
		g.progress(ProgressEvent{Message: ErrorMessage(err, model.ModeOverwrite), Level: LevelError})
		return nil, err
	}
	return g.VerifyText(string(data)), nil
}

// VerifyText sorts text, one entry per line, into thread links and the rest.
//
// Lines are trimmed of surrounding whitespace and blank lines are skipped.
func (g *Grabber) VerifyText(text string) *Verification {
	lines := lo.FilterMap(strings.Split(text, "\n"), func(line string, _ int) (string, bool) {
		line = strings.TrimSpace(line)
		return line, line != ""
	})
	valid, invalid := lo.FilterReject(lines, func(line string, _ int) bool {
		return reddit.IsThreadLink(line)
	})

	for _, line := range invalid {
		g.progress(ProgressEvent{Message: fmt.Sprintf("Invalid line: %s", line), Level: LevelVerbose})
	}
	return &Verification{Links: valid, Invalid: invalid}
}

func (g *Grabber) merge(ctx context.Context, links *model.LinkSet, mode model.Mode) (int, error) {
	count, err := clipboard.Merge(ctx, links, mode, g.clipboard, g.clipboard)
	if err != nil {
		g.progress(ProgressEvent{Message: ErrorMessage(err, mode), Level: LevelError})
		g.progress(ProgressEvent{Message: err.Error(), Level: LevelVerbose})
		return 0, err
	}
	return count, nil
}

func (g *Grabber) progress(event ProgressEvent) {
	if g.onProgress != nil {
		g.onProgress(event)
	}
}
