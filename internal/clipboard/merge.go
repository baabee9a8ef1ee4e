package clipboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/handiism/reddit-link-grabber/internal/model"
)

var (
	// ErrRead is returned when the existing clipboard contents cannot be read.
	// Nothing is written after a read failure.
	ErrRead = errors.New("clipboard read failed")

	// ErrWrite is returned when the merged text cannot be written.
	ErrWrite = errors.New("clipboard write failed")
)

// Merge writes newLinks to the clipboard and returns how many links this call contributed.
//
// In ModeOverwrite the clipboard is replaced with newLinks and never read.
// In ModeAppend the clipboard is read first, parsed one link per line, and
// newLinks are added after the existing entries with duplicates collapsed.
//
// The count is always newLinks.Len(): links that were already on the
// clipboard still count as appended.
//
// The merged text is handed to w in a single WriteText call, so a failed
// write leaves the previous contents in place.
func Merge(ctx context.Context, newLinks *model.LinkSet, mode model.Mode, r Reader, w Writer) (int, error) {
	text := newLinks.String()

	if mode == model.ModeAppend {
		existing, err := r.ReadText(ctx)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrRead, err)
		}

		merged := model.ParseLinkSet(existing)
		merged.AddAll(newLinks)
		text = merged.String()
	}

	if err := w.WriteText(ctx, text); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return newLinks.Len(), nil
}
