// Package clipboard reads and writes link lists on a clipboard.
//
// # Backends
//
// Clipboard access goes through the narrow Reader and Writer interfaces:
//
//	type Reader interface { ReadText(ctx context.Context) (string, error) }
//	type Writer interface { WriteText(ctx context.Context, text string) error }
//
// System talks to the OS clipboard. Memory keeps the text in process and is
// used by tests and dry runs:
//
//	cb := clipboard.NewMemory("https://www.reddit.com/r/golang/comments/abc/hi/")
//
// # Merging
//
// Merge writes a LinkSet in either overwrite or append mode:
//
//	count, err := clipboard.Merge(ctx, links, model.ModeAppend, cb, cb)
//	switch {
//	case errors.Is(err, clipboard.ErrRead):
//	    // nothing was written
//	case errors.Is(err, clipboard.ErrWrite):
//	    // clipboard unchanged
//	}
package clipboard
