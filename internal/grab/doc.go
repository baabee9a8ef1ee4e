// Package grab connects the grab triggers to link extraction and the clipboard.
//
// # Grabber
//
// The Grabber handles the four grab actions:
//
//  1. All thread links on a page, overwriting the clipboard
//  2. All thread links on a page, appending to the clipboard
//  3. A single link, overwriting the clipboard
//  4. A single link, appending to the clipboard
//
// # Basic Usage
//
//	grabber := grab.NewGrabber(settings, clipboard.NewSystem(), func(event grab.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	result, err := grabber.GrabLink(ctx, "https://www.reddit.com/r/golang/comments/abc/hi/?utm_source=share", model.ModeAppend)
//	if err != nil {
//	    fmt.Println(grab.ErrorMessage(err, model.ModeAppend))
//	    return
//	}
//	fmt.Println(result.Message()) // "1 link appended to clipboard!"
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// # Verification
//
// Verify checks that the clipboard holds nothing but thread links, one per
// line, the format the downloader side expects. VerifyFile runs the same
// check on a saved link file and VerifyText on any text.
package grab
