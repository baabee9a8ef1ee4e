// Package model defines the core data structures used throughout
// the reddit-link-grabber application.
//
// # LinkSet
//
// LinkSet is an insertion-ordered set of canonical thread links:
//
//	links := model.NewLinkSet()
//	links.Add("https://www.reddit.com/r/golang/comments/abc123/hello/")
//	links.Add("https://www.reddit.com/r/golang/comments/abc123/hello/") // ignored
//	fmt.Println(links.Len()) // 1
//
// LinkSet round-trips through clipboard text, one link per line:
//
//	existing := model.ParseLinkSet(clipboardText)
//	existing.AddAll(links)
//	clipboardText = existing.String()
//
// # Mode
//
// Mode selects whether a grab replaces the clipboard or merges with it:
//
//	mode, err := model.ParseMode("append")
//	fmt.Println(mode.Verb()) // "appended"
package model
