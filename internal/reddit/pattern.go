package reddit

import (
	"regexp"
	"strings"

	"github.com/handiism/reddit-link-grabber/internal/model"
)

// commentSegment marks a permalink to a single comment inside a thread.
const commentSegment = "comment"

// threadLinkRegex matches the thread root form. The slug is captured so the
// comment-permalink exclusion can be checked after the match, since RE2 has
// no lookahead.
var threadLinkRegex = regexp.MustCompile(`https://www\.reddit\.com/r/[^/]+/comments/[^/]+/([^/]+)/`)

// ExtractSingle returns the canonical thread link found in rawURL.
//
// The full match is taken (not any capture group) and everything from the
// first '?' onward is removed. The boolean is false when rawURL holds no
// thread root link, including when it only points at a comment permalink.
//
// Example:
//
//	link, ok := ExtractSingle("https://www.reddit.com/r/golang/comments/abc/hi/?context=3")
//	// link = "https://www.reddit.com/r/golang/comments/abc/hi/"
func ExtractSingle(rawURL string) (string, bool) {
	match, ok := matchThreadLink(rawURL)
	if !ok {
		return "", false
	}
	return stripQuery(match), true
}

// Extract collects the thread links referenced by candidates and by the
// current page URL.
//
// Candidates are checked in order, then currentPageURL is checked once on
// its own, so a thread page with no matching anchors still yields its own
// link. Candidates that do not match are skipped. The result holds each
// canonical link once, in first-seen order.
func Extract(candidates []string, currentPageURL string) *model.LinkSet {
	links := model.NewLinkSet()
	for _, candidate := range candidates {
		if link, ok := ExtractSingle(candidate); ok {
			links.Add(link)
		}
	}
	if link, ok := ExtractSingle(currentPageURL); ok {
		links.Add(link)
	}
	return links
}

// IsThreadLink reports whether s is already a canonical thread link.
func IsThreadLink(s string) bool {
	link, ok := ExtractSingle(s)
	return ok && link == s
}

// matchThreadLink finds the leftmost thread root match in s.
//
// Every search is a fresh call on a substring, so no scan position carries
// over between inputs. A match followed by "comment/", or whose slug is
// itself "comment", is rejected and the search resumes one byte past its start.
func matchThreadLink(s string) (string, bool) {
	offset := 0
	for offset < len(s) {
		loc := threadLinkRegex.FindStringSubmatchIndex(s[offset:])
		if loc == nil {
			return "", false
		}

		start, end := offset+loc[0], offset+loc[1]
		slug := s[offset+loc[2] : offset+loc[3]]
		if slug != commentSegment && !strings.HasPrefix(s[end:], commentSegment+"/") {
			return s[start:end], true
		}

		offset = start + 1
	}
	return "", false
}

func stripQuery(link string) string {
	if i := strings.IndexByte(link, '?'); i >= 0 {
		return link[:i]
	}
	return link
}
