// Package reddit recognizes Reddit thread links and extracts them from pages.
//
// The package handles two main use cases:
//
//  1. Canonicalizing a single URL into a thread root link
//  2. Scanning a saved page for every thread link it references
//
// # Thread Links
//
// A thread root link has the shape
//
//	https://www.reddit.com/r/<subreddit>/comments/<id>/<slug>/
//
// Permalinks to individual comments (a "comment/" segment after the slug)
// are not thread links. Query strings are dropped:
//
//	link, ok := reddit.ExtractSingle("https://www.reddit.com/r/golang/comments/abc/hi/?utm_source=share")
//	// link = "https://www.reddit.com/r/golang/comments/abc/hi/", ok = true
//
// # Page Extraction
//
// Use the PageParser to collect candidate hrefs from page HTML, then Extract
// to reduce them to a deduplicated set of thread links:
//
//	parser := reddit.NewPageParser(reddit.DefaultAnchorSelector)
//	page, err := parser.Parse(html, "https://www.reddit.com/r/golang/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	links := reddit.Extract(page.Candidates, page.URL)
package reddit
