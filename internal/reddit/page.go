package reddit

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
)

// DefaultAnchorSelector selects the anchors that can point at a thread.
const DefaultAnchorSelector = `a[href*="/comments"]`

// Page is the link-relevant content of a saved page.
type Page struct {
	// URL is the address the page was loaded from. It is empty when neither
	// the caller nor the page itself provided one.
	URL string

	// Candidates holds every selected anchor's href, resolved against URL.
	Candidates []string
}

// PageParser pulls candidate links out of page HTML.
//
// The anchors are chosen with a CSS selector and their hrefs are resolved
// against the page URL, matching what a browser reports for an anchor's href
// property.
//
// Example usage:
//
//	parser := NewPageParser(DefaultAnchorSelector)
//
//	page, err := parser.Parse(html, "https://www.reddit.com/r/golang/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, href := range page.Candidates {
//	    fmt.Println(href)
//	}
type PageParser struct {
	selector string
}

// NewPageParser creates a PageParser. An empty selector means DefaultAnchorSelector.
func NewPageParser(selector string) *PageParser {
	if strings.TrimSpace(selector) == "" {
		selector = DefaultAnchorSelector
	}
	return &PageParser{selector: selector}
}

// Parse extracts the candidate hrefs from htmlContent.
//
// When pageURL is empty, the page's canonical link or og:url meta tag is used
// instead. Anchors with a missing or blank href are dropped.
//
// Returns an error if:
//   - The HTML cannot be read
//   - The page URL cannot be parsed
func (p *PageParser) Parse(htmlContent, pageURL string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	if pageURL == "" {
		pageURL = canonicalURL(doc)
	}

	var base *url.URL
	if pageURL != "" {
		base, err = url.Parse(pageURL)
		if err != nil {
			return nil, fmt.Errorf("invalid page URL %q: %w", pageURL, err)
		}
	}

	hrefs := doc.Find(p.selector).Map(func(_ int, sel *goquery.Selection) string {
		href, _ := sel.Attr("href")
		return strings.TrimSpace(href)
	})

	candidates := lo.FilterMap(hrefs, func(href string, _ int) (string, bool) {
		if href == "" {
			return "", false
		}
		return resolveHref(base, href), true
	})

	return &Page{URL: pageURL, Candidates: candidates}, nil
}

// canonicalURL returns the URL a page declares for itself, or "".
func canonicalURL(doc *goquery.Document) string {
	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok && strings.TrimSpace(href) != "" {
		return strings.TrimSpace(href)
	}
	if content, ok := doc.Find(`meta[property="og:url"]`).First().Attr("content"); ok {
		return strings.TrimSpace(content)
	}
	return ""
}

// resolveHref makes href absolute against base. Unparsable hrefs and
// pages without a base are passed through as written.
func resolveHref(base *url.URL, href string) string {
	if base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
