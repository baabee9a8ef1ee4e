// Package ioutils loads saved page sources for link extraction.
//
// This package contains functions for:
//   - Reading a page from a file or from standard input
//   - Reading several pages concurrently while keeping their order
//
// # Reading Pages
//
//	pages, err := ioutils.ReadPages(ctx, []string{"front.html", "-"}, os.Stdin, 4)
//	for _, page := range pages {
//	    fmt.Println(page.Name, len(page.HTML))
//	}
//
// The path "-" stands for standard input and may appear at most once.
package ioutils
