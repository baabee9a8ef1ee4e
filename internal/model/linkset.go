package model

import "strings"

// LinkSet is an insertion-ordered set of thread links.
//
// Links are compared as exact strings, so callers normalize before adding.
// The zero value is not usable; create sets with NewLinkSet or ParseLinkSet.
type LinkSet struct {
	links []string
	index map[string]struct{}
}

// NewLinkSet creates a LinkSet holding the given links in order, duplicates collapsed.
func NewLinkSet(links ...string) *LinkSet {
	s := &LinkSet{
		links: make([]string, 0, len(links)),
		index: make(map[string]struct{}, len(links)),
	}
	for _, link := range links {
		s.Add(link)
	}
	return s
}

// ParseLinkSet reads clipboard text into a LinkSet.
//
// The text is split on newlines. A trailing carriage return is trimmed from
// each line and empty lines are skipped, so an empty clipboard yields an
// empty set rather than a set holding one empty string.
func ParseLinkSet(text string) *LinkSet {
	s := NewLinkSet()
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		s.Add(line)
	}
	return s
}

// Add inserts link at the end of the set. It reports whether the link was new.
func (s *LinkSet) Add(link string) bool {
	if _, ok := s.index[link]; ok {
		return false
	}
	s.index[link] = struct{}{}
	s.links = append(s.links, link)
	return true
}

// AddAll inserts every link of other, in other's order.
func (s *LinkSet) AddAll(other *LinkSet) {
	for _, link := range other.links {
		s.Add(link)
	}
}

// Contains reports whether link is in the set.
func (s *LinkSet) Contains(link string) bool {
	_, ok := s.index[link]
	return ok
}

// Len returns the number of links in the set.
func (s *LinkSet) Len() int {
	return len(s.links)
}

// Links returns a copy of the links in insertion order.
func (s *LinkSet) Links() []string {
	out := make([]string, len(s.links))
	copy(out, s.links)
	return out
}

// String serializes the set as clipboard text: links joined by newlines,
// with no trailing newline.
func (s *LinkSet) String() string {
	return strings.Join(s.links, "\n")
}
