package model

import (
	"fmt"
	"strings"
)

// Mode controls what happens to the existing clipboard contents.
type Mode int

const (
	// ModeOverwrite replaces the clipboard with the grabbed links.
	ModeOverwrite Mode = iota

	// ModeAppend merges the grabbed links into the links already on the clipboard.
	ModeAppend
)

// ParseMode converts a settings or flag value into a Mode.
//
// Accepted values are "overwrite" and "append", case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "overwrite":
		return ModeOverwrite, nil
	case "append":
		return ModeAppend, nil
	default:
		return ModeOverwrite, fmt.Errorf("unknown mode %q (want overwrite or append)", s)
	}
}

// String returns the settings name of the mode.
func (m Mode) String() string {
	if m == ModeAppend {
		return "append"
	}
	return "overwrite"
}

// Verb returns the past-tense action used in confirmations.
func (m Mode) Verb() string {
	if m == ModeAppend {
		return "appended"
	}
	return "copied"
}
