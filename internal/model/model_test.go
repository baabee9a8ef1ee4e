package model

import (
	"testing"
)

func TestParseLinkSet(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty clipboard", "", []string{}},
		{"single line", "A", []string{"A"}},
		{"trailing newline", "A\nB\n", []string{"A", "B"}},
		{"windows line endings", "A\r\nB\r\n", []string{"A", "B"}},
		{"duplicates collapsed", "A\nB\nA", []string{"A", "B"}},
		{"blank lines skipped", "A\n\n\nB", []string{"A", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLinkSet(tt.text).Links()
			if len(got) != len(tt.want) {
				t.Fatalf("ParseLinkSet(%q) = %q, want %q", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseLinkSet(%q)[%d] = %q, want %q", tt.text, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLinkSet_InsertionOrder(t *testing.T) {
	s := NewLinkSet("B", "A")
	if !s.Add("C") {
		t.Error("Add(C) should report a new link")
	}
	if s.Add("A") {
		t.Error("Add(A) should report a duplicate")
	}

	if got := s.String(); got != "B\nA\nC" {
		t.Errorf("String() = %q, want %q", got, "B\nA\nC")
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestLinkSet_AddAll(t *testing.T) {
	existing := NewLinkSet("A")
	existing.AddAll(NewLinkSet("A", "B"))

	if got := existing.String(); got != "A\nB" {
		t.Errorf("String() = %q, want %q", got, "A\nB")
	}
	if !existing.Contains("B") {
		t.Error("set should contain B")
	}
}

func TestLinkSet_LinksIsCopy(t *testing.T) {
	s := NewLinkSet("A")
	links := s.Links()
	links[0] = "changed"

	if !s.Contains("A") || s.Links()[0] != "A" {
		t.Error("mutating Links() result should not change the set")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"overwrite", ModeOverwrite, false},
		{"append", ModeAppend, false},
		{" Append ", ModeAppend, false},
		{"merge", ModeOverwrite, true},
		{"", ModeOverwrite, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseMode(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMode_Verb(t *testing.T) {
	if ModeOverwrite.Verb() != "copied" {
		t.Errorf("ModeOverwrite.Verb() = %q", ModeOverwrite.Verb())
	}
	if ModeAppend.Verb() != "appended" {
		t.Errorf("ModeAppend.Verb() = %q", ModeAppend.Verb())
	}
}
