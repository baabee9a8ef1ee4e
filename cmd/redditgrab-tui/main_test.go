package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) error {
	t.Helper()
	config := filepath.Join(t.TempDir(), "config.json")
	argv := append([]string{"redditgrab-tui", "--config", config}, args...)
	return newApp().RunContext(context.Background(), argv)
}

func TestRun_RejectsStdinPage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"only stdin", []string{"-"}},
		{"stdin after a file", []string{"saved.html", "-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runApp(t, tt.args...)
			require.ErrorIs(t, err, errStdinPage)
		})
	}
}

func TestRun_MissingPage(t *testing.T) {
	err := runApp(t, filepath.Join(t.TempDir(), "nope.html"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
