package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/reddit-link-grabber/internal/clipboard"
	"github.com/handiism/reddit-link-grabber/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	linkA = "https://www.reddit.com/r/golang/comments/abc123/hello_world/"
	linkB = "https://www.reddit.com/r/rust/comments/def456/ownership_question/"
)

type testRun struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
	cb     *clipboard.Memory
	config string
}

func newTestRun(t *testing.T, clipboardText string) *testRun {
	t.Helper()
	return &testRun{
		cb:     clipboard.NewMemory(clipboardText),
		config: filepath.Join(t.TempDir(), "config.json"),
	}
}

func (tr *testRun) run(stdin string, args ...string) error {
	app := newApp(&runner{clipboard: tr.cb})
	app.Reader = strings.NewReader(stdin)
	app.Writer = &tr.stdout
	app.ErrWriter = &tr.stderr

	argv := append([]string{"redditgrab", "--config", tr.config}, args...)
	return app.RunContext(context.Background(), argv)
}

func TestLink_Overwrite(t *testing.T) {
	tr := newTestRun(t, linkB)

	require.NoError(t, tr.run("", "link", linkA+"?utm_source=share"))
	assert.Equal(t, linkA, tr.cb.Text())
	assert.Contains(t, tr.stderr.String(), "1 link copied to clipboard!")
}

func TestLink_Append(t *testing.T) {
	tr := newTestRun(t, linkB)

	require.NoError(t, tr.run("", "link", "--append", linkA))
	assert.Equal(t, linkB+"\n"+linkA, tr.cb.Text())
	assert.Contains(t, tr.stderr.String(), "1 link appended to clipboard!")
}

func TestLink_NotAThreadLink(t *testing.T) {
	tr := newTestRun(t, linkB)

	err := tr.run("", "link", linkA+"comment/xyz/")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errReported))
	assert.Equal(t, linkB, tr.cb.Text())
}

func TestLink_ConflictingModes(t *testing.T) {
	tr := newTestRun(t, "")

	err := tr.run("", "link", "--append", "--overwrite", linkA)
	assert.Error(t, err)
	assert.Equal(t, "", tr.cb.Text())
}

func TestLink_MissingArgument(t *testing.T) {
	tr := newTestRun(t, "")
	assert.Error(t, tr.run("", "link"))
}

func TestPage_FromStdin(t *testing.T) {
	tr := newTestRun(t, linkB)
	html := `<a href="/r/golang/comments/abc123/hello_world/?x=1">a</a>`

	require.NoError(t, tr.run(html, "page", "--url", "https://www.reddit.com/r/golang/", "--append"))
	assert.Equal(t, linkB+"\n"+linkA, tr.cb.Text())
	assert.Contains(t, tr.stderr.String(), "1 link appended to clipboard!")
}

func TestPage_FromFiles(t *testing.T) {
	tr := newTestRun(t, "")
	dir := t.TempDir()
	first := filepath.Join(dir, "first.html")
	second := filepath.Join(dir, "second.html")
	require.NoError(t, os.WriteFile(first, []byte(`<link rel="canonical" href="`+linkA+`">`), 0644))
	require.NoError(t, os.WriteFile(second, []byte(`<a href="`+linkB+`">b</a>`), 0644))

	require.NoError(t, tr.run("", "page", "-f", first, "-f", second))
	assert.Equal(t, linkA+"\n"+linkB, tr.cb.Text())
}

func TestPage_DryRun(t *testing.T) {
	tr := newTestRun(t, "untouched")
	html := `<a href="` + linkA + `">a</a>`

	require.NoError(t, tr.run(html, "--dry-run", "page"))
	assert.Equal(t, "untouched", tr.cb.Text())
	assert.Equal(t, linkA+"\n", tr.stdout.String())
	assert.Contains(t, tr.stderr.String(), "1 link copied to clipboard! (dry run)")
}

func TestLink_DryRunAppend(t *testing.T) {
	tr := newTestRun(t, linkB)

	require.NoError(t, tr.run("", "--dry-run", "link", "--append", linkA))
	assert.Equal(t, linkB, tr.cb.Text())
	assert.Equal(t, linkB+"\n"+linkA+"\n", tr.stdout.String())
	assert.Contains(t, tr.stderr.String(), "1 link appended to clipboard! (dry run)")

	reads, writes := tr.cb.Calls()
	assert.Equal(t, 1, reads, "append previews against the current clipboard")
	assert.Equal(t, 0, writes)
}

func TestPage_SettingsDefaultMode(t *testing.T) {
	tr := newTestRun(t, linkB)
	settings := config.DefaultSettings()
	settings.DefaultMode = "append"
	require.NoError(t, settings.Save(tr.config))

	require.NoError(t, tr.run(`<a href="`+linkA+`">a</a>`, "page"))
	assert.Equal(t, linkB+"\n"+linkA, tr.cb.Text())
}

func TestPage_ReadFailure(t *testing.T) {
	tr := newTestRun(t, linkB)
	tr.cb.ReadErr = errors.New("denied")

	err := tr.run(`<a href="`+linkA+`">a</a>`, "page", "--append")
	require.ErrorIs(t, err, clipboard.ErrRead)
	assert.Contains(t, tr.stderr.String(), "An error occurred while reading the clipboard.")

	_, writes := tr.cb.Calls()
	assert.Equal(t, 0, writes)
}

func TestVerify(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tr := newTestRun(t, linkA+"\n"+linkB)
		require.NoError(t, tr.run("", "verify"))
		assert.Equal(t, linkA+"\n"+linkB+"\n", tr.stdout.String())
	})

	t.Run("invalid", func(t *testing.T) {
		tr := newTestRun(t, linkA+"\nnot a link")
		err := tr.run("", "verify")
		require.ErrorIs(t, err, errInvalidLinks)
		assert.Contains(t, tr.stderr.String(), "not a link")
	})
}

func TestVerify_File(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("valid file", func(t *testing.T) {
		tr := newTestRun(t, "not a link")
		path := write("valid.txt", linkA+"\n  "+linkB+"  \n")

		require.NoError(t, tr.run("", "verify", "--file", path))
		assert.Equal(t, linkA+"\n"+linkB+"\n", tr.stdout.String())
		assert.Contains(t, tr.stderr.String(), "2 thread links in "+path)

		reads, _ := tr.cb.Calls()
		assert.Equal(t, 0, reads)
	})

	t.Run("invalid line", func(t *testing.T) {
		tr := newTestRun(t, linkA)
		path := write("invalid.txt", linkA+"\nnot a link\n")

		err := tr.run("", "verify", "-f", path)
		require.ErrorIs(t, err, errInvalidLinks)
		assert.Contains(t, tr.stderr.String(), "not a link")
	})

	t.Run("empty file", func(t *testing.T) {
		tr := newTestRun(t, linkA)
		path := write("empty.txt", "")

		err := tr.run("", "verify", "--file", path)
		require.ErrorIs(t, err, errInvalidLinks)
		assert.Contains(t, tr.stderr.String(), "no links found in "+path)
	})

	t.Run("missing file", func(t *testing.T) {
		tr := newTestRun(t, linkA)

		err := tr.run("", "verify", "--file", filepath.Join(dir, "nope.txt"))
		require.ErrorIs(t, err, os.ErrNotExist)
		assert.True(t, errors.Is(err, errReported))
	})
}

func TestConfigInitAndShow(t *testing.T) {
	tr := newTestRun(t, "")

	require.NoError(t, tr.run("", "config", "init"))
	_, err := os.Stat(tr.config)
	require.NoError(t, err)

	assert.Error(t, tr.run("", "config", "init"), "existing file needs --force")
	require.NoError(t, tr.run("", "config", "init", "--force"))

	tr.stdout.Reset()
	require.NoError(t, tr.run("", "config", "show"))
	assert.Contains(t, tr.stdout.String(), `"default_mode": "overwrite"`)
}
