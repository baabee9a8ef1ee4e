package clipboard

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	sysclip "github.com/atotto/clipboard"
)

// Reader returns the current clipboard text.
type Reader interface {
	ReadText(ctx context.Context) (string, error)
}

// Writer replaces the clipboard text.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// ReadWriter groups Reader and Writer.
type ReadWriter interface {
	Reader
	Writer
}

// System is the OS clipboard.
//
// On Linux it needs xclip, xsel or wl-clipboard on the PATH.
type System struct{}

// NewSystem returns the OS clipboard backend.
func NewSystem() *System {
	return &System{}
}

// ReadText implements Reader.
func (s *System) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if sysclip.Unsupported {
		return "", fmt.Errorf("clipboard operations not supported on %s", runtime.GOOS)
	}
	return sysclip.ReadAll()
}

// WriteText implements Writer.
func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sysclip.Unsupported {
		return fmt.Errorf("clipboard operations not supported on %s", runtime.GOOS)
	}
	return sysclip.WriteAll(text)
}

// Memory is an in-process clipboard.
//
// ReadErr and WriteErr, when set, are returned instead of touching the text,
// which lets tests simulate a denied or unfocused clipboard.
type Memory struct {
	mu   sync.Mutex
	text string

	ReadErr  error
	WriteErr error

	reads  int
	writes int
}

// NewMemory creates a Memory clipboard holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

// ReadText implements Reader.
func (m *Memory) ReadText(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reads++
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.ReadErr != nil {
		return "", m.ReadErr
	}
	return m.text, nil
}

// WriteText implements Writer.
func (m *Memory) WriteText(ctx context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writes++
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.text = text
	return nil
}

// Text returns the current contents.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Calls returns how many reads and writes were attempted.
func (m *Memory) Calls() (reads, writes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads, m.writes
}

// Preview reads from a real clipboard but prints writes instead of applying
// them. It backs dry runs.
type Preview struct {
	Reader
	out io.Writer
}

// NewPreview creates a Preview that reads from r and prints to out.
func NewPreview(r Reader, out io.Writer) *Preview {
	return &Preview{Reader: r, out: out}
}

// WriteText implements Writer by printing text followed by a newline.
func (p *Preview) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(p.out, text)
	return err
}
