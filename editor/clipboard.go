package editor

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrNoClipboard is reported when a clipboard key is pressed without a
// configured Clipboard.
var ErrNoClipboard = errors.New("editor: no clipboard configured")

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI: they are logged and the key is consumed.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// SystemClipboard talks to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (SystemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

// MemoryClipboard is a process-local clipboard for hosts without OS
// clipboard access.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

func (c *MemoryClipboard) ReadText() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

func (c *MemoryClipboard) WriteText(s string) error {
	c.mu.Lock()
	c.text = s
	c.mu.Unlock()
	return nil
}
