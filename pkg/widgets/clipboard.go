package widgets

import "github.com/atotto/clipboard"

// Clipboard is the text clipboard a TextField copies to and pastes from.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard uses the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (SystemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// MemoryClipboard keeps the text in process. Headless runs and tests use
// it.
type MemoryClipboard struct {
	Text string
}

func (m *MemoryClipboard) ReadAll() (string, error) { return m.Text, nil }

func (m *MemoryClipboard) WriteAll(text string) error {
	m.Text = text
	return nil
}
