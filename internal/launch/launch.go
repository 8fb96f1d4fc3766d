package launch

import (
	"fmt"
	"io"

	"github.com/pkg/browser"
)

// Opener opens a file in the host's default viewer
type Opener interface {
	Open(path string) error
}

// BrowserOpener opens files with the platform's default handler
type BrowserOpener struct{}

// NewBrowserOpener creates a new BrowserOpener that keeps the viewer's own output off the console
func NewBrowserOpener() *BrowserOpener {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &BrowserOpener{}
}

// Open opens path in the default viewer; it returns once the viewer has been started
func (o *BrowserOpener) Open(path string) error {
	if err := browser.OpenFile(path); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}
