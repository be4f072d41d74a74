package link

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// Opener hands a URL to the host environment.
type Opener interface {
	Open(url string) error
}

// Browser opens links in the system browser. When that fails and
// CopyOnFailure is set, the URL is put on the clipboard instead.
type Browser struct {
	CopyOnFailure bool

	open func(string) error
	copy func(string) error
}

func NewBrowser(copyOnFailure bool) *Browser {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &Browser{
		CopyOnFailure: copyOnFailure,
		open:          browser.OpenURL,
		copy:          clipboard.WriteAll,
	}
}

func (b *Browser) Open(url string) error {
	err := b.open(url)
	if err == nil {
		return nil
	}
	if !b.CopyOnFailure {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	if cerr := b.copy(url); cerr != nil {
		return fmt.Errorf("failed to open browser: %w (clipboard: %v)", err, cerr)
	}
	return fmt.Errorf("failed to open browser, link copied to clipboard: %w", err)
}
