// Package browser opens links in the system web browser.
package browser

import (
	"fmt"
	"io"
	"net/url"

	clibrowser "github.com/cli/browser"
)

// Opener launches URLs in the user's default browser. The browser runs as
// a separate process with no handle back to this one.
type Opener struct {
	open func(string) error
}

// NewOpener creates an Opener. Browser launcher output is discarded so it
// cannot draw over the TUI.
func NewOpener() *Opener {
	clibrowser.Stdout = io.Discard
	clibrowser.Stderr = io.Discard
	return &Opener{open: clibrowser.OpenURL}
}

// Open validates raw and hands it to the browser.
func (o *Opener) Open(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid link: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open non-web link %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("link has no host: %q", raw)
	}
	if err := o.open(u.String()); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}
