// Package clipboard wraps the system clipboard behind domain.Clipboard so
// commands can copy stego strings and paste them back without the caller
// selecting text by hand.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"stegamoji/internal/domain"
)

// System reads and writes the OS clipboard.
type System struct{}

// Copy places text on the clipboard.
func (System) Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// Paste returns the current clipboard contents.
func (System) Paste() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return text, nil
}

// Compile-time assertion that System implements domain.Clipboard.
var _ domain.Clipboard = System{}
