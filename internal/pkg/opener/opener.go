package opener

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/browser"
)

// ErrEmptyTarget is returned when there is nothing to open
var ErrEmptyTarget = errors.New("nothing to open")

// Func opens a URL or a local file in the user's browser
type Func func(target string) error

func init() {
	// xdg-open and friends chatter on stdout, which would corrupt CLI output
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// URL opens an http(s) URL in the system browser
func URL(target string) error {
	if strings.TrimSpace(target) == "" {
		return ErrEmptyTarget
	}
	if err := browser.OpenURL(target); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// File opens a local file in the system browser. The file must exist.
func File(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrEmptyTarget
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}
	if err := browser.OpenFile(path); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}
