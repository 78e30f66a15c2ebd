package browser

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"os/exec"

	pkgbrowser "github.com/pkg/browser"

	"github.com/renato0307/prinbox/internal/logging"
	"github.com/renato0307/prinbox/internal/ports"
)

func init() {
	// The dashboard owns the terminal
	pkgbrowser.Stdout = io.Discard
	pkgbrowser.Stderr = io.Discard
}

// Opener implements ports.URLOpener
type Opener struct {
	openDefault func(string) error
}

// Verify interface compliance at compile time
var _ ports.URLOpener = (*Opener)(nil)

// NewOpener creates a new browser opener
func NewOpener() *Opener {
	return &Opener{openDefault: pkgbrowser.OpenURL}
}

// Open opens target in a browser
// Priority: $PRINBOX_BROWSER → $BROWSER → platform default
func (o *Opener) Open(target string) error {
	if target == "" {
		return fmt.Errorf("no URL provided")
	}

	parsed, err := url.Parse(target)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return fmt.Errorf("refusing to open non-web URL %q", target)
	}

	name, ok := configuredBrowser()
	if !ok {
		logging.Logger.Info("Opening default browser", "url", target)
		if err := o.openDefault(target); err != nil {
			return fmt.Errorf("failed to open browser: %w", err)
		}
		return nil
	}

	logging.Logger.Info("Opening browser", "browser", name, "url", target)

	cmd := exec.Command(name, target)
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			logging.Logger.Warn("Browser exited with error", "error", err, "browser", name)
		}
	}()

	return nil
}

// configuredBrowser returns the browser command set in the environment, if any
func configuredBrowser() (string, bool) {
	if b := os.Getenv("PRINBOX_BROWSER"); b != "" {
		return b, true
	}
	if b := os.Getenv("BROWSER"); b != "" {
		return b, true
	}
	return "", false
}
