package desktop

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/logging"
)

// ErrSchemeNotAllowed is returned for URLs the opener refuses to hand off.
var ErrSchemeNotAllowed = errors.New("url scheme not allowed for external open")

var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
}

// Opener hands URLs to the system's default handler.
type Opener struct {
	goos string
	// start launches the command without waiting for it.
	start func(ctx context.Context, name string, args ...string) error
}

var _ port.ExternalOpener = (*Opener)(nil)

// NewOpener creates an opener for the running system.
func NewOpener() *Opener {
	return &Opener{goos: runtime.GOOS, start: startDetached}
}

// OpenExternal implements port.ExternalOpener.
func (o *Opener) OpenExternal(ctx context.Context, rawURL string) error {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	if !allowedSchemes[strings.ToLower(u.Scheme)] {
		return fmt.Errorf("%w: %q", ErrSchemeNotAllowed, u.Scheme)
	}

	name, args := o.command(u.String())
	if err := o.start(ctx, name, args...); err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}

	logging.FromContext(ctx).Debug().Str("url", u.String()).Str("handler", name).Msg("opened url externally")
	return nil
}

func (o *Opener) command(target string) (string, []string) {
	switch o.goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}

// startDetached runs the handler and reaps it in the background so the
// shell never waits on the browser.
func startDetached(_ context.Context, name string, args ...string) error {
	// Not bound to ctx: the browser must outlive the request that opened it.
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
