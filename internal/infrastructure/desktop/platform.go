// Package desktop integrates the shell with the host desktop: platform
// probing, handing URLs to the system browser and desktop entries.
package desktop

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/bnema/appshell/internal/application/port"
)

// darwinNativeTabsMajor is the first Darwin kernel major with native window
// tabs (macOS 10.12 Sierra ships Darwin 16).
const darwinNativeTabsMajor = 16

// Probe answers platform capability questions. Answers are computed once.
type Probe struct {
	goos          string
	kernelRelease string
	nativeTabs    bool
}

var _ port.Platform = (*Probe)(nil)

// NewProbe probes the running system.
func NewProbe() *Probe {
	return NewProbeFor(runtime.GOOS, kernelRelease())
}

// NewProbeFor builds a probe from explicit values.
func NewProbeFor(goos, release string) *Probe {
	p := &Probe{goos: goos, kernelRelease: release}
	if goos == "darwin" {
		major, ok := parseMajor(release)
		p.nativeTabs = ok && major >= darwinNativeTabsMajor
	}
	return p
}

// IsMacOS implements port.Platform.
func (p *Probe) IsMacOS() bool {
	return p.goos == "darwin"
}

// NativeTabsSupported implements port.Platform.
func (p *Probe) NativeTabsSupported() bool {
	return p.nativeTabs
}

// OS returns the probed operating system name.
func (p *Probe) OS() string {
	return p.goos
}

// KernelRelease returns the probed kernel release, empty when unknown.
func (p *Probe) KernelRelease() string {
	return p.kernelRelease
}

// parseMajor reads the leading integer of a dotted release like "16.7.0".
func parseMajor(release string) (int, bool) {
	release = strings.TrimSpace(release)
	if i := strings.IndexAny(release, ".-"); i >= 0 {
		release = release[:i]
	}
	major, err := strconv.Atoi(release)
	if err != nil {
		return 0, false
	}
	return major, true
}
