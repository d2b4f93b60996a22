package telemetry

import (
	"fmt"
	"os"
	"runtime/pprof"
)

// AutoplayProfile records the CPU profile of a scripted autoplay run. The
// output is the default.pgo consumed by profile-guided builds.
type AutoplayProfile struct {
	path string
	f    *os.File
}

// StartAutoplayProfile creates path and starts CPU profiling into it.
func StartAutoplayProfile(path string) (*AutoplayProfile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("starting CPU profile: %w", err)
	}
	return &AutoplayProfile{path: path, f: f}, nil
}

// Path reports where the profile is written.
func (p *AutoplayProfile) Path() string { return p.path }

// Active reports whether profiling is still running.
func (p *AutoplayProfile) Active() bool { return p != nil && p.f != nil }

// Stop flushes the profile and closes the file. Later calls do nothing.
func (p *AutoplayProfile) Stop() error {
	if !p.Active() {
		return nil
	}
	pprof.StopCPUProfile()
	err := p.f.Close()
	p.f = nil
	if err != nil {
		return fmt.Errorf("closing profile: %w", err)
	}
	return nil
}
