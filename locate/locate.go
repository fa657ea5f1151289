// Package locate answers whether a named executable is reachable on the
// current search path. Absence is a normal outcome, never an error.
package locate

import "os/exec"

// Locator resolves tool names to executables. Implementations must be free of
// side effects so callers can probe freely.
type Locator interface {
	// Locate returns the resolved path for tool and whether it was found.
	Locate(tool string) (path string, ok bool)
}

// PathLocator probes the executable search path (PATH) on every call, so a
// tool installed or removed between runs is observed immediately.
type PathLocator struct {
	// lookPath is swappable for tests; defaults to exec.LookPath.
	lookPath func(string) (string, error)
}

// NewPathLocator creates a PathLocator backed by exec.LookPath.
func NewPathLocator() *PathLocator {
	return &PathLocator{lookPath: exec.LookPath}
}

func (l *PathLocator) Locate(tool string) (string, bool) {
	lp := l.lookPath
	if lp == nil {
		lp = exec.LookPath
	}
	path, err := lp(tool)
	if err != nil {
		return "", false
	}
	return path, true
}
