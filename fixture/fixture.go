// Package fixture stages shared reference inputs into a working directory and
// removes generated artifacts afterwards.
package fixture

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FixtureError reports a reference artifact that is missing or could not be
// staged into the working directory.
type FixtureError struct {
	Reference string
	Err       error
}

func (e *FixtureError) Error() string {
	return fmt.Sprintf("fixture %s: %v", e.Reference, e.Err)
}

func (e *FixtureError) Unwrap() error { return e.Err }

// Preparer stages the reference file for a run.
type Preparer struct{}

// NewPreparer creates a Preparer.
func NewPreparer() *Preparer { return &Preparer{} }

// Prepare links the reference file into workdir under its basename, replacing
// any stale link from a previous run. A relative reference path is interpreted
// relative to workdir, matching how suites configure shared test data living
// next to the working directory. Falls back to a byte copy where symbolic
// links are unsupported.
func (p *Preparer) Prepare(reference, workdir string) error {
	target := reference
	resolved := reference
	if !filepath.IsAbs(reference) {
		resolved = filepath.Join(workdir, reference)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return &FixtureError{Reference: reference, Err: err}
	}
	if info.IsDir() {
		return &FixtureError{Reference: reference, Err: fmt.Errorf("is a directory, want a file")}
	}

	linkName := filepath.Join(workdir, filepath.Base(reference))
	if sameFile(resolved, linkName) {
		// The reference already lives in the working directory.
		return nil
	}

	// ln -sf semantics: replace whatever a previous run left behind.
	if err := os.Remove(linkName); err != nil && !os.IsNotExist(err) {
		return &FixtureError{Reference: reference, Err: err}
	}

	if err := os.Symlink(target, linkName); err != nil {
		if copyErr := copyFile(resolved, linkName); copyErr != nil {
			return &FixtureError{Reference: reference, Err: copyErr}
		}
	}
	return nil
}

func sameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Clean removes artifacts matching the given globs inside workdir. It is
// idempotent: matching nothing is not an error. Globs escaping the working
// directory are rejected.
func Clean(workdir string, globs []string) error {
	for _, g := range globs {
		if filepath.IsAbs(g) || strings.Contains(g, "..") {
			return fmt.Errorf("artifact glob %q must stay inside the working directory", g)
		}
		matches, err := filepath.Glob(filepath.Join(workdir, g))
		if err != nil {
			return fmt.Errorf("artifact glob %q: %w", g, err)
		}
		for _, m := range matches {
			if err := os.RemoveAll(m); err != nil {
				return fmt.Errorf("removing %s: %w", m, err)
			}
		}
	}
	return nil
}
