package locate

import (
	"errors"
	"runtime"
	"testing"
)

func TestPathLocator_Present(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("sh not present on Windows")
	}

	l := NewPathLocator()
	path, ok := l.Locate("sh")
	if !ok {
		t.Fatal("Locate(sh) = absent, want present")
	}
	if path == "" {
		t.Error("Locate(sh) returned empty path for present tool")
	}
}

func TestPathLocator_Absent(t *testing.T) {
	l := NewPathLocator()
	if _, ok := l.Locate("definitely-not-a-real-binary-9f2c"); ok {
		t.Fatal("Locate() = present for nonexistent tool")
	}
}

func TestPathLocator_InjectedLookup(t *testing.T) {
	l := &PathLocator{lookPath: func(name string) (string, error) {
		if name == "kallisto" {
			return "/opt/bio/bin/kallisto", nil
		}
		return "", errors.New("not found")
	}}

	path, ok := l.Locate("kallisto")
	if !ok || path != "/opt/bio/bin/kallisto" {
		t.Errorf("Locate(kallisto) = (%q, %v), want injected path", path, ok)
	}
	if _, ok := l.Locate("salmon"); ok {
		t.Error("Locate(salmon) = present, want absent")
	}
}
