package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSuite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suite.yaml")
	content := `
suite: demo
driver: run.pl
transcripts: ref.fa
subtests:
  - name: salmon
    tool: salmon
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing suite.yaml: %v", err)
	}

	s, err := LoadSuite(path)
	if err != nil {
		t.Fatalf("LoadSuite() error: %v", err)
	}
	if s.Name != "demo" {
		t.Errorf("Name = %q, want %q", s.Name, "demo")
	}
}

func TestLoadSuite_MissingFile(t *testing.T) {
	_, err := LoadSuite(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
