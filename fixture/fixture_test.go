package fixture

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestPrepare_RelativeReference(t *testing.T) {
	root := t.TempDir()
	workdir := filepath.Join(root, "work")
	writeFile(t, filepath.Join(root, "test_data", "Trinity.fasta"), ">seq1\nACGT\n")
	if err := os.MkdirAll(workdir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	p := NewPreparer()
	if err := p.Prepare(filepath.Join("..", "test_data", "Trinity.fasta"), workdir); err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}

	staged := filepath.Join(workdir, "Trinity.fasta")
	data, err := os.ReadFile(staged)
	if err != nil {
		t.Fatalf("reading staged reference: %v", err)
	}
	if !strings.HasPrefix(string(data), ">seq1") {
		t.Errorf("staged reference content = %q", data)
	}
}

func TestPrepare_ReplacesStaleLink(t *testing.T) {
	root := t.TempDir()
	workdir := filepath.Join(root, "work")
	ref := filepath.Join(root, "ref.fa")
	writeFile(t, ref, ">new\n")
	if err := os.MkdirAll(workdir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	// A dangling link left by an earlier run.
	if err := os.Symlink(filepath.Join(root, "gone.fa"), filepath.Join(workdir, "ref.fa")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	p := NewPreparer()
	if err := p.Prepare(ref, workdir); err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(workdir, "ref.fa"))
	if err != nil || string(data) != ">new\n" {
		t.Errorf("staged reference = %q, %v; want fresh link", data, err)
	}
}

func TestPrepare_MissingReference(t *testing.T) {
	workdir := t.TempDir()

	p := NewPreparer()
	err := p.Prepare("no_such.fasta", workdir)
	if err == nil {
		t.Fatal("expected error for missing reference")
	}

	var fe *FixtureError
	if !errors.As(err, &fe) {
		t.Fatalf("error type = %T, want *FixtureError", err)
	}
	if !strings.Contains(err.Error(), "no_such.fasta") {
		t.Errorf("error = %q, want it to name the reference path", err)
	}
}

func TestPrepare_ReferenceAlreadyInWorkdir(t *testing.T) {
	workdir := t.TempDir()
	writeFile(t, filepath.Join(workdir, "ref.fa"), ">x\n")

	p := NewPreparer()
	if err := p.Prepare("ref.fa", workdir); err != nil {
		t.Fatalf("Prepare() error for in-place reference: %v", err)
	}
	if _, err := os.Stat(filepath.Join(workdir, "ref.fa")); err != nil {
		t.Errorf("reference vanished: %v", err)
	}
}

func TestClean_RemovesArtifacts(t *testing.T) {
	workdir := t.TempDir()
	writeFile(t, filepath.Join(workdir, "Trinity.fasta"), ">x\n")
	writeFile(t, filepath.Join(workdir, "Trinity.fasta.bowtie.ok"), "")
	writeFile(t, filepath.Join(workdir, "salmon_outdir", "quant.sf"), "")
	writeFile(t, filepath.Join(workdir, "keep.txt"), "untouched")

	globs := []string{"Trinity.fasta", "Trinity.fasta.*", "*_outdir*"}
	if err := Clean(workdir, globs); err != nil {
		t.Fatalf("Clean() error: %v", err)
	}

	for _, gone := range []string{"Trinity.fasta", "Trinity.fasta.bowtie.ok", "salmon_outdir"} {
		if _, err := os.Stat(filepath.Join(workdir, gone)); !os.IsNotExist(err) {
			t.Errorf("%s still present after Clean", gone)
		}
	}
	if _, err := os.Stat(filepath.Join(workdir, "keep.txt")); err != nil {
		t.Errorf("keep.txt removed by Clean: %v", err)
	}
}

func TestClean_Idempotent(t *testing.T) {
	workdir := t.TempDir()
	globs := []string{"Trinity.fasta", "*_outdir*"}

	if err := Clean(workdir, globs); err != nil {
		t.Fatalf("first Clean() error: %v", err)
	}
	if err := Clean(workdir, globs); err != nil {
		t.Fatalf("second Clean() error: %v", err)
	}
}

func TestClean_RejectsEscapingGlobs(t *testing.T) {
	workdir := t.TempDir()
	for _, g := range []string{"../outside*", "/etc/passwd"} {
		if err := Clean(workdir, []string{g}); err == nil {
			t.Errorf("Clean(%q) succeeded, want rejection", g)
		}
	}
}
