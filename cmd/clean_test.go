package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunClean_RemovesArtifacts(t *testing.T) {
	dir := t.TempDir()
	writeTestSuiteYAML(t, dir, `
suite: demo
driver: run.pl
transcripts: ../ref.fa
subtests:
  - name: salmon
    tool: salmon
`)

	// Artifacts the globs should match: the staged reference link, index
	// files, and a per-backend output directory.
	for _, name := range []string{"ref.fa", "ref.fa.bowtie2.1.bt2", "samples.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	outdir := filepath.Join(dir, "salmon_outdir")
	if err := os.MkdirAll(outdir, 0755); err != nil {
		t.Fatalf("making outdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(outdir, "quant.sf"), nil, 0644); err != nil {
		t.Fatalf("writing quant.sf: %v", err)
	}

	oldCfg := cfgFile
	cfgFile = filepath.Join(dir, "suite.yaml")
	defer func() { cfgFile = oldCfg }()

	if err := runClean(nil, nil); err != nil {
		t.Fatalf("runClean() error: %v", err)
	}

	for _, gone := range []string{"ref.fa", "ref.fa.bowtie2.1.bt2", "salmon_outdir"} {
		if _, err := os.Stat(filepath.Join(dir, gone)); !os.IsNotExist(err) {
			t.Errorf("%s should have been removed", gone)
		}
	}
	// Unrelated files and the suite itself survive.
	for _, kept := range []string{"samples.txt", "suite.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, kept)); err != nil {
			t.Errorf("%s should have been kept: %v", kept, err)
		}
	}

	// Cleaning an already-clean workdir is a no-op.
	if err := runClean(nil, nil); err != nil {
		t.Fatalf("second runClean() error: %v", err)
	}
}
