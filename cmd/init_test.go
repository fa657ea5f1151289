package cmd

import (
	"path/filepath"
	"testing"

	"github.com/beneills/quantharness/config"
)

func TestRunInit_NonInteractiveWritesSuite(t *testing.T) {
	dir := t.TempDir()

	oldCfg := cfgFile
	cfgFile = filepath.Join(dir, "suite.yaml")
	defer func() { cfgFile = oldCfg }()

	if err := initCmd.Flags().Set("non-interactive", "true"); err != nil {
		t.Fatalf("setting flag: %v", err)
	}
	defer initCmd.Flags().Set("non-interactive", "false")

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit() error: %v", err)
	}

	suite, err := config.LoadSuite(cfgFile)
	if err != nil {
		t.Fatalf("loading scaffolded suite: %v", err)
	}
	if suite.Name != "align-and-estimate" {
		t.Errorf("Name = %q, want align-and-estimate", suite.Name)
	}
	if got := len(suite.Subtests); got != 4 {
		t.Fatalf("got %d subtests, want 4", got)
	}
	salmon := suite.Subtest("salmon")
	if salmon == nil {
		t.Fatal("salmon subtest missing")
	}
	if len(salmon.ExtraArgs) != 2 || salmon.ExtraArgs[0] != "--salmon_idx_type" {
		t.Errorf("salmon ExtraArgs = %v", salmon.ExtraArgs)
	}

	// Refuses to overwrite without --force.
	if err := runInit(initCmd, nil); err == nil {
		t.Fatal("expected error for existing suite file")
	}

	if err := initCmd.Flags().Set("force", "true"); err != nil {
		t.Fatalf("setting flag: %v", err)
	}
	defer initCmd.Flags().Set("force", "false")
	if err := runInit(initCmd, []string{"custom-name"}); err != nil {
		t.Fatalf("runInit() with --force error: %v", err)
	}
	suite, err = config.LoadSuite(cfgFile)
	if err != nil {
		t.Fatalf("reloading suite: %v", err)
	}
	if suite.Name != "custom-name" {
		t.Errorf("Name = %q, want custom-name", suite.Name)
	}
}

func TestBuildSuite_UnknownBackend(t *testing.T) {
	_, err := buildSuite(&initOptions{Name: "x", Driver: "d", Transcripts: "t", Backends: []string{"stringtie"}})
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestBuildSuite_NoBackends(t *testing.T) {
	_, err := buildSuite(&initOptions{Name: "x", Driver: "d", Transcripts: "t"})
	if err == nil {
		t.Fatal("expected error for empty backend list")
	}
}
