package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/beneills/quantharness/config"
	"github.com/beneills/quantharness/types"
)

// resolveConfigPath makes the --config flag absolute against the current
// working directory.
func resolveConfigPath() (string, error) {
	cfgPath := cfgFile
	if !filepath.IsAbs(cfgPath) {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}
		cfgPath = filepath.Join(wd, cfgPath)
	}
	return cfgPath, nil
}

// loadSuite loads the suite named by --config and anchors its working
// directory next to the suite file, so suites behave the same no matter where
// the harness is launched from.
func loadSuite() (*types.Suite, error) {
	cfgPath, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}

	suite, err := config.LoadSuite(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("loading suite: %w", err)
	}

	base := filepath.Dir(cfgPath)
	if suite.Workdir == "" {
		suite.Workdir = base
	} else if !filepath.IsAbs(suite.Workdir) {
		suite.Workdir = filepath.Join(base, suite.Workdir)
	}
	return suite, nil
}
