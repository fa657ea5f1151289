package config

import (
	"fmt"
	"os"

	"github.com/beneills/quantharness/types"
)

// LoadSuite reads and parses a suite.yaml file from the given path.
func LoadSuite(path string) (*types.Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite config %s: %w", path, err)
	}
	return types.ParseSuite(data)
}
