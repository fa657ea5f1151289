// Package types holds configuration types for suite.yaml.
package types

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Suite represents the top-level suite.yaml configuration.
type Suite struct {
	Name           string            `yaml:"suite"`
	Driver         string            `yaml:"driver"`
	Transcripts    string            `yaml:"transcripts"`
	Workdir        string            `yaml:"workdir,omitempty"`
	TimeoutSeconds int               `yaml:"timeout_seconds,omitempty"`
	Command        []string          `yaml:"command,omitempty"`
	Defaults       map[string]string `yaml:"defaults,omitempty"`
	Artifacts      []string          `yaml:"artifacts,omitempty"`
	Subtests       []SubTest         `yaml:"subtests"`
}

// SubTest is a single named invocation of the driver against one backend.
type SubTest struct {
	Name      string            `yaml:"name"`
	Tool      string            `yaml:"tool"`
	Params    map[string]string `yaml:"params,omitempty"`
	ExtraArgs []string          `yaml:"extra_args,omitempty"`
}

// DefaultCommandTemplate mirrors the historical driver invocation. Tokens in
// braces are substituted per sub-test; a flag whose value resolves empty is
// dropped together with the flag itself.
var DefaultCommandTemplate = []string{
	"--transcripts", "{transcripts}",
	"--seqType", "{seq_type}",
	"--samples_file", "{samples_file}",
	"--est_method", "{est_method}",
	"--aln_method", "{aln_method}",
	"--SS_lib_type", "{ss_lib_type}",
	"--trinity_mode",
	"--prep_reference",
}

// ParseSuite parses raw YAML bytes into a Suite and validates required fields.
func ParseSuite(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing suite config: %w", err)
	}

	if s.Name == "" {
		return nil, fmt.Errorf("suite config: suite is required")
	}
	if s.Driver == "" {
		return nil, fmt.Errorf("suite config: driver is required")
	}
	if s.Transcripts == "" {
		return nil, fmt.Errorf("suite config: transcripts is required")
	}
	if len(s.Subtests) == 0 {
		return nil, fmt.Errorf("suite config: at least one subtest is required")
	}

	seen := make(map[string]bool, len(s.Subtests))
	for i, st := range s.Subtests {
		if st.Name == "" {
			return nil, fmt.Errorf("suite config: subtests[%d]: name is required", i)
		}
		if st.Tool == "" {
			return nil, fmt.Errorf("suite config: subtest %q: tool is required", st.Name)
		}
		if seen[st.Name] {
			return nil, fmt.Errorf("suite config: duplicate subtest name %q", st.Name)
		}
		seen[st.Name] = true
	}

	return &s, nil
}

// Template returns the command template for this suite, falling back to
// DefaultCommandTemplate when none is configured.
func (s *Suite) Template() []string {
	if len(s.Command) > 0 {
		return s.Command
	}
	return DefaultCommandTemplate
}

// Substitutions merges suite defaults with a sub-test's params. The
// "transcripts" key is always set to the basename of the reference file,
// matching the name the fixture step links into the working directory.
func (s *Suite) Substitutions(st SubTest) map[string]string {
	subs := make(map[string]string, len(s.Defaults)+len(st.Params)+1)
	for k, v := range s.Defaults {
		subs[k] = v
	}
	for k, v := range st.Params {
		subs[k] = v
	}
	subs["transcripts"] = filepath.Base(s.Transcripts)
	return subs
}

// ArtifactGlobs returns the cleanup globs, defaulting to patterns that cover
// the reference link, generated indices, and per-backend output directories.
func (s *Suite) ArtifactGlobs() []string {
	if len(s.Artifacts) > 0 {
		return s.Artifacts
	}
	base := filepath.Base(s.Transcripts)
	return []string{base, base + ".*", "*_outdir*"}
}

// Subtest returns the sub-test with the given name, or nil.
func (s *Suite) Subtest(name string) *SubTest {
	for i := range s.Subtests {
		if s.Subtests[i].Name == name {
			return &s.Subtests[i]
		}
	}
	return nil
}
