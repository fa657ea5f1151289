package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/beneills/quantharness/types"
)

var (
	subtestNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

	knownEstMethods = map[string]bool{"RSEM": true, "express": true, "kallisto": true, "salmon": true}
	knownAlnMethods = map[string]bool{"bowtie": true, "bowtie2": true}
	knownLibTypes   = map[string]bool{"RF": true, "FR": true, "R": true, "F": true}
)

// ValidationResult holds errors and warnings from suite validation.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// IsValid returns true if there are no validation errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// ValidateSuite checks a Suite for errors and warnings beyond the required
// fields enforced at parse time.
func ValidateSuite(s *types.Suite) *ValidationResult {
	r := &ValidationResult{}

	if s.TimeoutSeconds < 0 {
		r.Errors = append(r.Errors, fmt.Sprintf("timeout_seconds %d must not be negative", s.TimeoutSeconds))
	}

	placeholders := templatePlaceholders(s.Template())

	for i, st := range s.Subtests {
		if !subtestNamePattern.MatchString(st.Name) {
			r.Errors = append(r.Errors, fmt.Sprintf("subtests[%d]: name %q must match %s", i, st.Name, subtestNamePattern.String()))
		}

		subs := s.Substitutions(st)
		if m := subs["est_method"]; m != "" && !knownEstMethods[m] {
			r.Warnings = append(r.Warnings, fmt.Sprintf("subtest %q: unknown est_method %q (known: RSEM, express, kallisto, salmon)", st.Name, m))
		}
		if m := subs["aln_method"]; m != "" && !knownAlnMethods[m] {
			r.Warnings = append(r.Warnings, fmt.Sprintf("subtest %q: unknown aln_method %q (known: bowtie, bowtie2)", st.Name, m))
		}
		if lt := subs["ss_lib_type"]; lt != "" && !knownLibTypes[lt] {
			r.Warnings = append(r.Warnings, fmt.Sprintf("subtest %q: unknown ss_lib_type %q (known: RF, FR, R, F)", st.Name, lt))
		}

		// Params that no template placeholder can consume are almost
		// certainly typos.
		for k := range st.Params {
			if !placeholders[k] {
				r.Warnings = append(r.Warnings, fmt.Sprintf("subtest %q: param %q matches no template placeholder", st.Name, k))
			}
		}
	}

	return r
}

// templatePlaceholders extracts the {key} names present in a command template.
func templatePlaceholders(template []string) map[string]bool {
	keys := make(map[string]bool)
	for _, tok := range template {
		rest := tok
		for {
			open := strings.Index(rest, "{")
			if open < 0 {
				break
			}
			close := strings.Index(rest[open:], "}")
			if close < 0 {
				break
			}
			keys[rest[open+1:open+close]] = true
			rest = rest[open+close+1:]
		}
	}
	return keys
}
