package validate

import (
	"strings"
	"testing"

	"github.com/beneills/quantharness/types"
)

func baseSuite() *types.Suite {
	return &types.Suite{
		Name:        "demo",
		Driver:      "run.pl",
		Transcripts: "ref.fa",
		Defaults:    map[string]string{"seq_type": "fq", "samples_file": "samples.txt", "ss_lib_type": "RF"},
		Subtests: []types.SubTest{
			{Name: "rsem", Tool: "rsem-calculate-expression", Params: map[string]string{"est_method": "RSEM", "aln_method": "bowtie"}},
		},
	}
}

func TestValidateSuite_Clean(t *testing.T) {
	r := ValidateSuite(baseSuite())
	if !r.IsValid() {
		t.Fatalf("expected valid, got errors: %v", r.Errors)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", r.Warnings)
	}
}

func TestValidateSuite_NegativeTimeout(t *testing.T) {
	s := baseSuite()
	s.TimeoutSeconds = -1
	r := ValidateSuite(s)
	if r.IsValid() {
		t.Fatal("expected error for negative timeout")
	}
}

func TestValidateSuite_BadSubtestName(t *testing.T) {
	s := baseSuite()
	s.Subtests[0].Name = "-leading-dash"
	r := ValidateSuite(s)
	if r.IsValid() {
		t.Fatal("expected error for bad subtest name")
	}
}

func TestValidateSuite_UnknownMethodsWarn(t *testing.T) {
	s := baseSuite()
	s.Subtests[0].Params["est_method"] = "stringtie"
	s.Subtests[0].Params["aln_method"] = "hisat2"
	r := ValidateSuite(s)
	if !r.IsValid() {
		t.Fatalf("unknown methods must warn, not error: %v", r.Errors)
	}
	if len(r.Warnings) < 2 {
		t.Errorf("warnings = %v, want est_method and aln_method warnings", r.Warnings)
	}
}

func TestValidateSuite_OrphanParamWarns(t *testing.T) {
	s := baseSuite()
	s.Subtests[0].Params["est_methd"] = "RSEM" // typo
	r := ValidateSuite(s)
	found := false
	for _, w := range r.Warnings {
		if strings.Contains(w, "est_methd") {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, want orphan param warning for est_methd", r.Warnings)
	}
}

func TestValidateSuiteFile_Valid(t *testing.T) {
	yaml := `
suite: demo
driver: run.pl
transcripts: ref.fa
subtests:
  - name: salmon
    tool: salmon
    params:
      est_method: salmon
`
	errs, err := ValidateSuiteFile([]byte(yaml))
	if err != nil {
		t.Fatalf("ValidateSuiteFile() error: %v", err)
	}
	if len(errs) != 0 {
		t.Errorf("unexpected schema errors: %v", errs)
	}
}

func TestValidateSuiteFile_SchemaViolations(t *testing.T) {
	yaml := `
suite: demo
driver: run.pl
transcripts: ref.fa
timeout_seconds: -5
unexpected_key: true
subtests: []
`
	errs, err := ValidateSuiteFile([]byte(yaml))
	if err != nil {
		t.Fatalf("ValidateSuiteFile() error: %v", err)
	}
	if len(errs) == 0 {
		t.Fatal("expected schema errors for negative timeout, unknown key, empty subtests")
	}
}

func TestValidateSuiteFile_BadYAML(t *testing.T) {
	_, err := ValidateSuiteFile([]byte("subtests: [unclosed"))
	if err == nil {
		t.Fatal("expected error for unparseable yaml")
	}
}

func TestTemplatePlaceholders(t *testing.T) {
	keys := templatePlaceholders([]string{"--a", "{x}", "pre{y}post", "plain"})
	for _, want := range []string{"x", "y"} {
		if !keys[want] {
			t.Errorf("placeholder %q not extracted: %v", want, keys)
		}
	}
	if keys["plain"] {
		t.Error("plain token must not register a placeholder")
	}
}
