package types

import (
	"strings"
	"testing"
)

const validSuiteYAML = `
suite: align-and-estimate
driver: ./align_and_estimate_abundance.pl
transcripts: ../test_data/Trinity.fasta
defaults:
  seq_type: fq
  samples_file: samples.txt
  ss_lib_type: RF
subtests:
  - name: rsem
    tool: rsem-calculate-expression
    params:
      est_method: RSEM
      aln_method: bowtie
  - name: salmon
    tool: salmon
    params:
      est_method: salmon
    extra_args: [--salmon_idx_type, salmon-quasi]
`

func TestParseSuite_Valid(t *testing.T) {
	s, err := ParseSuite([]byte(validSuiteYAML))
	if err != nil {
		t.Fatalf("ParseSuite() error: %v", err)
	}
	if s.Name != "align-and-estimate" {
		t.Errorf("Name = %q, want %q", s.Name, "align-and-estimate")
	}
	if len(s.Subtests) != 2 {
		t.Fatalf("len(Subtests) = %d, want 2", len(s.Subtests))
	}
	if s.Subtests[1].ExtraArgs[1] != "salmon-quasi" {
		t.Errorf("ExtraArgs[1] = %q, want %q", s.Subtests[1].ExtraArgs[1], "salmon-quasi")
	}
}

func TestParseSuite_MissingFields(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"no suite", "driver: d\ntranscripts: t\nsubtests: [{name: a, tool: b}]", "suite is required"},
		{"no driver", "suite: s\ntranscripts: t\nsubtests: [{name: a, tool: b}]", "driver is required"},
		{"no transcripts", "suite: s\ndriver: d\nsubtests: [{name: a, tool: b}]", "transcripts is required"},
		{"no subtests", "suite: s\ndriver: d\ntranscripts: t", "at least one subtest"},
		{"unnamed subtest", "suite: s\ndriver: d\ntranscripts: t\nsubtests: [{tool: b}]", "name is required"},
		{"no tool", "suite: s\ndriver: d\ntranscripts: t\nsubtests: [{name: a}]", "tool is required"},
		{"duplicate name", "suite: s\ndriver: d\ntranscripts: t\nsubtests: [{name: a, tool: b}, {name: a, tool: c}]", "duplicate subtest name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSuite([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tc.want)
			}
		})
	}
}

func TestParseSuite_InvalidYAML(t *testing.T) {
	_, err := ParseSuite([]byte("suite: [unclosed"))
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestSubstitutions_MergeAndTranscriptsBase(t *testing.T) {
	s, err := ParseSuite([]byte(validSuiteYAML))
	if err != nil {
		t.Fatalf("ParseSuite() error: %v", err)
	}

	subs := s.Substitutions(s.Subtests[0])
	if subs["seq_type"] != "fq" {
		t.Errorf("seq_type = %q, want %q", subs["seq_type"], "fq")
	}
	if subs["est_method"] != "RSEM" {
		t.Errorf("est_method = %q, want %q", subs["est_method"], "RSEM")
	}
	// Basename of the reference, not the configured path.
	if subs["transcripts"] != "Trinity.fasta" {
		t.Errorf("transcripts = %q, want %q", subs["transcripts"], "Trinity.fasta")
	}
}

func TestSubstitutions_ParamsOverrideDefaults(t *testing.T) {
	s := &Suite{
		Transcripts: "ref.fa",
		Defaults:    map[string]string{"ss_lib_type": "RF"},
	}
	st := SubTest{Name: "x", Tool: "x", Params: map[string]string{"ss_lib_type": "F"}}

	if got := s.Substitutions(st)["ss_lib_type"]; got != "F" {
		t.Errorf("ss_lib_type = %q, want %q", got, "F")
	}
}

func TestTemplate_Default(t *testing.T) {
	s := &Suite{}
	if got := s.Template(); len(got) != len(DefaultCommandTemplate) {
		t.Errorf("Template() length = %d, want default template", len(got))
	}

	s.Command = []string{"--only", "{x}"}
	if got := s.Template(); len(got) != 2 || got[0] != "--only" {
		t.Errorf("Template() = %v, want configured command", got)
	}
}

func TestArtifactGlobs_Default(t *testing.T) {
	s := &Suite{Transcripts: "../data/Trinity.fasta"}
	globs := s.ArtifactGlobs()
	want := []string{"Trinity.fasta", "Trinity.fasta.*", "*_outdir*"}
	if len(globs) != len(want) {
		t.Fatalf("ArtifactGlobs() = %v, want %v", globs, want)
	}
	for i := range want {
		if globs[i] != want[i] {
			t.Errorf("globs[%d] = %q, want %q", i, globs[i], want[i])
		}
	}
}

func TestSubtest_Lookup(t *testing.T) {
	s, _ := ParseSuite([]byte(validSuiteYAML))
	if st := s.Subtest("salmon"); st == nil || st.Tool != "salmon" {
		t.Errorf("Subtest(salmon) = %+v, want salmon entry", st)
	}
	if st := s.Subtest("nope"); st != nil {
		t.Errorf("Subtest(nope) = %+v, want nil", st)
	}
}
