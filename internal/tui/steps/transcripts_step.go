package steps

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/beneills/quantharness/internal/tui"
	"github.com/beneills/quantharness/internal/tui/components"
)

// TranscriptsStep collects the reference transcripts FASTA path.
type TranscriptsStep struct {
	input       components.TextInput
	complete    bool
	transcripts string
}

// NewTranscriptsStep creates a new transcripts step.
func NewTranscriptsStep(styles *tui.StyleSet) *TranscriptsStep {
	validate := func(val string) error {
		if val == "" {
			return fmt.Errorf("transcripts path is required")
		}
		return nil
	}

	input := components.NewTextInput(
		"Where is the reference transcripts FASTA?",
		"../test_data/Trinity.fasta",
		validate,
		styles.Theme.Accent,
		styles.AccentTxt,
		styles.InactiveBorder,
		styles.ErrorTxt,
		styles.DimTxt,
		styles.KbdKey,
		styles.KbdDesc,
	)

	return &TranscriptsStep{input: input}
}

func (s *TranscriptsStep) Title() string { return "Transcripts" }

func (s *TranscriptsStep) Init() tea.Cmd {
	s.complete = false
	s.input.Reset()
	return s.input.Init()
}

func (s *TranscriptsStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if s.complete {
		return s, nil
	}

	updated, cmd := s.input.Update(msg)
	s.input = updated

	if s.input.Done() {
		s.complete = true
		s.transcripts = s.input.Value()
		return s, func() tea.Msg { return tui.StepCompleteMsg{} }
	}

	return s, cmd
}

func (s *TranscriptsStep) View(width int) string {
	return s.input.View(width)
}

func (s *TranscriptsStep) Complete() bool {
	return s.complete
}

func (s *TranscriptsStep) Summary() string {
	return s.transcripts
}

func (s *TranscriptsStep) Apply(ctx *tui.WizardContext) {
	ctx.Transcripts = s.transcripts
}
