package steps

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/beneills/quantharness/internal/tui"
	"github.com/beneills/quantharness/internal/tui/components"
)

// ReviewStep handles the final summary and confirmation.
// Writing the suite file is handled by the caller after the wizard exits.
type ReviewStep struct {
	styles   *tui.StyleSet
	summary  components.SummaryBox
	complete bool
	kbd      components.KbdHint
	prepared bool
}

// NewReviewStep creates a new review step.
func NewReviewStep(styles *tui.StyleSet) *ReviewStep {
	kbd := components.NewKbdHint(styles.KbdKey, styles.KbdDesc)
	kbd.Bindings = components.ReviewHints()

	return &ReviewStep{
		styles: styles,
		kbd:    kbd,
	}
}

// Prepare builds the summary from wizard context.
func (s *ReviewStep) Prepare(ctx *tui.WizardContext) {
	s.prepared = true
	s.complete = false

	rows := []components.SummaryRow{
		{Key: "Suite", Value: ctx.Name},
		{Key: "Driver", Value: ctx.Driver},
		{Key: "Transcripts", Value: ctx.Transcripts},
		{Key: "Backends", Value: strings.Join(ctx.Backends, ", ")},
	}

	s.summary = components.NewSummaryBox(
		rows,
		s.styles.SummaryKey,
		s.styles.SummaryValue,
		s.styles.BorderedBox,
	)
}

func (s *ReviewStep) Title() string { return "Review & Write" }

func (s *ReviewStep) Init() tea.Cmd {
	return nil
}

func (s *ReviewStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if s.complete {
		return s, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			s.complete = true
			return s, func() tea.Msg { return tui.StepCompleteMsg{} }
		case "backspace":
			return s, func() tea.Msg { return tui.StepBackMsg{} }
		}
	}
	return s, nil
}

func (s *ReviewStep) View(width int) string {
	out := s.summary.View(width) + "\n\n"
	out += "  " + s.styles.AccentTxt.Render("Press Enter to write suite.yaml, Backspace to go back") + "\n\n"
	out += s.kbd.View()
	return out
}

func (s *ReviewStep) Complete() bool {
	return s.complete
}

func (s *ReviewStep) Summary() string {
	return "confirmed"
}

func (s *ReviewStep) Apply(ctx *tui.WizardContext) {
	// Nothing to apply; the caller writes the file.
}
