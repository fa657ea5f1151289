package steps

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/beneills/quantharness/internal/tui"
	"github.com/beneills/quantharness/internal/tui/components"
)

// DriverStep collects the path or name of the quantification driver.
type DriverStep struct {
	input    components.TextInput
	complete bool
	driver   string
}

// NewDriverStep creates a new driver step.
func NewDriverStep(styles *tui.StyleSet) *DriverStep {
	validate := func(val string) error {
		if val == "" {
			return fmt.Errorf("driver is required")
		}
		return nil
	}

	input := components.NewTextInput(
		"Which driver runs the estimation? (script path or PATH binary)",
		"./align_and_estimate_abundance.pl",
		validate,
		styles.Theme.Accent,
		styles.AccentTxt,
		styles.InactiveBorder,
		styles.ErrorTxt,
		styles.DimTxt,
		styles.KbdKey,
		styles.KbdDesc,
	)

	return &DriverStep{input: input}
}

func (s *DriverStep) Title() string { return "Driver" }

func (s *DriverStep) Init() tea.Cmd {
	s.complete = false
	s.input.Reset()
	return s.input.Init()
}

func (s *DriverStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if s.complete {
		return s, nil
	}

	updated, cmd := s.input.Update(msg)
	s.input = updated

	if s.input.Done() {
		s.complete = true
		s.driver = s.input.Value()
		return s, func() tea.Msg { return tui.StepCompleteMsg{} }
	}

	return s, cmd
}

func (s *DriverStep) View(width int) string {
	return s.input.View(width)
}

func (s *DriverStep) Complete() bool {
	return s.complete
}

func (s *DriverStep) Summary() string {
	return s.driver
}

func (s *DriverStep) Apply(ctx *tui.WizardContext) {
	ctx.Driver = s.driver
}
