package steps

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/beneills/quantharness/internal/tui"
	"github.com/beneills/quantharness/internal/tui/components"
)

// BackendsStep selects which estimation backends the suite covers.
type BackendsStep struct {
	selector components.MultiSelect
	complete bool
	backends []string
}

// NewBackendsStep creates a new backends step with all four backends
// preselected.
func NewBackendsStep(styles *tui.StyleSet) *BackendsStep {
	items := []components.MultiSelectItem{
		{Label: "RSEM", Value: "rsem", Description: "bowtie alignment, EM abundance estimation", Checked: true},
		{Label: "eXpress", Value: "express", Description: "bowtie2 alignment, streaming estimation", Checked: true},
		{Label: "kallisto", Value: "kallisto", Description: "alignment-free pseudoalignment", Checked: true},
		{Label: "salmon", Value: "salmon", Description: "alignment-free quasi-mapping", Checked: true},
	}

	selector := components.NewMultiSelect(
		items,
		styles.Theme.Accent,
		styles.Theme.Primary,
		styles.Theme.Secondary,
		styles.Theme.Dim,
		styles.ActiveBorder,
		styles.InactiveBorder,
		styles.KbdKey,
		styles.KbdDesc,
	)

	return &BackendsStep{selector: selector}
}

func (s *BackendsStep) Title() string { return "Backends" }

func (s *BackendsStep) Init() tea.Cmd {
	s.complete = false
	return s.selector.Init()
}

func (s *BackendsStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if s.complete {
		return s, nil
	}

	updated, cmd := s.selector.Update(msg)
	s.selector = updated

	if s.selector.Done() {
		selected := s.selector.SelectedValues()
		if len(selected) == 0 {
			// At least one backend is needed; reopen the selector.
			s.selector.Init()
			return s, nil
		}
		s.complete = true
		s.backends = selected
		return s, func() tea.Msg { return tui.StepCompleteMsg{} }
	}

	return s, cmd
}

func (s *BackendsStep) View(width int) string {
	return s.selector.View(width)
}

func (s *BackendsStep) Complete() bool {
	return s.complete
}

func (s *BackendsStep) Summary() string {
	out := ""
	for i, b := range s.backends {
		if i > 0 {
			out += ", "
		}
		out += b
	}
	return out
}

func (s *BackendsStep) Apply(ctx *tui.WizardContext) {
	ctx.Backends = s.backends
}
