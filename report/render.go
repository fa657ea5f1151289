package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/beneills/quantharness/harness"
	"github.com/beneills/quantharness/internal/tui"
)

const stderrExcerptLines = 10

// Renderer writes human-readable suite reports, styled when the destination
// is a terminal.
type Renderer struct {
	styles  *tui.StyleSet
	colored bool
}

// NewRenderer creates a Renderer. With colored false all styling is skipped,
// keeping piped output clean.
func NewRenderer(styles *tui.StyleSet, colored bool) *Renderer {
	return &Renderer{styles: styles, colored: colored}
}

// Render writes the consolidated report for one suite run.
func (r *Renderer) Render(w io.Writer, rep Report) {
	fmt.Fprintf(w, "\n%s\n\n", r.styled(rep.Suite, func(s *tui.StyleSet) func(...string) string {
		return s.Title.Render
	}))

	nameWidth := 0
	for _, o := range rep.Outcomes {
		if len(o.Subtest) > nameWidth {
			nameWidth = len(o.Subtest)
		}
	}

	for _, o := range rep.Outcomes {
		glyph, word := r.statusMark(o.Status)
		line := fmt.Sprintf("  %s %-*s  %-7s", glyph, nameWidth, o.Subtest, word)
		switch o.Status {
		case harness.StatusPass:
			line += fmt.Sprintf("  (%dms)", o.DurationMS)
		case harness.StatusSkipped, harness.StatusFail:
			if o.Message != "" {
				line += "  " + o.Message
			}
		}
		fmt.Fprintln(w, line)

		if o.Status == harness.StatusFail && o.Stderr != "" {
			for _, excerptLine := range lastLines(o.Stderr, stderrExcerptLines) {
				fmt.Fprintf(w, "      %s\n", r.styled(excerptLine, func(s *tui.StyleSet) func(...string) string {
					return s.DimTxt.Render
				}))
			}
		}
	}

	s := rep.Summary
	summary := fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		s.Passed, s.Failed, s.Skipped, s.Total)
	if s.Success() {
		summary = r.styled(summary, func(st *tui.StyleSet) func(...string) string { return st.SuccessTxt.Render })
	} else {
		summary = r.styled(summary, func(st *tui.StyleSet) func(...string) string { return st.ErrorTxt.Render })
	}
	fmt.Fprintf(w, "\n%s\n", summary)
}

func (r *Renderer) styled(text string, pick func(*tui.StyleSet) func(...string) string) string {
	if !r.colored {
		return text
	}
	return pick(r.styles)(text)
}

func (r *Renderer) statusMark(status harness.Status) (glyph, word string) {
	switch status {
	case harness.StatusPass:
		glyph, word = "✓", "PASS"
		if r.colored {
			glyph = r.styles.SuccessTxt.Render(glyph)
		}
	case harness.StatusFail:
		glyph, word = "✗", "FAIL"
		if r.colored {
			glyph = r.styles.ErrorTxt.Render(glyph)
		}
	default:
		glyph, word = "-", "SKIPPED"
		if r.colored {
			glyph = r.styles.WarningTxt.Render(glyph)
		}
	}
	return glyph, word
}

// lastLines returns up to n trailing non-empty lines of s.
func lastLines(s string, n int) []string {
	all := strings.Split(strings.TrimRight(s, "\n"), "\n")
	trimmed := all[:0]
	for _, l := range all {
		if strings.TrimSpace(l) != "" {
			trimmed = append(trimmed, l)
		}
	}
	if len(trimmed) > n {
		trimmed = trimmed[len(trimmed)-n:]
	}
	return trimmed
}
