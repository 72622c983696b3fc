package helpers

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/xiaobei930/claude-code-best-practices/internal/domain"
)

// ====================================================================================
// Report Rendering
// ====================================================================================

const ruleWidth = 50

// Bright ANSI palette, rendered as SGR 91-94.
var (
	colorRed    = lipgloss.Color("9")
	colorGreen  = lipgloss.Color("10")
	colorYellow = lipgloss.Color("11")
	colorBlue   = lipgloss.Color("12")
)

// Report summary lines
const (
	MsgAllChecksPassed = "All checks passed."
	MsgChecksFailed    = "Some checks failed, see the output above."
)

// ReportRenderer writes a validation report as sectioned, optionally colored text.
type ReportRenderer struct {
	out   io.Writer
	style map[domain.CheckStatus]lipgloss.Style
}

// NewReportRenderer creates a renderer writing to out. The color decision is
// forced onto the lipgloss renderer instead of being detected from out.
func NewReportRenderer(out io.Writer, color bool) *ReportRenderer {
	renderer := lipgloss.NewRenderer(out)
	if color {
		renderer.SetColorProfile(termenv.ANSI)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return &ReportRenderer{
		out: out,
		style: map[domain.CheckStatus]lipgloss.Style{
			domain.StatusPass: renderer.NewStyle().Foreground(colorGreen),
			domain.StatusFail: renderer.NewStyle().Foreground(colorRed),
			domain.StatusWarn: renderer.NewStyle().Foreground(colorYellow),
			domain.StatusInfo: renderer.NewStyle().Foreground(colorBlue),
		},
	}
}

// Render prints every check section followed by the summary table.
func (r *ReportRenderer) Render(report domain.ValidationReport) {
	r.heading("Template validation")
	fmt.Fprintf(r.out, "root: %s\n", report.Root)

	for i, result := range report.Results {
		fmt.Fprintln(r.out)
		r.heading(fmt.Sprintf("%d. %s", i+1, result.Name))
		for _, line := range result.Lines {
			fmt.Fprintf(r.out, "%s %s\n", r.tag(line.Status), line.Message)
		}
	}

	fmt.Fprintln(r.out)
	r.heading("Summary")
	for _, result := range report.Results {
		fmt.Fprintf(r.out, "  %s: %s\n", result.Name, r.summaryStatus(result))
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, strings.Repeat("=", ruleWidth))
	if report.Passed() {
		fmt.Fprintln(r.out, r.paint(domain.StatusPass, MsgAllChecksPassed))
	} else {
		fmt.Fprintln(r.out, r.paint(domain.StatusFail, MsgChecksFailed))
	}
}

func (r *ReportRenderer) heading(title string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out, title)
	fmt.Fprintln(r.out, rule)
}

func (r *ReportRenderer) tag(status domain.CheckStatus) string {
	label := "[" + strings.ToUpper(string(status)) + "]"
	return r.paint(status, label)
}

func (r *ReportRenderer) summaryStatus(result domain.CheckResult) string {
	var status string
	switch {
	case !result.Passed:
		status = r.paint(domain.StatusFail, "FAIL")
	case result.HasWarnings():
		status = r.paint(domain.StatusWarn, "WARN")
	default:
		status = r.paint(domain.StatusPass, "PASS")
	}
	if result.Advisory {
		status += " (advisory)"
	}
	return status
}

func (r *ReportRenderer) paint(status domain.CheckStatus, text string) string {
	return r.style[status].Render(text)
}
