package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dshills/govlint/internal/schema"
)

// ansiRenderer writes a colorized terminal report. Color handling follows
// the diff-view styling conventions: added green, removed red, severity
// tints on finding rows.
type ansiRenderer struct{}

var (
	ansiHeader    = lipgloss.NewStyle().Bold(true)
	ansiPass      = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	ansiFail      = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	ansiAdded     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	ansiRemoved   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	ansiUnchanged = lipgloss.NewStyle().Faint(true)
	ansiWarn      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	ansiSeverity = map[schema.Severity]lipgloss.Style{
		schema.SeverityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		schema.SeverityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		schema.SeverityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		schema.SeverityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
)

func (r *ansiRenderer) Render(report *schema.Report) ([]byte, error) {
	var sb strings.Builder

	statusStyle := ansiPass
	if report.Summary.Status != schema.StatusPass {
		statusStyle = ansiFail
	}
	sb.WriteString(ansiHeader.Render(fmt.Sprintf("govlint · %s · profile %s", report.Input.File, report.Input.Profile)))
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(string(report.Summary.Status)))
	sb.WriteString(fmt.Sprintf("  critical:%d high:%d medium:%d low:%d\n",
		report.Summary.CriticalCount, report.Summary.HighCount,
		report.Summary.MediumCount, report.Summary.LowCount))

	if len(report.Findings) > 0 {
		sb.WriteString("\n")
		for _, f := range report.Findings {
			sev := ansiSeverity[f.Severity]
			sb.WriteString(fmt.Sprintf("  %s %s %s — %s\n",
				sev.Render(string(f.Severity)), f.Category, f.RuleID, f.Message))
		}
	}

	for _, w := range report.Warnings {
		sb.WriteString(ansiWarn.Render(fmt.Sprintf("  warning (%s): %s", w.Kind, w.Detail)))
		sb.WriteString("\n")
	}

	if len(report.Diff) > 0 {
		sb.WriteString("\n")
		for _, d := range report.Diff {
			switch d.Kind {
			case schema.DiffAdded:
				sb.WriteString(ansiAdded.Render("+" + d.Content))
			case schema.DiffRemoved:
				sb.WriteString(ansiRemoved.Render("-" + d.Content))
			default:
				sb.WriteString(ansiUnchanged.Render(" " + d.Content))
			}
			sb.WriteString("\n")
		}
	}

	if report.Suggestion != "" {
		sb.WriteString("\n")
		sb.WriteString(ansiHeader.Render("generative suggestion"))
		sb.WriteString("\n")
		sb.WriteString(report.Suggestion)
		sb.WriteString("\n")
	}

	return []byte(sb.String()), nil
}
