// Package term renders the dashboard view-models as terminal text.
package term

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"casedesk/internal/cases/models"
)

var (
	colorSuccess = lipgloss.Color("#1a7f37")
	colorDanger  = lipgloss.Color("#cf222e")
	colorWarning = lipgloss.Color("#bf8700")
	colorAccent  = lipgloss.Color("#0969da")
	colorMuted   = lipgloss.Color("#6e7781")
)

// Styles holds the lipgloss styles bound to one output.
type Styles struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Muted   lipgloss.Style
	Active  lipgloss.Style
	Badge   lipgloss.Style
	Card    lipgloss.Style
	Success lipgloss.Style
	Danger  lipgloss.Style
	Warning lipgloss.Style
}

// NewStyles builds styles for w. Colors are dropped when w is not a terminal.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Title:   r.NewStyle().Bold(true),
		Heading: r.NewStyle().Bold(true).Foreground(colorAccent),
		Muted:   r.NewStyle().Foreground(colorMuted),
		Active:  r.NewStyle().Bold(true).Underline(true),
		Badge:   r.NewStyle().Padding(0, 1),
		Card:    r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Success: r.NewStyle().Foreground(colorSuccess),
		Danger:  r.NewStyle().Foreground(colorDanger),
		Warning: r.NewStyle().Foreground(colorWarning),
	}
}

// caseBadge colours a case status badge.
func (s Styles) caseBadge(status models.CaseStatus, label string) string {
	switch status {
	case models.CaseStatusApproved:
		return s.Badge.Inherit(s.Success).Render(label)
	case models.CaseStatusRejected:
		return s.Badge.Inherit(s.Danger).Render(label)
	case models.CaseStatusInReview:
		return s.Badge.Inherit(s.Warning).Render(label)
	default:
		return s.Badge.Render(label)
	}
}

// icon colours a ✓/⚠/✗ icon.
func (s Styles) icon(icon string) string {
	switch icon {
	case "✓":
		return s.Success.Render(icon)
	case "⚠":
		return s.Warning.Render(icon)
	case "✗":
		return s.Danger.Render(icon)
	default:
		return icon
	}
}
