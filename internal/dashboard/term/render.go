package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"casedesk/internal/dashboard/view"
)

// Renderer writes view-models to a terminal.
type Renderer struct {
	w      io.Writer
	styles Styles
}

// New builds a renderer writing to w.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w, styles: NewStyles(w)}
}

// CaseList renders the case list.
func (r *Renderer) CaseList(items []view.CaseListItem) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(r.w, r.styles.Muted.Render("No hay casos disponibles."))
		return err
	}
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Casos") + "\n")
	for _, it := range items {
		marker := " "
		if it.Selected {
			marker = "›"
		}
		fmt.Fprintf(&b, "%s %-6s %-28s %s\n", marker, it.ID, it.Name, r.styles.caseBadge(it.Status, it.StatusLabel))
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

// Dashboard renders the shell of one case.
func (r *Renderer) Dashboard(v view.DashboardView) error {
	s := r.styles
	var b strings.Builder

	if v.Message != "" {
		b.WriteString(s.Muted.Render(v.Message) + "\n")
		_, err := io.WriteString(r.w, b.String())
		return err
	}

	header := s.Title.Render(v.Name) + " " + s.Muted.Render("#"+v.CaseID) + "  " + s.Badge.Render(v.StatusLabel)
	if v.Open {
		header += " " + s.Warning.Render("◷ pendiente")
	}
	b.WriteString(header + "\n")

	tabs := make([]string, len(v.Tabs))
	for i, t := range v.Tabs {
		if t.Active {
			tabs[i] = s.Active.Render(t.Label)
		} else {
			tabs[i] = s.Muted.Render(t.Label)
		}
	}
	b.WriteString(strings.Join(tabs, "  ") + "\n\n")

	switch {
	case v.Explainability != nil:
		b.WriteString(r.summary(v))
	case v.Details != nil:
		b.WriteString(r.details(*v.Details))
	case v.History != nil:
		b.WriteString(r.history(*v.History))
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) card(title string, lines []string) string {
	body := r.styles.Heading.Render(title)
	if len(lines) > 0 {
		body += "\n" + strings.Join(lines, "\n")
	}
	return r.styles.Card.Render(body) + "\n"
}

func (r *Renderer) summary(v view.DashboardView) string {
	s := r.styles
	var out strings.Builder

	var rows []string
	for _, row := range v.CaseData.Rows {
		rows = append(rows, fmt.Sprintf("%s %s", s.icon(row.Icon), row.Label))
	}
	out.WriteString(r.card(v.CaseData.Title, rows))

	if p := v.Pending; p != nil {
		var lines []string
		for _, it := range p.Items {
			line := fmt.Sprintf("• %s  %s", it.Title, s.Badge.Render(it.Badge))
			if it.Detail != "" {
				line += "\n  " + s.Muted.Render(it.Detail)
			}
			if it.DueDate != "" {
				line += "\n  " + s.Muted.Render(it.DueDate)
			}
			lines = append(lines, line)
		}
		if len(p.Items) == 0 {
			lines = append(lines, s.Muted.Render(p.EmptyMessage))
		}
		out.WriteString(r.card(p.Title, lines))
	}

	out.WriteString(r.tasks(v.Tasks))
	out.WriteString(r.explainability(*v.Explainability))
	return out.String()
}

func (r *Renderer) tasks(t view.TasksCard) string {
	s := r.styles
	var lines []string
	if !t.Closed {
		lines = append(lines, s.Title.Render("Pendientes"))
		for _, task := range t.Pending {
			lines = append(lines, task.Mark+" "+task.Title)
		}
		if t.PendingEmpty != "" {
			lines = append(lines, s.Muted.Render(t.PendingEmpty))
		}
		if len(t.Completed) > 0 {
			lines = append(lines, s.Title.Render(t.CompletedTitle))
		}
	}
	for _, task := range t.VisibleCompleted() {
		lines = append(lines, fmt.Sprintf("%s %s  %s", s.Success.Render(task.Mark), task.Title, s.Muted.Render(task.Timestamp)))
	}
	for _, msg := range []string{t.HistoryEmpty, t.AllEmpty} {
		if msg != "" {
			lines = append(lines, s.Muted.Render(msg))
		}
	}
	return r.card(t.Title, lines)
}

func (r *Renderer) explainability(e view.ExplainabilityView) string {
	s := r.styles
	if e.Message != "" {
		return r.card(e.Title, []string{s.Muted.Render(e.Message)})
	}

	var lines []string
	section := func(title string, open bool) {
		marker := "▸"
		if open {
			marker = "▾"
		}
		lines = append(lines, s.Title.Render(marker+" "+title))
	}

	section("Resumen", e.SummaryOpen)
	if e.SummaryOpen {
		lines = append(lines,
			"  Estado: "+e.StatusLabel,
			"  Última evaluación: "+e.LastEvaluation,
			"  Fuente: "+e.Source,
		)
	}

	section("Validaciones automáticas", e.ValidationsOpen)
	if e.ValidationsOpen {
		for _, v := range e.Validations {
			lines = append(lines, fmt.Sprintf("  %s %s: %s", s.icon(v.Icon), v.Name, v.Message))
			if v.Rule != "" {
				lines = append(lines, "    "+s.Muted.Render("Regla: "+v.Rule), "    "+v.Explanation)
			}
			if v.HasEvidence {
				lines = append(lines, "    "+s.Muted.Render(v.EvidenceField+": "+v.EvidenceValue))
			}
		}
		if e.ValidationsEmpty != "" {
			lines = append(lines, "  "+s.Muted.Render(e.ValidationsEmpty))
		}
	}

	section("Datos detectados (OCR)", e.OCROpen)
	if e.OCROpen {
		for _, f := range e.OCRFields {
			lines = append(lines, "  "+f.Field+": "+f.Value)
		}
		if e.OCREmpty != "" {
			lines = append(lines, "  "+s.Muted.Render(e.OCREmpty))
		}
	}

	if d := e.Decision; d != nil {
		section("Justificación de decisión", e.DecisionOpen)
		if e.DecisionOpen {
			lines = append(lines, "  "+s.icon(d.Icon)+" "+d.Label)
			for _, rule := range d.Rules {
				lines = append(lines, "  - "+rule)
			}
			for _, ev := range d.Evidence {
				lines = append(lines, "  "+s.Muted.Render(ev))
			}
		}
	} else {
		lines = append(lines, s.Warning.Render(e.ManualNotice))
	}
	return r.card(e.Title, lines)
}

func (r *Renderer) details(d view.DetailsView) string {
	s := r.styles
	if d.Message != "" {
		return s.Muted.Render(d.Message) + "\n"
	}

	var list []string
	for _, doc := range d.Documents {
		marker := " "
		if doc.Selected {
			marker = "›"
		}
		list = append(list, fmt.Sprintf("%s %s  %s\n  %s", marker, doc.Name, s.Badge.Render(doc.StatusLabel),
			s.Muted.Render(doc.SourceLabel+" · "+doc.UpdatedAt)))
	}
	left := r.card("Documentos", list)

	var lines []string
	if sel := d.Selected; sel != nil {
		lines = append(lines, s.Muted.Render(sel.SourceLabel))
		for _, f := range sel.Fields {
			lines = append(lines, f.Key+": "+f.Value)
		}
		lines = append(lines, s.Title.Render("Validaciones"))
		for _, v := range sel.Validations {
			lines = append(lines, fmt.Sprintf("%s %s [%s]", s.icon(v.Icon), v.Name, v.ResultLabel))
			lines = append(lines, "  "+s.Muted.Render(v.Rule))
			if v.Evidence != "" {
				lines = append(lines, "  "+v.Evidence)
			}
			if v.Impact != "" {
				lines = append(lines, "  "+s.Muted.Render(v.Impact))
			}
			if v.Expanded {
				lines = append(lines, "  "+v.Details)
			}
		}
		if sel.ValidationsEmpty != "" {
			lines = append(lines, s.Muted.Render(sel.ValidationsEmpty))
		}
	}
	title := ""
	if d.Selected != nil {
		title = d.Selected.FileName
	}
	right := r.card(title, lines)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right) + "\n"
}

func (r *Renderer) history(h view.HistoryView) string {
	s := r.styles
	if h.Message != "" {
		return s.Muted.Render(h.Message) + "\n"
	}

	chips := make([]string, len(h.Filters))
	for i, f := range h.Filters {
		if f.Active {
			chips[i] = s.Active.Render(f.Label)
		} else {
			chips[i] = s.Muted.Render(f.Label)
		}
	}
	lines := []string{strings.Join(chips, "  ")}

	for _, e := range h.Events {
		lines = append(lines, fmt.Sprintf("%s %s  %s  %s",
			s.Muted.Render(e.Date+" "+e.Time), r.category(e.Category, e.Type), e.ActorLabel, e.Summary))
		if e.Expanded {
			lines = append(lines, "    "+e.Details)
			if e.RelatedDocument != "" {
				lines = append(lines, "    "+s.Muted.Render(e.RelatedDocument))
			}
		}
	}
	if h.ShowMore != "" {
		lines = append(lines, s.Muted.Render(h.ShowMore))
	}
	if h.ShowLess != "" {
		lines = append(lines, s.Muted.Render(h.ShowLess))
	}
	return r.card(h.Title, lines)
}

func (r *Renderer) category(c view.EventCategory, text string) string {
	switch c {
	case view.EventApproval:
		return r.styles.Success.Render(text)
	case view.EventRejection:
		return r.styles.Danger.Render(text)
	case view.EventStatusChange, view.EventValidation:
		return r.styles.Warning.Render(text)
	case view.EventDocument, view.EventOCR:
		return r.styles.Heading.Render(text)
	default:
		return text
	}
}
