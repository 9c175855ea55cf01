package view

import (
	"strconv"
	"time"

	"casedesk/internal/cases/models"
)

// CheckRow is one line of the case data card.
type CheckRow struct {
	Label  string
	Result models.CheckResult
	Icon   string
}

// CaseDataCard shows the three headline checks of a case.
type CaseDataCard struct {
	Title string
	Rows  []CheckRow
}

// Shown when a case carries no check results.
var defaultCaseData = models.CaseData{
	IdentityValidation: models.ResultPass,
	FundsOrigin:        models.ResultWarn,
	RiskMatrix:         models.ResultPass,
}

// NewCaseDataCard builds the card. A nil data shows the defaults.
func NewCaseDataCard(data *models.CaseData) CaseDataCard {
	d := defaultCaseData
	if data != nil {
		d = *data
	}
	row := func(label string, r models.CheckResult) CheckRow {
		return CheckRow{Label: label, Result: r, Icon: verdictIcon(r)}
	}
	return CaseDataCard{
		Title: "Datos del caso",
		Rows: []CheckRow{
			row("Validación de identidad", d.IdentityValidation),
			row("Origen de fondos", d.FundsOrigin),
			row("Matriz de riesgo", d.RiskMatrix),
		},
	}
}

// PendingKind tells where a pending item came from.
type PendingKind string

const (
	PendingRequirementKind PendingKind = "requirement"
	PendingValidationKind  PendingKind = "validation"
)

// PendingEntry is one merged pending item.
type PendingEntry struct {
	ID       string
	Kind     PendingKind
	Title    string
	Detail   string
	DueDate  string
	Severity models.Severity
	Icon     PendingIcon
	Badge    string
}

// PendingCard lists outstanding requirements followed by validation issues.
type PendingCard struct {
	Title        string
	Items        []PendingEntry
	EmptyMessage string
}

// NewPendingCard merges requirements and issues, requirements first.
func NewPendingCard(reqs []models.PendingRequirement, issues []models.ValidationIssue, loc *time.Location) PendingCard {
	items := make([]PendingEntry, 0, len(reqs)+len(issues))
	for _, r := range reqs {
		entry := PendingEntry{
			ID:     r.ID,
			Kind:   PendingRequirementKind,
			Title:  r.DocType,
			Detail: r.Reason,
			Icon:   DocTypeIcon(r.DocType),
			Badge:  "Pendiente",
		}
		if r.DueDate != "" {
			entry.DueDate = "Vence: " + FormatDueDate(r.DueDate, loc)
		}
		items = append(items, entry)
	}
	for _, i := range issues {
		items = append(items, PendingEntry{
			ID:       i.ID,
			Kind:     PendingValidationKind,
			Title:    i.RuleName,
			Detail:   i.Message,
			Severity: i.Severity,
			Icon:     SeverityIcon(string(i.Severity)),
			Badge:    "Pendiente",
		})
	}

	title := "Pendientes"
	if len(items) > 0 {
		title += " (" + strconv.Itoa(len(items)) + ")"
	}
	return PendingCard{Title: title, Items: items, EmptyMessage: "Sin pendientes"}
}

// TaskEntry is one rendered task.
type TaskEntry struct {
	ID        string
	Title     string
	Done      bool
	Mark      string
	Timestamp string
}

// TasksCard partitions the task history of a case.
type TasksCard struct {
	Title  string
	Closed bool
	// Pending is never shown for closed cases.
	Pending           []TaskEntry
	Completed         []TaskEntry
	CompletedTitle    string
	CompletedExpanded bool
	// Empty messages that apply, in display order.
	HistoryEmpty string
	PendingEmpty string
	AllEmpty     string
}

// NewTasksCard builds the card for a case whose status label is statusLabel.
func NewTasksCard(statusLabel string, tasks []models.Task, completedExpanded bool, loc *time.Location) TasksCard {
	closed := models.IsClosedLabel(statusLabel)
	card := TasksCard{
		Title:             "Tareas",
		Closed:            closed,
		CompletedExpanded: completedExpanded,
	}
	if closed {
		card.Title = "Historial de tareas"
	}

	for _, t := range tasks {
		if t.Status == models.TaskDone {
			card.Completed = append(card.Completed, TaskEntry{
				ID:        t.ID,
				Title:     t.Title,
				Done:      true,
				Mark:      "✓",
				Timestamp: FormatDateTime(t.Timestamp, loc),
			})
			continue
		}
		card.Pending = append(card.Pending, TaskEntry{ID: t.ID, Title: t.Title, Mark: "○"})
	}
	card.CompletedTitle = "Completadas (" + strconv.Itoa(len(card.Completed)) + ")"

	if closed {
		card.Pending = nil
		if len(card.Completed) == 0 {
			card.HistoryEmpty = "No hay tareas en el historial"
		}
		return card
	}
	if len(card.Pending) == 0 {
		card.PendingEmpty = "No hay tareas pendientes"
	}
	if len(tasks) == 0 {
		card.AllEmpty = "No hay tareas disponibles"
	}
	return card
}

// VisibleCompleted returns the completed tasks currently on screen.
func (c TasksCard) VisibleCompleted() []TaskEntry {
	if c.Closed || c.CompletedExpanded {
		return c.Completed
	}
	return nil
}
