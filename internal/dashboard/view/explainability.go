package view

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"casedesk/internal/cases/models"
	"casedesk/internal/dashboard/client"
	"casedesk/internal/platform/metrics"
)

const componentExplainability = "explainability"

// CardState is the display state of a fetching card.
type CardState int

const (
	CardLoading CardState = iota
	CardError
	CardEmpty
	CardLoaded
)

// Section is a collapsible part of the explainability card.
type Section string

const (
	SectionSummary     Section = "summary"
	SectionValidations Section = "validations"
	SectionOCR         Section = "ocr"
	SectionDecision    Section = "decision"
)

// ParseSection accepts the section keys used in URLs and flags.
func ParseSection(s string) (Section, bool) {
	switch sec := Section(strings.ToLower(strings.TrimSpace(s))); sec {
	case SectionSummary, SectionValidations, SectionOCR, SectionDecision:
		return sec, true
	}
	return "", false
}

const (
	explainabilityTitle = "Criterios y validaciones utilizadas"
	manualDecisionText  = "Este caso requiere decisión manual del analista."
	explainabilityFetch = "Error al cargar los datos"

	// CopyConfirmation is shown after the summary reached the clipboard.
	CopyConfirmation = "Resumen copiado al portapapeles"
)

// ErrNoSummary is returned by CopySummary while there is no loaded data.
var ErrNoSummary = errors.New("no explainability data to summarise")

// Clipboard receives copied text.
type Clipboard interface {
	WriteAll(text string) error
}

// ExplainabilityCard shows the explainability aggregate of one case.
type ExplainabilityCard struct {
	env    Env
	caseID string
	loader *Loader[*models.ExplainabilityData]

	mu       sync.Mutex
	expanded map[Section]bool
}

// NewExplainabilityCard builds the card with only the summary expanded.
func NewExplainabilityCard(env Env, caseID string) *ExplainabilityCard {
	c := &ExplainabilityCard{
		env:      env,
		caseID:   caseID,
		loader:   newLoader[*models.ExplainabilityData](componentExplainability, env),
		expanded: map[Section]bool{SectionSummary: true},
	}
	c.loader.OnApply(func(data *models.ExplainabilityData, err error) {
		c.env.record(componentExplainability, fetchOutcome(err, data == nil))
		if err != nil && !errors.Is(err, client.ErrNotFound) {
			c.env.logger().Warn("explainability fetch failed", "case_id", caseID, "error", err)
		}
	})
	return c
}

// Mount starts the fetch.
func (c *ExplainabilityCard) Mount(ctx context.Context) {
	c.loader.Mount(ctx, func(ctx context.Context) (*models.ExplainabilityData, error) {
		return c.env.Fetcher.GetExplainability(ctx, c.caseID)
	})
}

// Unmount cancels the fetch in flight.
func (c *ExplainabilityCard) Unmount() { c.loader.Unmount() }

// Wait blocks until the fetch settled.
func (c *ExplainabilityCard) Wait(ctx context.Context) error { return c.loader.Wait(ctx) }

// State maps the fetch result to a display state. A 404 is "no data", not an
// error.
func (c *ExplainabilityCard) State() CardState {
	state, data, err := c.loader.Snapshot()
	switch state {
	case StateLoaded:
		if data == nil {
			return CardEmpty
		}
		return CardLoaded
	case StateFailed:
		if errors.Is(err, client.ErrNotFound) {
			return CardEmpty
		}
		return CardError
	default:
		return CardLoading
	}
}

// Toggle flips one section.
func (c *ExplainabilityCard) Toggle(s Section) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expanded[s] = !c.expanded[s]
}

// SetExpanded replaces the expanded set.
func (c *ExplainabilityCard) SetExpanded(sections ...Section) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expanded = make(map[Section]bool, len(sections))
	for _, s := range sections {
		c.expanded[s] = true
	}
}

// IsExpanded reports whether s is open.
func (c *ExplainabilityCard) IsExpanded(s Section) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expanded[s]
}

// ValidationLine is a rendered automatic validation.
type ValidationLine struct {
	ID            string
	Name          string
	Result        models.CheckResult
	Icon          string
	Message       string
	Rule          string
	Explanation   string
	HasEvidence   bool
	EvidenceField string
	EvidenceValue string
}

// OCRLine is a rendered OCR field.
type OCRLine struct {
	Field string
	Value string
}

// DecisionView is the auto-decision section.
type DecisionView struct {
	Decision models.Decision
	Label    string
	Icon     string
	Rules    []string
	Evidence []string
}

// ExplainabilityView is the renderable state of the card.
type ExplainabilityView struct {
	Title   string
	State   CardState
	Message string

	StatusLabel    string
	Status         models.ExplainabilityStatus
	LastEvaluation string
	Source         string

	SummaryOpen     bool
	ValidationsOpen bool
	OCROpen         bool
	DecisionOpen    bool

	Validations      []ValidationLine
	ValidationsEmpty string
	OCRFields        []OCRLine
	OCREmpty         string

	Decision     *DecisionView
	ManualNotice string
}

// View renders the current state.
func (c *ExplainabilityCard) View() ExplainabilityView {
	v := ExplainabilityView{Title: explainabilityTitle, State: c.State()}
	_, data, err := c.loader.Snapshot()

	switch v.State {
	case CardLoading:
		v.Message = "Cargando..."
		return v
	case CardError:
		v.Message = "Error: " + errorMessage(err, explainabilityFetch)
		return v
	case CardEmpty:
		v.Message = "No hay validaciones disponibles para este caso."
		return v
	}

	loc := c.env.location()
	v.Status = data.Status
	v.StatusLabel = ExplainabilityStatusLabel(data.Status)
	v.LastEvaluation = FormatLongDateTime(data.LastEvaluationAt, loc)
	v.Source = string(data.Source)

	c.mu.Lock()
	v.SummaryOpen = c.expanded[SectionSummary]
	v.ValidationsOpen = c.expanded[SectionValidations]
	v.OCROpen = c.expanded[SectionOCR]
	v.DecisionOpen = c.expanded[SectionDecision]
	c.mu.Unlock()

	for _, val := range data.Validations {
		line := ValidationLine{
			ID:      val.ID,
			Name:    val.Name,
			Result:  val.Result,
			Icon:    ResultIcon(val.Result),
			Message: val.Message,
			Rule:    val.Rule,
		}
		if val.Rule != "" {
			line.Explanation = RuleExplanation(val.Rule, val.Result)
		}
		if val.Evidence != nil {
			line.HasEvidence = true
			line.EvidenceField = val.Evidence.Field
			line.EvidenceValue = val.Evidence.Value
		}
		v.Validations = append(v.Validations, line)
	}
	if len(v.Validations) == 0 {
		v.ValidationsEmpty = "No hay validaciones disponibles."
	}

	for _, f := range data.OCRFields {
		v.OCRFields = append(v.OCRFields, OCRLine{Field: f.Field, Value: f.Value})
	}
	if len(v.OCRFields) == 0 {
		v.OCREmpty = "No hay datos OCR disponibles."
	}

	if d := data.AutoDecision; d != nil {
		v.Decision = &DecisionView{
			Decision: d.Decision,
			Label:    "Rechazado",
			Icon:     "✗",
			Rules:    d.Rules,
			Evidence: d.Evidence,
		}
		if d.Decision == models.DecisionApproved {
			v.Decision.Label = "Aprobado"
			v.Decision.Icon = "✓"
		}
	} else {
		v.ManualNotice = manualDecisionText
	}
	return v
}

// Summary serialises the loaded data as the audit summary text.
func (c *ExplainabilityCard) Summary() (string, error) {
	if c.State() != CardLoaded {
		return "", ErrNoSummary
	}
	_, data, _ := c.loader.Snapshot()
	return FormatSummary(data, c.env.location()), nil
}

// CopySummary writes the summary to clip and returns the confirmation text.
func (c *ExplainabilityCard) CopySummary(clip Clipboard) (string, error) {
	text, err := c.Summary()
	if err != nil {
		return "", err
	}
	if err := clip.WriteAll(text); err != nil {
		return "", fmt.Errorf("write clipboard: %w", err)
	}
	return CopyConfirmation, nil
}

// FormatSummary builds the plain-text audit summary of data.
func FormatSummary(data *models.ExplainabilityData, loc *time.Location) string {
	var b strings.Builder
	b.WriteString("RESUMEN DE CRITERIOS Y VALIDACIONES\n")
	fmt.Fprintf(&b, "Caso: %s\n", data.CaseID)
	fmt.Fprintf(&b, "Estado: %s\n", ExplainabilityStatusLabel(data.Status))
	fmt.Fprintf(&b, "Última evaluación: %s\n", FormatLongDateTime(data.LastEvaluationAt, loc))
	fmt.Fprintf(&b, "Fuente: %s\n", data.Source)
	b.WriteString("\nVALIDACIONES AUTOMÁTICAS:\n")

	lines := make([]string, len(data.Validations))
	for i, v := range data.Validations {
		line := fmt.Sprintf("- %s: %s %s", v.Name, verdictIcon(v.Result), v.Message)
		if v.Rule != "" {
			line += fmt.Sprintf(" (Regla: %s)", v.Rule)
		}
		lines[i] = line
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")

	if d := data.AutoDecision; d != nil {
		fmt.Fprintf(&b, "DECISIÓN AUTOMÁTICA: %s\nReglas disparadas:\n", d.Decision)
		rules := make([]string, len(d.Rules))
		for i, r := range d.Rules {
			rules[i] = "- " + r
		}
		b.WriteString(strings.Join(rules, "\n"))
	} else {
		b.WriteString(manualDecisionText)
	}
	b.WriteString("\n")
	return b.String()
}

// fetchOutcome classifies a settled fetch for metrics.
func fetchOutcome(err error, empty bool) string {
	switch {
	case errors.Is(err, client.ErrNotFound):
		return metrics.OutcomeEmpty
	case err != nil:
		return metrics.OutcomeError
	case empty:
		return metrics.OutcomeEmpty
	default:
		return metrics.OutcomeLoaded
	}
}

// errorMessage is the text shown after "Error: ". HTTP status failures show
// the component's generic message; other failures show their own text.
func errorMessage(err error, statusMessage string) string {
	if client.IsStatus(err) {
		return statusMessage
	}
	return err.Error()
}
