package view

import (
	"context"
	"errors"
	"slices"
	"sync"

	"casedesk/internal/cases/models"
	"casedesk/internal/dashboard/client"
)

const componentDocuments = "documents"

// DetailsTab lists the documents of a case and details the selected one.
// Every fetch failure degrades to an empty list.
type DetailsTab struct {
	env    Env
	caseID string
	loader *Loader[[]models.Document]

	mu                 sync.Mutex
	selectedID         string
	expandedValidation string
}

// NewDetailsTab builds the tab.
func NewDetailsTab(env Env, caseID string) *DetailsTab {
	t := &DetailsTab{
		env:    env,
		caseID: caseID,
		loader: newLoader[[]models.Document](componentDocuments, env),
	}
	t.loader.OnApply(func(docs []models.Document, err error) {
		t.env.record(componentDocuments, fetchOutcome(err, len(docs) == 0))
		if err != nil && !errors.Is(err, client.ErrNotFound) {
			t.env.logger().Warn("documents fetch failed", "case_id", caseID, "error", err)
		}
	})
	return t
}

// Mount starts the fetch.
func (t *DetailsTab) Mount(ctx context.Context) {
	t.loader.Mount(ctx, func(ctx context.Context) ([]models.Document, error) {
		return t.env.Fetcher.ListDocuments(ctx, t.caseID)
	})
}

// Unmount cancels the fetch in flight.
func (t *DetailsTab) Unmount() { t.loader.Unmount() }

// Wait blocks until the fetch settled.
func (t *DetailsTab) Wait(ctx context.Context) error { return t.loader.Wait(ctx) }

// SelectDocument swaps the detail panel to docID. Unknown ids fall back to
// the first document.
func (t *DetailsTab) SelectDocument(docID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selectedID = docID
}

// ToggleValidation expands validationID, or collapses it if it is already
// the expanded one.
func (t *DetailsTab) ToggleValidation(validationID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.expandedValidation == validationID {
		t.expandedValidation = ""
		return
	}
	t.expandedValidation = validationID
}

// DocumentListItem is one entry of the document list.
type DocumentListItem struct {
	ID          string
	Name        string
	Status      models.DocumentStatus
	StatusLabel string
	SourceLabel string
	UpdatedAt   string
	Selected    bool
}

// FieldRow is one extracted field.
type FieldRow struct {
	Key   string
	Value string
}

// DocumentValidationView is one validation of the selected document.
type DocumentValidationView struct {
	ID          string
	Name        string
	Result      models.DocumentCheckResult
	ResultLabel string
	Icon        string
	Rule        string
	Evidence    string
	Impact      string
	Details     string
	Expanded    bool
}

// DocumentView is the detail panel of the selected document.
type DocumentView struct {
	ID               string
	FileName         string
	SourceLabel      string
	Fields           []FieldRow
	Validations      []DocumentValidationView
	ValidationsEmpty string
}

// DetailsView is the renderable state of the tab.
type DetailsView struct {
	Loading   bool
	Message   string
	Documents []DocumentListItem
	Selected  *DocumentView
}

// View renders the current state.
func (t *DetailsTab) View() DetailsView {
	state, docs, _ := t.loader.Snapshot()
	if state == StateLoading || state == StateIdle {
		return DetailsView{Loading: true, Message: "Cargando documentos..."}
	}
	if len(docs) == 0 {
		return DetailsView{Message: "No hay documentos disponibles para este caso."}
	}

	t.mu.Lock()
	selectedID, expanded := t.selectedID, t.expandedValidation
	t.mu.Unlock()

	idx := slices.IndexFunc(docs, func(d models.Document) bool { return d.ID == selectedID })
	if idx < 0 {
		idx = 0
	}

	loc := t.env.location()
	v := DetailsView{Documents: make([]DocumentListItem, len(docs))}
	for i, d := range docs {
		v.Documents[i] = DocumentListItem{
			ID:          d.ID,
			Name:        d.Name,
			Status:      d.Status,
			StatusLabel: DocumentStatusLabel(d.Status),
			SourceLabel: SourceLabel(d.Source),
			UpdatedAt:   FormatDateTime(d.UpdatedAt, loc),
			Selected:    i == idx,
		}
	}
	v.Selected = documentView(docs[idx], expanded)
	return v
}

func documentView(d models.Document, expandedValidation string) *DocumentView {
	view := &DocumentView{
		ID:          d.ID,
		FileName:    d.FileName,
		SourceLabel: SourceLabel(d.Source),
	}

	keys := make([]string, 0, len(d.ExtractedFields))
	for k := range d.ExtractedFields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		view.Fields = append(view.Fields, FieldRow{Key: k, Value: d.ExtractedFields[k]})
	}

	for _, val := range d.Validations {
		view.Validations = append(view.Validations, DocumentValidationView{
			ID:          val.ID,
			Name:        val.Name,
			Result:      val.Result,
			ResultLabel: DocumentResultLabel(val.Result),
			Icon:        DocumentResultIcon(val.Result),
			Rule:        val.Rule,
			Evidence:    val.Evidence,
			Impact:      val.Impact,
			Details:     val.Details,
			Expanded:    val.Details != "" && val.ID == expandedValidation,
		})
	}
	if len(view.Validations) == 0 {
		view.ValidationsEmpty = "No hay validaciones para este documento."
	}
	return view
}
