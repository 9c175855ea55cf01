// Package service maps fixture records into the view-model records served by
// the case endpoints. Lookups for unknown identifiers never fail loudly:
// collections come back empty and single-record lookups return a not-found
// domain error the transport turns into a 404.
package service

import (
	"context"
	"log/slog"

	"casedesk/internal/cases/fixtures"
	"casedesk/internal/cases/models"
	dErrors "casedesk/pkg/domain-errors"
)

// ErrCaseNotFound is returned for unknown case identifiers and for
// explainability requests on cases without detail.
var ErrCaseNotFound = dErrors.New(dErrors.CodeNotFound, "Case not found")

// Store is the read side of the fixture store.
type Store interface {
	Cases() []models.CaseRecord
	Case(caseID string) (models.CaseRecord, error)
	Detail(caseID string) (*models.CaseDetail, error)
}

var _ Store = (*fixtures.Store)(nil)

// Service is the data access layer.
type Service struct {
	store  Store
	logger *slog.Logger
}

// New constructs the service.
func New(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// CaseView is a case joined with its optional detail.
type CaseView struct {
	Case                   models.Case
	StatusLabel            string
	CaseData               *models.CaseData
	Detail                 *models.CaseDetail
	RequiresManualDecision bool
}

// ListCases returns every case.
func (s *Service) ListCases(_ context.Context) []models.Case {
	records := s.store.Cases()
	out := make([]models.Case, len(records))
	for i, rec := range records {
		out[i] = rec.Case()
	}
	return out
}

// GetCase returns the case with its detail, or ErrCaseNotFound. A missing
// detail is not an error: Detail is nil.
func (s *Service) GetCase(ctx context.Context, caseID string) (*CaseView, error) {
	rec, err := s.store.Case(caseID)
	if err != nil {
		return nil, ErrCaseNotFound
	}
	detail, err := s.store.Detail(caseID)
	if err != nil && s.logger != nil {
		s.logger.DebugContext(ctx, "case has no detail record", "case_id", caseID)
	}
	return &CaseView{
		Case:                   rec.Case(),
		StatusLabel:            rec.Status.Label(),
		CaseData:               rec.CaseData,
		Detail:                 detail,
		RequiresManualDecision: rec.RequiresManualDecision,
	}, nil
}

// GetCaseBundle builds the body of GET /cases/{caseId}.
func (s *Service) GetCaseBundle(ctx context.Context, caseID string) (*models.CaseBundle, error) {
	view, err := s.GetCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	return &models.CaseBundle{
		Case:                view.Case,
		Status:              view.StatusLabel,
		CaseData:            view.CaseData,
		PendingItems:        orEmpty(detailField(view.Detail, func(d *models.CaseDetail) []models.PendingItem { return d.PendingItems })),
		Tasks:               orEmpty(detailField(view.Detail, func(d *models.CaseDetail) []models.Task { return d.Tasks })),
		PendingRequirements: orEmpty(detailField(view.Detail, func(d *models.CaseDetail) []models.PendingRequirement { return d.PendingRequirements })),
		ValidationIssues:    orEmpty(detailField(view.Detail, func(d *models.CaseDetail) []models.ValidationIssue { return d.ValidationIssues })),
	}, nil
}

// PendingItems returns the legacy pending entries of a case.
func (s *Service) PendingItems(ctx context.Context, caseID string) []models.PendingItem {
	return collect(s, ctx, caseID, func(d *models.CaseDetail) []models.PendingItem { return d.PendingItems })
}

// Tasks returns the task history of a case.
func (s *Service) Tasks(ctx context.Context, caseID string) []models.Task {
	return collect(s, ctx, caseID, func(d *models.CaseDetail) []models.Task { return d.Tasks })
}

// Documents returns the documents of a case.
func (s *Service) Documents(ctx context.Context, caseID string) []models.Document {
	return collect(s, ctx, caseID, func(d *models.CaseDetail) []models.Document { return d.Documents })
}

// AuditEvents returns the audit events of a case in fixture order.
func (s *Service) AuditEvents(ctx context.Context, caseID string) []models.AuditEvent {
	return collect(s, ctx, caseID, func(d *models.CaseDetail) []models.AuditEvent { return d.AuditEvents })
}

// PendingRequirements returns the outstanding document requirements.
func (s *Service) PendingRequirements(ctx context.Context, caseID string) []models.PendingRequirement {
	return collect(s, ctx, caseID, func(d *models.CaseDetail) []models.PendingRequirement { return d.PendingRequirements })
}

// ValidationIssues returns the open validation findings.
func (s *Service) ValidationIssues(ctx context.Context, caseID string) []models.ValidationIssue {
	return collect(s, ctx, caseID, func(d *models.CaseDetail) []models.ValidationIssue { return d.ValidationIssues })
}

func collect[T any](s *Service, ctx context.Context, caseID string, field func(*models.CaseDetail) []T) []T {
	view, err := s.GetCase(ctx, caseID)
	if err != nil {
		return []T{}
	}
	return orEmpty(detailField(view.Detail, field))
}

func detailField[T any](d *models.CaseDetail, field func(*models.CaseDetail) []T) []T {
	if d == nil {
		return nil
	}
	return field(d)
}

func orEmpty[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
