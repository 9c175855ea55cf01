package view

import (
	"context"

	"casedesk/internal/cases/models"
)

//go:generate mockgen -source=fetcher.go -destination=mocks/fetcher_mock.go -package=mocks

// CaseFetcher is the data source of every fetching component.
type CaseFetcher interface {
	ListCases(ctx context.Context) ([]models.Case, error)
	GetCase(ctx context.Context, caseID string) (*models.CaseBundle, error)
	GetExplainability(ctx context.Context, caseID string) (*models.ExplainabilityData, error)
	ListDocuments(ctx context.Context, caseID string) ([]models.Document, error)
	ListAuditEvents(ctx context.Context, caseID string) ([]models.AuditEvent, error)
}
