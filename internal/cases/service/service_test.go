package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"casedesk/internal/cases/fixtures"
	"casedesk/internal/cases/models"
	dErrors "casedesk/pkg/domain-errors"
)

type ServiceSuite struct {
	suite.Suite
	svc *Service
	ctx context.Context
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	store, err := fixtures.Load(s.ctx, fixtures.EmbeddedSource{})
	s.Require().NoError(err)
	s.svc = New(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestListCases() {
	cases := s.svc.ListCases(s.ctx)
	s.Len(cases, 5)
	s.Equal(models.Case{ID: "1001", Name: "Juan Pérez", Status: models.CaseStatusInReview}, cases[0])
}

func (s *ServiceSuite) TestGetCaseBundle() {
	s.Run("known case carries labelled status and detail lists", func() {
		bundle, err := s.svc.GetCaseBundle(s.ctx, "1001")
		s.Require().NoError(err)
		s.Equal("En revisión", bundle.Status)
		s.Equal("Juan Pérez", bundle.Case.Name)
		s.Require().NotNil(bundle.CaseData)
		s.Len(bundle.Tasks, 4)
		s.Len(bundle.PendingRequirements, 2)
		s.Len(bundle.ValidationIssues, 2)
	})

	s.Run("case without detail has empty lists", func() {
		bundle, err := s.svc.GetCaseBundle(s.ctx, "1005")
		s.Require().NoError(err)
		s.Equal("Pendiente", bundle.Status)
		s.Nil(bundle.CaseData)
		s.NotNil(bundle.Tasks)
		s.Empty(bundle.Tasks)
		s.NotNil(bundle.PendingItems)
		s.NotNil(bundle.PendingRequirements)
		s.NotNil(bundle.ValidationIssues)
	})

	s.Run("unknown case is a not-found error", func() {
		_, err := s.svc.GetCaseBundle(s.ctx, "9999")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.Equal("Case not found", err.Error())
	})
}

func (s *ServiceSuite) TestCollectionsForUnknownCaseAreEmpty() {
	for _, id := range []string{"9999", "1005"} {
		s.NotNil(s.svc.Documents(s.ctx, id))
		s.Empty(s.svc.Documents(s.ctx, id))
		s.NotNil(s.svc.AuditEvents(s.ctx, id))
		s.Empty(s.svc.AuditEvents(s.ctx, id))
		s.Empty(s.svc.Tasks(s.ctx, id))
		s.Empty(s.svc.PendingItems(s.ctx, id))
		s.Empty(s.svc.PendingRequirements(s.ctx, id))
		s.Empty(s.svc.ValidationIssues(s.ctx, id))
	}
}

func (s *ServiceSuite) TestCollectionsForKnownCase() {
	s.Len(s.svc.Documents(s.ctx, "1001"), 2)
	s.Len(s.svc.AuditEvents(s.ctx, "1001"), 5)
	s.Len(s.svc.Documents(s.ctx, "1002"), 1)
	s.Empty(s.svc.Documents(s.ctx, "1003"))
}

func TestGetExplainability(t *testing.T) {
	ctx := context.Background()
	store, err := fixtures.Load(ctx, fixtures.EmbeddedSource{})
	require.NoError(t, err)
	svc := New(store, nil)

	t.Run("manual decision case has no auto decision", func(t *testing.T) {
		data, err := svc.GetExplainability(ctx, "1001")
		require.NoError(t, err)
		assert.Nil(t, data.AutoDecision)
		assert.Equal(t, "1001", data.CaseID)
		assert.Equal(t, models.ExplainabilityReviewRequired, data.Status)
		assert.Equal(t, models.SourceOCR, data.Source)
		assert.Len(t, data.Validations, 3)
		assert.Len(t, data.OCRFields, 3)
		assert.NotNil(t, data.Flags)
		assert.Empty(t, data.Flags)
		for _, v := range data.Validations {
			assert.NotEmpty(t, v.Rule)
			assert.NotNil(t, v.Evidence)
		}
		for _, f := range data.OCRFields {
			assert.Zero(t, f.Confidence)
		}
	})

	t.Run("approved case auto approves", func(t *testing.T) {
		data, err := svc.GetExplainability(ctx, "1002")
		require.NoError(t, err)
		require.NotNil(t, data.AutoDecision)
		assert.Equal(t, models.DecisionApproved, data.AutoDecision.Decision)
		assert.Len(t, data.AutoDecision.Rules, len(data.Validations))
	})

	t.Run("rejected case auto rejects", func(t *testing.T) {
		data, err := svc.GetExplainability(ctx, "1003")
		require.NoError(t, err)
		require.NotNil(t, data.AutoDecision)
		assert.Equal(t, models.DecisionRejected, data.AutoDecision.Decision)
	})

	t.Run("case without detail is not found", func(t *testing.T) {
		_, err := svc.GetExplainability(ctx, "1005")
		assert.ErrorIs(t, err, ErrCaseNotFound)
	})

	t.Run("unknown case is not found", func(t *testing.T) {
		_, err := svc.GetExplainability(ctx, "nope")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func TestDeriveAutoDecisionEvidence(t *testing.T) {
	view := &CaseView{Case: models.Case{Status: models.CaseStatusPending}}
	got := deriveAutoDecision(view,
		[]models.Validation{{Rule: "r1"}, {Rule: "r2"}},
		[]models.OCRRecord{{Field: "dni", Value: "123"}},
	)
	require.NotNil(t, got)
	assert.Equal(t, models.DecisionRejected, got.Decision)
	assert.Equal(t, []string{"r1", "r2"}, got.Rules)
	assert.Equal(t, []string{"dni: 123"}, got.Evidence)
}
