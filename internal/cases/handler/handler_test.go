package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"casedesk/internal/cases/fixtures"
	"casedesk/internal/cases/models"
	"casedesk/internal/cases/service"
	"casedesk/internal/platform/config"
	"casedesk/internal/platform/logger"
	"casedesk/pkg/testutil"
)

// HandlerSuite drives the real router over the embedded fixtures.
type HandlerSuite struct {
	suite.Suite
	router http.Handler
}

func newRouter(t *testing.T, delays config.Delays) http.Handler {
	t.Helper()
	store, err := fixtures.Load(context.Background(), fixtures.EmbeddedSource{})
	require.NoError(t, err)

	h := New(service.New(store, logger.Discard()), logger.Discard(), delays)
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func (s *HandlerSuite) SetupTest() {
	s.router = newRouter(s.T(), config.Delays{})
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) get(path string) *httptest.ResponseRecorder {
	return testutil.DoRequest(s.router, testutil.Get(s.T(), path))
}

func (s *HandlerSuite) TestListCases() {
	rr := s.get("/cases")
	testutil.AssertStatusOK(s.T(), rr)
	assert.Equal(s.T(), "application/json", rr.Header().Get("Content-Type"))

	cases := testutil.UnmarshalResponse[[]models.Case](s.T(), rr)
	s.Len(cases, 5)
	s.Equal("1001", cases[0].ID)
}

func (s *HandlerSuite) TestGetCase() {
	s.Run("known case", func() {
		rr := s.get("/cases/1002")
		testutil.AssertStatusOK(s.T(), rr)

		bundle := testutil.UnmarshalResponse[models.CaseBundle](s.T(), rr)
		s.Equal("María González", bundle.Case.Name)
		s.Equal("Aprobado", bundle.Status)
		s.Require().NotNil(bundle.CaseData)
		s.Equal(models.ResultPass, bundle.CaseData.IdentityValidation)
	})

	s.Run("case without detail has empty collections", func() {
		rr := s.get("/cases/1005")
		testutil.AssertStatusOK(s.T(), rr)
		assert.JSONEq(s.T(),
			`{"case":{"id":"1005","name":"Pedro Ramírez","status":"PENDIENTE"},"status":"Pendiente","pendingItems":[],"tasks":[],"pendingRequirements":[],"validationIssues":[]}`,
			rr.Body.String())
	})

	s.Run("unknown case is 404", func() {
		rr := s.get("/cases/9999")
		testutil.AssertStatus(s.T(), rr, http.StatusNotFound)
		testutil.AssertErrorMessage(s.T(), rr, "Case not found")
	})
}

func (s *HandlerSuite) TestGetExplainability() {
	s.Run("auto decision serialises as null for manual cases", func() {
		rr := s.get("/cases/1001/explainability")
		testutil.AssertStatusOK(s.T(), rr)

		body := testutil.UnmarshalResponse[map[string]any](s.T(), rr)
		s.Contains(body, "autoDecision")
		s.Nil(body["autoDecision"])
		s.Equal("REVIEW_REQUIRED", body["status"])
	})

	s.Run("approved case carries decision", func() {
		rr := s.get("/cases/1002/explainability")
		data := testutil.UnmarshalResponse[models.ExplainabilityData](s.T(), rr)
		s.Require().NotNil(data.AutoDecision)
		s.Equal(models.DecisionApproved, data.AutoDecision.Decision)
	})

	for _, id := range []string{"9999", "1005"} {
		s.Run("missing explainability for "+id, func() {
			rr := s.get("/cases/" + id + "/explainability")
			testutil.AssertStatus(s.T(), rr, http.StatusNotFound)
			testutil.AssertErrorMessage(s.T(), rr, "Case not found")
		})
	}
}

func (s *HandlerSuite) TestDocumentsAndAudit() {
	s.Run("documents for a known case", func() {
		rr := s.get("/cases/1001/documents")
		testutil.AssertStatusOK(s.T(), rr)
		docs := testutil.UnmarshalResponse[[]models.Document](s.T(), rr)
		s.Len(docs, 2)
	})

	s.Run("audit for a known case", func() {
		rr := s.get("/cases/1001/audit")
		testutil.AssertStatusOK(s.T(), rr)
		events := testutil.UnmarshalResponse[[]models.AuditEvent](s.T(), rr)
		s.Len(events, 5)
	})

	for _, path := range []string{"/cases/9999/documents", "/cases/9999/audit", "/cases/1003/documents"} {
		s.Run("empty list for "+path, func() {
			rr := s.get(path)
			testutil.AssertStatusOK(s.T(), rr)
			testutil.AssertEmptyJSONArray(s.T(), rr)
		})
	}
}

func TestSimulatedLatency(t *testing.T) {
	testutil.Given(t, "a router with a case delay", func(t *testing.T) {
		router := newRouter(t, config.Delays{Case: 50 * time.Millisecond})

		testutil.When(t, "the request completes", func(t *testing.T) {
			start := time.Now()
			rr := testutil.DoRequest(router, testutil.Get(t, "/cases/1001"))

			testutil.Then(t, "the response arrives after the delay", func(t *testing.T) {
				testutil.AssertStatusOK(t, rr)
				assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
			})
		})

		testutil.When(t, "the caller goes away during the delay", func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			req := testutil.Get(t, "/cases/1001").WithContext(ctx)
			cancel()
			rr := testutil.DoRequest(router, req)

			testutil.Then(t, "nothing is written", func(t *testing.T) {
				assert.Empty(t, rr.Body.String())
			})
		})
	})
}
