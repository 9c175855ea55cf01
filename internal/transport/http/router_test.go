package httptransport

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"casedesk/internal/cases/fixtures"
	"casedesk/internal/cases/handler"
	"casedesk/internal/cases/service"
	"casedesk/internal/platform/config"
	"casedesk/internal/platform/logger"
	"casedesk/internal/platform/metrics"
	"casedesk/internal/platform/middleware"
	"casedesk/pkg/testutil"
)

type stubHealth struct{ err error }

func (s stubHealth) Health(context.Context) error { return s.err }

type RouterSuite struct {
	suite.Suite
	store   *fixtures.Store
	metrics *metrics.Metrics
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	store, err := fixtures.Load(context.Background(), fixtures.EmbeddedSource{})
	s.Require().NoError(err)
	s.store = store
	s.metrics = metrics.New()
}

func (s *RouterSuite) router(redis HealthChecker) http.Handler {
	return s.routerWith(redis, nil)
}

func (s *RouterSuite) routerWith(redis, postgres HealthChecker) http.Handler {
	log := logger.Discard()
	return NewRouter(Deps{
		Cases:    handler.New(service.New(s.store, log), log, config.Delays{}),
		Fixtures: s.store,
		Redis:    redis,
		Postgres: postgres,
		Metrics:  s.metrics,
		Logger:   log,
		Location: time.UTC,
	})
}

func (s *RouterSuite) TestAPIRoutes() {
	rr := testutil.DoRequest(s.router(nil), testutil.Get(s.T(), "/api/cases"))
	testutil.AssertStatusOK(s.T(), rr)
	s.NotEmpty(rr.Header().Get(middleware.HeaderRequestID))

	rr = testutil.DoRequest(s.router(nil), testutil.Get(s.T(), "/api/cases/9999"))
	testutil.AssertStatus(s.T(), rr, http.StatusNotFound)
	testutil.AssertErrorMessage(s.T(), rr, "Case not found")
}

func (s *RouterSuite) TestPagesFetchThroughTheAPI() {
	rr := testutil.DoRequest(s.router(nil), testutil.Get(s.T(), "/cases/1001"))
	testutil.AssertStatusOK(s.T(), rr)
	s.Contains(rr.Body.String(), "Juan Pérez")

	rr = testutil.DoRequest(s.router(nil), testutil.Get(s.T(), "/metrics"))
	body := rr.Body.String()
	s.Contains(body, `casedesk_http_request_duration_seconds_count{route="/api/cases/{caseId}`)
	s.Contains(body, `casedesk_http_request_duration_seconds_count{route="/cases/{caseId}",status="200"} 1`)
	s.Contains(body, `casedesk_view_fetches_total{component="explainability",outcome="loaded"} 1`)
}

func (s *RouterSuite) TestHealth() {
	s.Run("without redis", func() {
		rr := testutil.DoRequest(s.router(nil), testutil.Get(s.T(), "/healthz"))
		testutil.AssertStatusOK(s.T(), rr)
		got := testutil.UnmarshalResponse[healthResponse](s.T(), rr)
		s.Equal(healthResponse{
			Status:   "ok",
			Fixtures: fixtureHealth{Source: "embedded", Cases: 5, Details: 4},
			Redis:    "disabled",
			Postgres: "disabled",
		}, got)
	})

	s.Run("redis reachable", func() {
		rr := testutil.DoRequest(s.router(stubHealth{}), testutil.Get(s.T(), "/healthz"))
		testutil.AssertStatusOK(s.T(), rr)
		s.Equal("ok", testutil.UnmarshalResponse[healthResponse](s.T(), rr).Redis)
	})

	s.Run("redis down", func() {
		rr := testutil.DoRequest(s.router(stubHealth{err: errors.New("dial tcp: refused")}), testutil.Get(s.T(), "/healthz"))
		testutil.AssertStatus(s.T(), rr, http.StatusServiceUnavailable)
		got := testutil.UnmarshalResponse[healthResponse](s.T(), rr)
		s.Equal("degraded", got.Status)
		s.Equal("unreachable", got.Redis)
	})

	s.Run("postgres down", func() {
		rr := testutil.DoRequest(s.routerWith(nil, stubHealth{err: errors.New("connection refused")}), testutil.Get(s.T(), "/healthz"))
		testutil.AssertStatus(s.T(), rr, http.StatusServiceUnavailable)
		got := testutil.UnmarshalResponse[healthResponse](s.T(), rr)
		s.Equal("degraded", got.Status)
		s.Equal("disabled", got.Redis)
		s.Equal("unreachable", got.Postgres)
	})

	s.Run("postgres reachable", func() {
		rr := testutil.DoRequest(s.routerWith(nil, stubHealth{}), testutil.Get(s.T(), "/healthz"))
		testutil.AssertStatusOK(s.T(), rr)
		s.Equal("ok", testutil.UnmarshalResponse[healthResponse](s.T(), rr).Postgres)
	})
}

func (s *RouterSuite) TestRootRedirectsToCases() {
	rr := testutil.DoRequest(s.router(nil), testutil.Get(s.T(), "/"))
	s.Equal(http.StatusFound, rr.Code)
	s.True(strings.HasSuffix(rr.Header().Get("Location"), "/cases"))
}
