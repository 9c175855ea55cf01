package web

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"casedesk/internal/cases/fixtures"
	"casedesk/internal/cases/handler"
	"casedesk/internal/cases/service"
	"casedesk/internal/dashboard/client"
	"casedesk/internal/dashboard/view"
	"casedesk/internal/platform/config"
	"casedesk/internal/platform/logger"
	"casedesk/pkg/testutil"
)

type PagesSuite struct {
	suite.Suite
	router http.Handler
}

func TestPagesSuite(t *testing.T) {
	suite.Run(t, new(PagesSuite))
}

func (s *PagesSuite) SetupSuite() {
	store, err := fixtures.Load(context.Background(), fixtures.EmbeddedSource{})
	s.Require().NoError(err)

	api := chi.NewRouter()
	api.Route("/api", handler.New(service.New(store, logger.Discard()), logger.Discard(), config.Delays{}).Register)

	r := chi.NewRouter()
	New(client.NewInProcess(api), logger.Discard(), nil, time.UTC).Register(r)
	s.router = r
}

func (s *PagesSuite) get(path string) (int, string) {
	rr := testutil.DoRequest(s.router, testutil.Get(s.T(), path))
	return rr.Code, rr.Body.String()
}

func (s *PagesSuite) TestRootRedirects() {
	rr := testutil.DoRequest(s.router, testutil.Get(s.T(), "/"))
	s.Equal(http.StatusFound, rr.Code)
	s.Equal("/cases", rr.Header().Get("Location"))
}

func (s *PagesSuite) TestIndexListsCases() {
	code, body := s.get("/cases")
	s.Equal(http.StatusOK, code)
	s.Contains(body, "Juan Pérez")
	s.Contains(body, "María González")
	s.Contains(body, "En revisión")
	s.Contains(body, "Seleccioná un caso")
}

func (s *PagesSuite) TestSummaryTab() {
	code, body := s.get("/cases/1001")
	s.Equal(http.StatusOK, code)
	s.Contains(body, "Juan Pérez")
	s.Contains(body, "Datos del caso")
	s.Contains(body, "Criterios y validaciones utilizadas")
	s.Contains(body, "Revisión requerida")
	s.Contains(body, "Este caso requiere decisión manual del analista.")
	s.Contains(body, "Pendientes")
	s.NotContains(body, "Vence en 14 días", "validations are collapsed by default")
}

func (s *PagesSuite) TestExpandedSections() {
	_, body := s.get("/cases/1001?expand=validations")
	s.Contains(body, "Vence en 14 días")
	s.NotContains(body, "Última evaluación", "expand replaces the default sections")
}

func (s *PagesSuite) TestClosedCaseHidesPending() {
	_, body := s.get("/cases/1002")
	s.Contains(body, "Historial de tareas")
	s.NotContains(body, "Sin pendientes")
	s.NotContains(body, "Pendientes (")
}

func (s *PagesSuite) TestCaseWithoutDetail() {
	code, body := s.get("/cases/1005")
	s.Equal(http.StatusOK, code)
	s.Contains(body, "No hay validaciones disponibles para este caso.")
	s.Contains(body, "Sin pendientes")
}

func (s *PagesSuite) TestUnknownCase() {
	code, body := s.get("/cases/9999")
	s.Equal(http.StatusNotFound, code)
	s.Contains(body, "No se pudo cargar el caso")
	s.Contains(body, "Juan Pérez", "the case list still renders")
}

func (s *PagesSuite) TestDetailsTab() {
	_, body := s.get("/cases/1001?tab=detalles&doc=doc-2")
	s.Contains(body, "Validaciones")
	s.NotContains(body, "Criterios y validaciones utilizadas")

	_, body = s.get("/cases/1003?tab=detalles")
	s.Contains(body, "No hay documentos disponibles para este caso.")
}

func (s *PagesSuite) TestHistoryTab() {
	_, body := s.get("/cases/1001?tab=historial")
	s.Contains(body, "Historial de auditoría")
	s.Contains(body, "Todos")

	_, body = s.get("/cases/1004?tab=historial")
	s.Contains(body, "No hay eventos de auditoría disponibles para este caso.")
}

func (s *PagesSuite) TestSummaryText() {
	rr := testutil.DoRequest(s.router, testutil.Get(s.T(), "/cases/1001/summary.txt"))
	s.Equal(http.StatusOK, rr.Code)
	s.Equal("text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	s.True(strings.HasPrefix(body, "RESUMEN DE CRITERIOS Y VALIDACIONES\nCaso: 1001\n"))
	s.Contains(body, "Última evaluación: 15/4/2024, 14:54:00")

	rr = testutil.DoRequest(s.router, testutil.Get(s.T(), "/cases/1005/summary.txt"))
	s.Equal(http.StatusNotFound, rr.Code)
	s.Equal("No hay validaciones disponibles para este caso.\n", rr.Body.String())
}

func TestParseOptions(t *testing.T) {
	q, err := url.ParseQuery("tab=historial&actor=client&all=1&event=e1&expand=ocr,decision&expand=ocr&completed=1")
	require.NoError(t, err)

	opts := parseOptions(q)
	assert.Equal(t, view.TabHistory, opts.Tab)
	assert.Equal(t, view.ActorFilter("client"), opts.Actor)
	assert.True(t, opts.ShowAllEvents)
	assert.True(t, opts.CompletedExpanded)
	assert.Equal(t, "e1", opts.ExpandedEvent)
	assert.Equal(t, []view.Section{view.SectionOCR, view.SectionDecision}, opts.Expanded)

	assert.Nil(t, parseOptions(url.Values{}).Expanded)
	assert.Equal(t, []view.Section{}, parseOptions(url.Values{"expand": {""}}).Expanded)
	assert.Equal(t, view.Tab(""), parseOptions(url.Values{"tab": {"otra"}}).Tab)
}

func TestLinks(t *testing.T) {
	q, err := url.ParseQuery("tab=detalles&doc=doc-1&validation=dv1")
	require.NoError(t, err)
	l := newLinks("1001", q, []view.Section{view.SectionSummary})

	assert.Equal(t, "/cases/1001?doc=doc-2&tab=detalles", l.Document("doc-2"))
	assert.Equal(t, "/cases/1001?doc=doc-1&tab=detalles", l.Validation("dv1"))
	assert.Equal(t, "/cases/1001?doc=doc-1&tab=detalles&validation=dv2", l.Validation("dv2"))
	assert.Equal(t, "/cases/1001", l.Tab("RESUMEN"))
	assert.Equal(t, "/cases/1001?tab=historial", l.Tab("HISTORIAL"))
	assert.Equal(t, "/cases/1001/summary.txt", l.Summary())

	summary := newLinks("1001", url.Values{}, []view.Section{view.SectionSummary})
	assert.Equal(t, "/cases/1001?expand=", summary.ToggleSection("summary"))
	assert.Equal(t, "/cases/1001?expand=summary%2Cocr", summary.ToggleSection("ocr"))
	assert.Equal(t, "/cases/1001?completed=1", summary.ToggleCompleted())

	history := newLinks("1001", url.Values{"tab": {"historial"}, "all": {"1"}}, nil)
	assert.Equal(t, "/cases/1001?actor=analyst&tab=historial", history.Actor("analyst"))
	assert.Equal(t, "/cases/1001?tab=historial", history.Actor("all"))
	assert.Equal(t, "/cases/1001?tab=historial", history.ShowAll(false))
	assert.Equal(t, "/cases/1001?all=1&event=e1&tab=historial", history.Event("e1"))
}
