// Package web serves the dashboard as server-rendered HTML pages.
//
// Every page request mounts the components it shows against the request
// context, waits for them to settle and unmounts them before returning, so a
// browser that navigates away cancels the fetches still in flight.
package web

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"casedesk/internal/dashboard/view"
	"casedesk/pkg/requestcontext"
)

var funcs = template.FuncMap{
	"icon": pendingIconGlyph,
}

var (
	indexPage = parsePage(tmplIndex)
	casePage  = parsePage(tmplCase)
)

func parsePage(content string) *template.Template {
	layout := template.Must(template.New("layout").Funcs(funcs).Parse(tmplLayout))
	return template.Must(layout.Parse(content))
}

func pendingIconGlyph(icon view.PendingIcon) string {
	switch icon {
	case view.IconBank:
		return "🏦"
	case view.IconLocation:
		return "📍"
	case view.IconMoney:
		return "💰"
	case view.IconRisk:
		return "⚠️"
	case view.IconReview:
		return "🔍"
	default:
		return "📄"
	}
}

// Handler serves the dashboard pages.
type Handler struct {
	env view.Env
}

// New builds the page handler. Every component fetches through fetcher.
func New(fetcher view.CaseFetcher, logger *slog.Logger, recorder view.Recorder, loc *time.Location) *Handler {
	return &Handler{env: view.Env{
		Fetcher:  fetcher,
		Logger:   logger,
		Recorder: recorder,
		Location: loc,
	}}
}

// Register registers the page routes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.handleRoot)
	r.Get("/cases", h.handleIndex)
	r.Get("/cases/{caseId}", h.handleCase)
	r.Get("/cases/{caseId}/summary.txt", h.handleSummary)
}

type page struct {
	Title       string
	ListLoading bool
	Cases       []view.CaseListItem
	Dashboard   *view.DashboardView
	Links       links
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/cases", http.StatusFound)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list := view.NewCaseList(h.env, "", nil)
	list.Mount(ctx)
	defer list.Unmount()
	if err := list.Wait(ctx); err != nil {
		h.abandoned(ctx, err)
		return
	}

	h.render(ctx, w, indexPage, page{
		Title:       "Casos",
		ListLoading: list.Loading(),
		Cases:       list.Items(),
	})
}

func (h *Handler) handleCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caseID := chi.URLParam(r, "caseId")
	ctx = requestcontext.WithCaseID(ctx, caseID)

	d := view.NewDashboard(h.env, caseID, parseOptions(r.URL.Query()), nil)
	d.Mount(ctx)
	defer d.Unmount()
	if err := d.Wait(ctx); err != nil {
		h.abandoned(ctx, err)
		return
	}

	v := d.View()
	var expanded []view.Section
	if card := d.Explainability(); card != nil {
		for _, s := range []view.Section{view.SectionSummary, view.SectionValidations, view.SectionOCR, view.SectionDecision} {
			if card.IsExpanded(s) {
				expanded = append(expanded, s)
			}
		}
	}

	title := "Caso " + caseID
	if v.Name != "" {
		title = v.Name + " · " + title
	}
	status := http.StatusOK
	if v.State == view.ShellError {
		status = http.StatusNotFound
	}
	h.renderStatus(ctx, w, status, casePage, page{
		Title:       title,
		ListLoading: d.List().Loading(),
		Cases:       v.Cases,
		Dashboard:   &v,
		Links:       newLinks(caseID, r.URL.Query(), expanded),
	})
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caseID := chi.URLParam(r, "caseId")
	ctx = requestcontext.WithCaseID(ctx, caseID)

	card := view.NewExplainabilityCard(h.env, caseID)
	card.Mount(ctx)
	defer card.Unmount()
	if err := card.Wait(ctx); err != nil {
		h.abandoned(ctx, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	text, err := card.Summary()
	if err != nil {
		v := card.View()
		status := http.StatusNotFound
		if v.State == view.CardError {
			status = http.StatusBadGateway
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(v.Message + "\n"))
		return
	}
	_, _ = w.Write([]byte(text))
}

func (h *Handler) render(ctx context.Context, w http.ResponseWriter, tmpl *template.Template, data page) {
	h.renderStatus(ctx, w, http.StatusOK, tmpl, data)
}

func (h *Handler) renderStatus(ctx context.Context, w http.ResponseWriter, status int, tmpl *template.Template, data page) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.logger().ErrorContext(ctx, "failed to render page",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// abandoned logs a page whose client went away before the data settled.
func (h *Handler) abandoned(ctx context.Context, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		h.logger().DebugContext(ctx, "page request abandoned",
			"request_id", requestcontext.RequestID(ctx),
			"case_id", requestcontext.CaseID(ctx),
		)
		return
	}
	h.logger().WarnContext(ctx, "page data wait failed", "error", err)
}

func (h *Handler) logger() *slog.Logger {
	if h.env.Logger == nil {
		return slog.Default()
	}
	return h.env.Logger
}
