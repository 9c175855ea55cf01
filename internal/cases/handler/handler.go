// Package handler exposes the case data over JSON. Every endpoint waits a
// configurable delay before answering so the dashboard's loading states can be
// observed; a cancelled request stops waiting and writes nothing.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"casedesk/internal/cases/models"
	"casedesk/internal/platform/config"
	dErrors "casedesk/pkg/domain-errors"
	"casedesk/pkg/platform/httputil"
	"casedesk/pkg/requestcontext"
)

// Service defines the data access operations the endpoints serve.
type Service interface {
	ListCases(ctx context.Context) []models.Case
	GetCaseBundle(ctx context.Context, caseID string) (*models.CaseBundle, error)
	GetExplainability(ctx context.Context, caseID string) (*models.ExplainabilityData, error)
	Documents(ctx context.Context, caseID string) []models.Document
	AuditEvents(ctx context.Context, caseID string) []models.AuditEvent
}

// Handler wires case endpoints to the data access service.
type Handler struct {
	service Service
	logger  *slog.Logger
	delays  config.Delays
}

// New constructs a case handler. Zero delays answer immediately.
func New(service Service, logger *slog.Logger, delays config.Delays) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		delays:  delays,
	}
}

// Register mounts case endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/cases", h.HandleListCases)
	r.Route("/cases/{caseId}", func(r chi.Router) {
		r.Use(withCaseID)
		r.Get("/", h.HandleGetCase)
		r.Get("/explainability", h.HandleGetExplainability)
		r.Get("/documents", h.HandleListDocuments)
		r.Get("/audit", h.HandleListAuditEvents)
	})
}

func withCaseID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithCaseID(r.Context(), chi.URLParam(r, "caseId"))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// HandleListCases handles GET /cases.
func (h *Handler) HandleListCases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.wait(ctx, h.delays.Cases) {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.service.ListCases(ctx))
}

// HandleGetCase handles GET /cases/{caseId}.
func (h *Handler) HandleGetCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.wait(ctx, h.delays.Case) {
		return
	}
	bundle, err := h.service.GetCaseBundle(ctx, requestcontext.CaseID(ctx))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, bundle)
}

// HandleGetExplainability handles GET /cases/{caseId}/explainability.
func (h *Handler) HandleGetExplainability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.wait(ctx, h.delays.Explainability) {
		return
	}
	data, err := h.service.GetExplainability(ctx, requestcontext.CaseID(ctx))
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, data)
}

// HandleListDocuments handles GET /cases/{caseId}/documents. Unknown cases
// answer an empty list.
func (h *Handler) HandleListDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.wait(ctx, h.delays.Documents) {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.service.Documents(ctx, requestcontext.CaseID(ctx)))
}

// HandleListAuditEvents handles GET /cases/{caseId}/audit. Unknown cases
// answer an empty list.
func (h *Handler) HandleListAuditEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.wait(ctx, h.delays.Audit) {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.service.AuditEvents(ctx, requestcontext.CaseID(ctx)))
}

// wait sleeps for d unless the request goes away first.
func (h *Handler) wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		h.logger.DebugContext(ctx, "request cancelled during simulated latency",
			"request_id", requestcontext.RequestID(ctx),
			"case_id", requestcontext.CaseID(ctx),
		)
		return false
	}
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var de *dErrors.Error
	if errors.As(err, &de) && de.Code == dErrors.CodeNotFound {
		h.logger.InfoContext(ctx, "case not found",
			"request_id", requestcontext.RequestID(ctx),
			"case_id", requestcontext.CaseID(ctx),
		)
		httputil.WriteMessage(w, http.StatusNotFound, de.Message)
		return
	}
	h.logger.ErrorContext(ctx, "case request failed",
		"request_id", requestcontext.RequestID(ctx),
		"case_id", requestcontext.CaseID(ctx),
		"error", err,
	)
	httputil.WriteError(w, err)
}
