// Package client fetches case data from the case API for the dashboard views.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"casedesk/internal/cases/models"
	"casedesk/internal/platform/middleware"
	"casedesk/pkg/platform/circuit"
	"casedesk/pkg/requestcontext"
)

// Client talks to the case API rooted at baseURL (for example
// "http://localhost:8080/api").
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *circuit.Breaker
}

// New builds a client. A nil httpClient uses a client with a 30s timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// NewInProcess builds a client whose requests are served by handler without
// touching the network.
func NewInProcess(handler http.Handler) *Client {
	return New(InProcessBaseURL, &http.Client{Transport: HandlerTransport{Handler: handler}})
}

// WithBreaker makes the client fail fast with ErrTransport while b is open.
// Network failures and 5xx answers count as failures; any other answer
// proves the server is reachable.
func (c *Client) WithBreaker(b *circuit.Breaker) *Client {
	c.breaker = b
	return c
}

// ListCases fetches GET /cases.
func (c *Client) ListCases(ctx context.Context) ([]models.Case, error) {
	var out []models.Case
	if err := c.get(ctx, "/cases", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCase fetches GET /cases/{caseId}. A payload without a case name is
// malformed.
func (c *Client) GetCase(ctx context.Context, caseID string) (*models.CaseBundle, error) {
	path := "/cases/" + url.PathEscape(caseID)
	var out models.CaseBundle
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	if out.Case.Name == "" {
		return nil, malformedError(path, errors.New("case name missing"))
	}
	return &out, nil
}

// GetExplainability fetches GET /cases/{caseId}/explainability.
func (c *Client) GetExplainability(ctx context.Context, caseID string) (*models.ExplainabilityData, error) {
	var out models.ExplainabilityData
	if err := c.get(ctx, "/cases/"+url.PathEscape(caseID)+"/explainability", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListDocuments fetches GET /cases/{caseId}/documents.
func (c *Client) ListDocuments(ctx context.Context, caseID string) ([]models.Document, error) {
	var out []models.Document
	if err := c.get(ctx, "/cases/"+url.PathEscape(caseID)+"/documents", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAuditEvents fetches GET /cases/{caseId}/audit.
func (c *Client) ListAuditEvents(ctx context.Context, caseID string) ([]models.AuditEvent, error) {
	var out []models.AuditEvent
	if err := c.get(ctx, "/cases/"+url.PathEscape(caseID)+"/audit", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	if c.breaker != nil && !c.breaker.Allow() {
		return transportError(path, circuit.ErrOpen)
	}
	err := c.do(ctx, path, out)
	if c.breaker != nil && ctx.Err() == nil {
		if serverDown(err) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	return err
}

func serverDown(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode >= 500
	}
	return errors.Is(err, ErrTransport)
}

func (c *Client) do(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return transportError(path, err)
	}
	req.Header.Set("Accept", "application/json")
	if id := requestcontext.RequestID(ctx); id != "" {
		req.Header.Set(middleware.HeaderRequestID, id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Path: path, StatusCode: resp.StatusCode}
		var envelope struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &envelope) == nil {
			se.Message = envelope.Error
		}
		return se
	}

	if err := json.Unmarshal(body, out); err != nil {
		return malformedError(path, err)
	}
	return nil
}
