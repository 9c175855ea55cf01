package client

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

// InProcessBaseURL is the base URL used by in-process clients. The host is
// never resolved.
const InProcessBaseURL = "http://casedesk.internal/api"

// HandlerTransport serves requests with Handler in the calling goroutine.
// Handler sees the request context, so cancelling the request also cuts the
// simulated latency short. Any chi routing state inherited from an outer
// request is dropped so the request is routed from scratch.
type HandlerTransport struct {
	Handler http.Handler
}

func (t HandlerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	inner := req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, nil))
	rec := httptest.NewRecorder()
	t.Handler.ServeHTTP(rec, inner)
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	resp := rec.Result()
	resp.Request = req
	return resp, nil
}
