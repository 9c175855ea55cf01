// Package e2e runs the feature files against a running casedesk server.
//
//	CASEDESK_BASE_URL=http://localhost:8080 go test ./...
package e2e

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// TestContext holds the last response of a scenario.
type TestContext struct {
	BaseURL string
	client  *http.Client

	lastStatus int
	lastHeader http.Header
	lastBody   []byte
}

func NewTestContext(baseURL string) *TestContext {
	return &TestContext{
		BaseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Reset clears the previous scenario's response.
func (tc *TestContext) Reset() {
	tc.lastStatus = 0
	tc.lastHeader = nil
	tc.lastBody = nil
}

// GET performs a request and records the response.
func (tc *TestContext) GET(path string, headers map[string]string) error {
	req, err := http.NewRequest(http.MethodGet, tc.BaseURL+path, nil)
	if err != nil {
		return err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	// Redirects are asserted on, not followed.
	client := *tc.client
	client.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body of %s: %w", path, err)
	}
	tc.lastStatus = resp.StatusCode
	tc.lastHeader = resp.Header
	tc.lastBody = body
	return nil
}

func (tc *TestContext) GetLastResponseStatus() int { return tc.lastStatus }

func (tc *TestContext) GetLastResponseBody() []byte { return tc.lastBody }

func (tc *TestContext) GetLastResponseHeader(name string) string {
	return tc.lastHeader.Get(name)
}

// GetResponseJSON decodes the last body.
func (tc *TestContext) GetResponseJSON() (any, error) {
	var v any
	if err := json.Unmarshal(tc.lastBody, &v); err != nil {
		return nil, fmt.Errorf("response is not JSON: %w", err)
	}
	return v, nil
}

// GetResponseField walks a dotted path such as "case.name" or
// "validations.0.result" through the last JSON body.
func (tc *TestContext) GetResponseField(field string) (any, error) {
	v, err := tc.GetResponseJSON()
	if err != nil {
		return nil, err
	}
	for _, key := range strings.Split(field, ".") {
		switch node := v.(type) {
		case map[string]any:
			next, ok := node[key]
			if !ok {
				return nil, fmt.Errorf("field %q not found", field)
			}
			v = next
		case []any:
			i, err := strconv.Atoi(key)
			if err != nil || i < 0 || i >= len(node) {
				return nil, fmt.Errorf("index %q out of range in %q", key, field)
			}
			v = node[i]
		default:
			return nil, fmt.Errorf("field %q not found", field)
		}
	}
	return v, nil
}
