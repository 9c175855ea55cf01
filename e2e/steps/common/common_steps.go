package common

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GET(path string, headers map[string]string) error
	GetResponseField(field string) (any, error)
	GetResponseJSON() (any, error)
	GetLastResponseStatus() int
	GetLastResponseBody() []byte
	GetLastResponseHeader(name string) string
}

// RegisterSteps registers background, request and assertion steps
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &commonSteps{tc: tc}

	// Background
	ctx.Step(`^the casedesk server is running$`, steps.serverIsRunning)

	// Requests
	ctx.Step(`^I GET "([^"]*)"$`, steps.get)

	// Assertions
	ctx.Step(`^the response status should be (\d+)$`, steps.statusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should equal "([^"]*)"$`, steps.fieldShouldEqual)
	ctx.Step(`^the response field "([^"]*)" should be null$`, steps.fieldShouldBeNull)
	ctx.Step(`^the response should be a list of (\d+) items$`, steps.listOfN)
	ctx.Step(`^the response header "([^"]*)" should be set$`, steps.headerShouldBeSet)
	ctx.Step(`^the response header "([^"]*)" should equal "([^"]*)"$`, steps.headerShouldEqual)
	ctx.Step(`^the response body should contain "([^"]*)"$`, steps.bodyShouldContain)
	ctx.Step(`^the response body should not contain "([^"]*)"$`, steps.bodyShouldNotContain)
}

type commonSteps struct {
	tc TestContext
}

func (s *commonSteps) serverIsRunning(ctx context.Context) error {
	if err := s.tc.GET("/healthz", nil); err != nil {
		return err
	}
	if status := s.tc.GetLastResponseStatus(); status != http.StatusOK {
		return fmt.Errorf("health check returned %d: %s", status, s.tc.GetLastResponseBody())
	}
	return nil
}

func (s *commonSteps) get(ctx context.Context, path string) error {
	return s.tc.GET(path, nil)
}

func (s *commonSteps) statusShouldBe(ctx context.Context, want int) error {
	if got := s.tc.GetLastResponseStatus(); got != want {
		return fmt.Errorf("expected status %d, got %d: %s", want, got, s.tc.GetLastResponseBody())
	}
	return nil
}

func (s *commonSteps) fieldShouldEqual(ctx context.Context, field, want string) error {
	v, err := s.tc.GetResponseField(field)
	if err != nil {
		return err
	}
	if got := fmt.Sprint(v); got != want {
		return fmt.Errorf("expected %s to equal %q, got %q", field, want, got)
	}
	return nil
}

func (s *commonSteps) fieldShouldBeNull(ctx context.Context, field string) error {
	v, err := s.tc.GetResponseField(field)
	if err != nil {
		return err
	}
	if v != nil {
		return fmt.Errorf("expected %s to be null, got %v", field, v)
	}
	return nil
}

func (s *commonSteps) listOfN(ctx context.Context, n int) error {
	v, err := s.tc.GetResponseJSON()
	if err != nil {
		return err
	}
	list, ok := v.([]any)
	if !ok {
		return fmt.Errorf("expected a JSON array, got %T", v)
	}
	if len(list) != n {
		return fmt.Errorf("expected %d items, got %d", n, len(list))
	}
	return nil
}

func (s *commonSteps) headerShouldBeSet(ctx context.Context, name string) error {
	if s.tc.GetLastResponseHeader(name) == "" {
		return fmt.Errorf("expected header %s to be set", name)
	}
	return nil
}

func (s *commonSteps) headerShouldEqual(ctx context.Context, name, want string) error {
	if got := s.tc.GetLastResponseHeader(name); got != want {
		return fmt.Errorf("expected header %s to equal %q, got %q", name, want, got)
	}
	return nil
}

func (s *commonSteps) bodyShouldContain(ctx context.Context, text string) error {
	if !bytes.Contains(s.tc.GetLastResponseBody(), []byte(text)) {
		return fmt.Errorf("expected body to contain %q", text)
	}
	return nil
}

func (s *commonSteps) bodyShouldNotContain(ctx context.Context, text string) error {
	if bytes.Contains(s.tc.GetLastResponseBody(), []byte(text)) {
		return fmt.Errorf("expected body not to contain %q", text)
	}
	return nil
}
