package cases

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GET(path string, headers map[string]string) error
	GetResponseJSON() (any, error)
}

// RegisterSteps registers case API step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &caseSteps{tc: tc}

	ctx.Step(`^I list the cases$`, steps.listCases)
	ctx.Step(`^I fetch case "([^"]*)"$`, steps.fetchCase)
	ctx.Step(`^I fetch the explainability of case "([^"]*)"$`, steps.fetchExplainability)
	ctx.Step(`^I fetch the documents of case "([^"]*)"$`, steps.fetchDocuments)
	ctx.Step(`^I fetch the audit events of case "([^"]*)"$`, steps.fetchAudit)

	ctx.Step(`^case "([^"]*)" should be listed with status "([^"]*)"$`, steps.caseListedWithStatus)
	ctx.Step(`^the validation "([^"]*)" should have result "([^"]*)"$`, steps.validationHasResult)
	ctx.Step(`^the document "([^"]*)" should be present$`, steps.documentPresent)
}

type caseSteps struct {
	tc TestContext
}

func casePath(caseID string) string {
	return "/api/cases/" + url.PathEscape(caseID)
}

func (s *caseSteps) listCases(ctx context.Context) error {
	return s.tc.GET("/api/cases", nil)
}

func (s *caseSteps) fetchCase(ctx context.Context, caseID string) error {
	return s.tc.GET(casePath(caseID), nil)
}

func (s *caseSteps) fetchExplainability(ctx context.Context, caseID string) error {
	return s.tc.GET(casePath(caseID)+"/explainability", nil)
}

func (s *caseSteps) fetchDocuments(ctx context.Context, caseID string) error {
	return s.tc.GET(casePath(caseID)+"/documents", nil)
}

func (s *caseSteps) fetchAudit(ctx context.Context, caseID string) error {
	return s.tc.GET(casePath(caseID)+"/audit", nil)
}

func (s *caseSteps) objects(key string) ([]map[string]any, error) {
	v, err := s.tc.GetResponseJSON()
	if err != nil {
		return nil, err
	}
	if key != "" {
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expected a JSON object, got %T", v)
		}
		v = obj[key]
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON array, got %T", v)
	}
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out, nil
}

func (s *caseSteps) find(key, field, value string) (map[string]any, error) {
	items, err := s.objects(key)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if fmt.Sprint(item[field]) == value {
			return item, nil
		}
	}
	return nil, fmt.Errorf("no item with %s %q", field, value)
}

func (s *caseSteps) caseListedWithStatus(ctx context.Context, caseID, status string) error {
	c, err := s.find("", "id", caseID)
	if err != nil {
		return err
	}
	if got := fmt.Sprint(c["status"]); got != status {
		return fmt.Errorf("case %s: expected status %q, got %q", caseID, status, got)
	}
	return nil
}

func (s *caseSteps) validationHasResult(ctx context.Context, name, result string) error {
	v, err := s.find("validations", "name", name)
	if err != nil {
		return err
	}
	if got := fmt.Sprint(v["result"]); got != result {
		return fmt.Errorf("validation %q: expected result %q, got %q", name, result, got)
	}
	return nil
}

func (s *caseSteps) documentPresent(ctx context.Context, docID string) error {
	_, err := s.find("", "id", docID)
	return err
}
