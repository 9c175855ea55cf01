package dashboard

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GET(path string, headers map[string]string) error
	GetLastResponseStatus() int
	GetLastResponseBody() []byte
}

// RegisterSteps registers dashboard page step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &dashboardSteps{tc: tc}

	ctx.Step(`^I open the dashboard of case "([^"]*)"$`, steps.openDashboard)
	ctx.Step(`^I open the "([^"]*)" tab of case "([^"]*)"$`, steps.openTab)
	ctx.Step(`^I download the summary of case "([^"]*)"$`, steps.downloadSummary)

	ctx.Step(`^the page should show "([^"]*)"$`, steps.pageShows)
	ctx.Step(`^the page should not show "([^"]*)"$`, steps.pageDoesNotShow)
}

type dashboardSteps struct {
	tc TestContext
}

func (s *dashboardSteps) openDashboard(ctx context.Context, caseID string) error {
	return s.tc.GET("/cases/"+url.PathEscape(caseID), nil)
}

func (s *dashboardSteps) openTab(ctx context.Context, tab, caseID string) error {
	return s.tc.GET("/cases/"+url.PathEscape(caseID)+"?tab="+url.QueryEscape(strings.ToLower(tab)), nil)
}

func (s *dashboardSteps) downloadSummary(ctx context.Context, caseID string) error {
	return s.tc.GET("/cases/"+url.PathEscape(caseID)+"/summary.txt", nil)
}

// Page text is HTML-escaped; compare against the escaped form.
func (s *dashboardSteps) pageShows(ctx context.Context, text string) error {
	body := string(s.tc.GetLastResponseBody())
	if !strings.Contains(body, text) && !strings.Contains(body, htmlEscape(text)) {
		return fmt.Errorf("expected page (status %d) to show %q", s.tc.GetLastResponseStatus(), text)
	}
	return nil
}

func (s *dashboardSteps) pageDoesNotShow(ctx context.Context, text string) error {
	body := string(s.tc.GetLastResponseBody())
	if strings.Contains(body, text) || strings.Contains(body, htmlEscape(text)) {
		return fmt.Errorf("expected page not to show %q", text)
	}
	return nil
}

var htmlEscaper = strings.NewReplacer(`&`, "&amp;", `'`, "&#39;", `<`, "&lt;", `>`, "&gt;", `"`, "&#34;")

func htmlEscape(s string) string { return htmlEscaper.Replace(s) }
