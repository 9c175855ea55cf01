package e2e

import (
	"github.com/cucumber/godog"

	"casedesk/e2e/steps/cases"
	"casedesk/e2e/steps/common"
	"casedesk/e2e/steps/dashboard"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Register common steps (background, generic requests, assertions)
	common.RegisterSteps(ctx, tc)

	// Register case API steps
	cases.RegisterSteps(ctx, tc)

	// Register dashboard page steps
	dashboard.RegisterSteps(ctx, tc)
}
