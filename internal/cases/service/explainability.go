package service

import (
	"context"
	"fmt"

	"casedesk/internal/cases/models"
)

// GetExplainability derives the explainability aggregate of a case. Cases
// without detail are reported as ErrCaseNotFound.
func (s *Service) GetExplainability(ctx context.Context, caseID string) (*models.ExplainabilityData, error) {
	view, err := s.GetCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if view.Detail == nil {
		return nil, ErrCaseNotFound
	}
	d := view.Detail

	validations := make([]models.Validation, len(d.AutomaticValidations))
	for i, v := range d.AutomaticValidations {
		validations[i] = models.Validation{
			ID:      v.ID,
			Name:    v.Title,
			Result:  v.Result,
			Message: v.ShortMessage,
			Rule:    v.Rule,
			Evidence: &models.Evidence{
				Field: v.Evidence.Field,
				Value: v.Evidence.Value,
			},
		}
	}

	ocrFields := make([]models.OCRField, len(d.OCR))
	for i, f := range d.OCR {
		ocrFields[i] = models.OCRField{Field: f.Field, Value: f.Value}
	}

	return &models.ExplainabilityData{
		CaseID:           caseID,
		LastEvaluationAt: d.CriteriaSummary.LastEvaluation,
		Source:           d.CriteriaSummary.Source,
		Status:           d.CriteriaSummary.Status,
		AutoDecision:     deriveAutoDecision(view, validations, d.OCR),
		Validations:      validations,
		OCRFields:        ocrFields,
		Flags:            []models.Flag{},
	}, nil
}

// deriveAutoDecision is nil when an analyst has to decide. Otherwise the
// decision mirrors the case status: APROBADO approves, anything else rejects.
func deriveAutoDecision(view *CaseView, validations []models.Validation, ocr []models.OCRRecord) *models.AutoDecision {
	if view.RequiresManualDecision {
		return nil
	}
	decision := models.DecisionRejected
	if view.Case.Status == models.CaseStatusApproved {
		decision = models.DecisionApproved
	}
	rules := make([]string, len(validations))
	for i, v := range validations {
		rules[i] = v.Rule
	}
	evidence := make([]string, len(ocr))
	for i, o := range ocr {
		evidence[i] = fmt.Sprintf("%s: %s", o.Field, o.Value)
	}
	return &models.AutoDecision{Decision: decision, Rules: rules, Evidence: evidence}
}
