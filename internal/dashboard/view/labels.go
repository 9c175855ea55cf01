package view

import "casedesk/internal/cases/models"

func labelOr[K ~string](labels map[K]string, key K) string {
	if label, ok := labels[key]; ok {
		return label
	}
	return string(key)
}

var explainabilityStatusLabels = map[models.ExplainabilityStatus]string{
	models.ExplainabilityOK:               "OK",
	models.ExplainabilityReviewRequired:   "Revisión requerida",
	models.ExplainabilityValidationFailed: "Falló validación",
}

// ExplainabilityStatusLabel localizes an explainability status.
func ExplainabilityStatusLabel(s models.ExplainabilityStatus) string {
	return labelOr(explainabilityStatusLabels, s)
}

var documentStatusLabels = map[models.DocumentStatus]string{
	models.DocumentApproved:       "Aprobado",
	models.DocumentRejected:       "Rechazado",
	models.DocumentPending:        "Pendiente",
	models.DocumentReviewRequired: "Revisión requerida",
}

// DocumentStatusLabel localizes a document status.
func DocumentStatusLabel(s models.DocumentStatus) string {
	return labelOr(documentStatusLabels, s)
}

var sourceLabels = map[models.Source]string{
	models.SourceOCR:                 "OCR",
	models.SourceManual:              "Manual",
	models.SourceExternalIntegration: "Integración externa",
}

// SourceLabel localizes a data source.
func SourceLabel(s models.Source) string {
	return labelOr(sourceLabels, s)
}

var actorLabels = map[models.Actor]string{
	models.ActorSystem:  "Sistema",
	models.ActorAnalyst: "Analista",
	models.ActorClient:  "Cliente",
}

// ActorLabel localizes an audit actor.
func ActorLabel(a models.Actor) string {
	return labelOr(actorLabels, a)
}

var documentResultLabels = map[models.DocumentCheckResult]string{
	models.DocumentCheckOK:      "OK",
	models.DocumentCheckWarning: "WARNING",
	models.DocumentCheckFail:    "FAIL",
}

// DocumentResultLabel is the badge text of a document validation result.
// Unknown results show as FAIL.
func DocumentResultLabel(r models.DocumentCheckResult) string {
	if label, ok := documentResultLabels[r]; ok {
		return label
	}
	return "FAIL"
}

// ResultIcon is the textual icon of a validation result. Unknown results have
// no icon.
func ResultIcon(r models.CheckResult) string {
	switch r {
	case models.ResultPass:
		return "✓"
	case models.ResultWarn:
		return "⚠"
	case models.ResultFail:
		return "✗"
	default:
		return ""
	}
}

// verdictIcon is ResultIcon where anything that is not a pass or a warning
// reads as a failure.
func verdictIcon(r models.CheckResult) string {
	switch r {
	case models.ResultPass:
		return "✓"
	case models.ResultWarn:
		return "⚠"
	default:
		return "✗"
	}
}

// DocumentResultIcon is the textual icon of a document validation result.
func DocumentResultIcon(r models.DocumentCheckResult) string {
	switch r {
	case models.DocumentCheckOK:
		return "✓"
	case models.DocumentCheckWarning:
		return "⚠"
	case models.DocumentCheckFail:
		return "✗"
	default:
		return ""
	}
}
