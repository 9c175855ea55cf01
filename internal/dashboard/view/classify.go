package view

import "strings"

// keywordRule maps any of its keywords to result.
type keywordRule[T any] struct {
	keywords []string
	result   T
}

// classify returns the result of the first rule with a keyword contained in
// the lower-cased text, or fallback.
func classify[T any](text string, rules []keywordRule[T], fallback T) T {
	lower := strings.ToLower(text)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.result
			}
		}
	}
	return fallback
}

// EventCategory is the visual category of an audit event.
type EventCategory string

const (
	EventApproval     EventCategory = "approval"
	EventRejection    EventCategory = "rejection"
	EventDocument     EventCategory = "document"
	EventValidation   EventCategory = "validation"
	EventOCR          EventCategory = "ocr"
	EventComment      EventCategory = "comment"
	EventStatusChange EventCategory = "status-change"
	EventDefault      EventCategory = "default"
)

var eventCategoryRules = []keywordRule[EventCategory]{
	{keywords: []string{"aprobación", "aprobado"}, result: EventApproval},
	{keywords: []string{"rechazo", "rechazado"}, result: EventRejection},
	{keywords: []string{"documento"}, result: EventDocument},
	{keywords: []string{"validación"}, result: EventValidation},
	{keywords: []string{"ocr"}, result: EventOCR},
	{keywords: []string{"comentario"}, result: EventComment},
	{keywords: []string{"cambio"}, result: EventStatusChange},
}

// CategorizeEvent classifies an audit event type.
func CategorizeEvent(eventType string) EventCategory {
	return classify(eventType, eventCategoryRules, EventDefault)
}

// PendingIcon names the icon of a pending item.
type PendingIcon string

const (
	IconBank     PendingIcon = "bank"
	IconLocation PendingIcon = "location"
	IconDocument PendingIcon = "document"
	IconMoney    PendingIcon = "money"
	IconRisk     PendingIcon = "risk"
	IconReview   PendingIcon = "review"
)

var docTypeIconRules = []keywordRule[PendingIcon]{
	{keywords: []string{"banco", "cuenta", "extracto"}, result: IconBank},
	{keywords: []string{"dirección", "domicilio"}, result: IconLocation},
	{keywords: []string{"identidad", "dni", "documento"}, result: IconDocument},
	{keywords: []string{"fondos", "dinero"}, result: IconMoney},
}

// DocTypeIcon picks the icon of a pending requirement from its document type.
func DocTypeIcon(docType string) PendingIcon {
	return classify(docType, docTypeIconRules, IconDocument)
}

// SeverityIcon picks the icon of a validation issue.
func SeverityIcon(severity string) PendingIcon {
	if severity == "alta" {
		return IconRisk
	}
	return IconReview
}
