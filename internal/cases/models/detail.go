package models

// ExplainabilityStatus summarises the automated criteria of a case.
type ExplainabilityStatus string

const (
	ExplainabilityOK               ExplainabilityStatus = "OK"
	ExplainabilityReviewRequired   ExplainabilityStatus = "REVIEW_REQUIRED"
	ExplainabilityValidationFailed ExplainabilityStatus = "VALIDATION_FAILED"
)

// Source tells where evaluated data came from.
type Source string

const (
	SourceOCR                 Source = "OCR"
	SourceManual              Source = "MANUAL"
	SourceExternalIntegration Source = "EXTERNAL_INTEGRATION"
)

// CaseDetail is the per-case bundle stored in the detail fixture map.
type CaseDetail struct {
	CriteriaSummary      CriteriaSummary       `json:"criteriosResumen"`
	AutomaticValidations []AutomaticValidation `json:"validacionesAutomaticas"`
	OCR                  []OCRRecord           `json:"ocr"`
	PendingItems         []PendingItem         `json:"pendingItems"`
	PendingRequirements  []PendingRequirement  `json:"pendingRequirements,omitempty"`
	ValidationIssues     []ValidationIssue     `json:"validationIssues,omitempty"`
	Tasks                []Task                `json:"historialTareas"`
	Documents            []Document            `json:"documentos,omitempty"`
	AuditEvents          []AuditEvent          `json:"auditEvents,omitempty"`
}

// CriteriaSummary is the header of the explainability data.
type CriteriaSummary struct {
	Status         ExplainabilityStatus `json:"estadoCriterios"`
	LastEvaluation string               `json:"ultimaEvaluacion"`
	Source         Source               `json:"fuente"`
}

// AutomaticValidation is a raw automated validation record.
type AutomaticValidation struct {
	ID           string      `json:"id"`
	Title        string      `json:"titulo"`
	Result       CheckResult `json:"resultado"`
	ShortMessage string      `json:"descripcionCorta"`
	Rule         string      `json:"regla"`
	Evidence     RawEvidence `json:"evidencia"`
}

// RawEvidence is the field/value pair a validation was decided on.
type RawEvidence struct {
	Field string `json:"campo"`
	Value string `json:"valor"`
}

// OCRRecord is a raw OCR-extracted field.
type OCRRecord struct {
	Field string `json:"campo"`
	Value string `json:"valor"`
}

// PendingItem is the legacy pending entry still returned by the case bundle.
type PendingItem struct {
	ID    string `json:"id"`
	Title string `json:"titulo"`
	Icon  string `json:"icono"`
}

// Severity grades a validation issue.
type Severity string

const (
	SeverityHigh   Severity = "alta"
	SeverityMedium Severity = "media"
	SeverityLow    Severity = "baja"
)

// PendingRequirement is a document the client still has to provide.
type PendingRequirement struct {
	ID      string `json:"id"`
	DocType string `json:"docType"`
	Reason  string `json:"reason"`
	DueDate string `json:"dueDate,omitempty"`
}

// ValidationIssue is an open finding raised by a validation rule.
type ValidationIssue struct {
	ID       string   `json:"id"`
	RuleName string   `json:"ruleName"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// TaskStatus is todo or done.
type TaskStatus string

const (
	TaskTodo TaskStatus = "todo"
	TaskDone TaskStatus = "done"
)

// Task is an entry of the case task history.
type Task struct {
	ID        string     `json:"id"`
	Title     string     `json:"titulo"`
	Status    TaskStatus `json:"status"`
	Timestamp string     `json:"timestamp"`
	Kind      string     `json:"tipo,omitempty"`
	Action    string     `json:"accion,omitempty"`
	Result    string     `json:"resultado,omitempty"`
	Detail    string     `json:"detalle,omitempty"`
	Origin    string     `json:"origen,omitempty"`
	Date      string     `json:"fecha,omitempty"`
	User      string     `json:"usuario,omitempty"`
}
