package models

// Decision is the outcome of an automatic decision.
type Decision string

const (
	DecisionApproved Decision = "APPROVED"
	DecisionRejected Decision = "REJECTED"
)

// Evidence is the field/value pair attached to a validation.
type Evidence struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Validation is an automated validation as exposed to the explainability card.
type Validation struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Result   CheckResult `json:"result"`
	Message  string      `json:"message"`
	Rule     string      `json:"rule,omitempty"`
	Evidence *Evidence   `json:"evidence,omitempty"`
}

// OCRField is an OCR-extracted field. Confidence is kept for wire
// compatibility and is always zero.
type OCRField struct {
	Field      string `json:"field"`
	Value      string `json:"value"`
	Confidence int    `json:"confidence"`
}

// FlagSeverity grades a flag.
type FlagSeverity string

const (
	FlagLow    FlagSeverity = "LOW"
	FlagMedium FlagSeverity = "MEDIUM"
	FlagHigh   FlagSeverity = "HIGH"
)

// Flag is a reviewer hint. No fixture produces flags any more.
type Flag struct {
	ID              string       `json:"id"`
	Severity        FlagSeverity `json:"severity"`
	Title           string       `json:"title"`
	Detail          string       `json:"detail"`
	SuggestedAction string       `json:"suggestedAction"`
}

// AutoDecision is present only when the case needs no analyst decision.
type AutoDecision struct {
	Decision Decision `json:"decision"`
	Rules    []string `json:"rules"`
	Evidence []string `json:"evidence"`
}

// ExplainabilityData is the body of GET /cases/{caseId}/explainability.
type ExplainabilityData struct {
	CaseID           string               `json:"caseId"`
	LastEvaluationAt string               `json:"lastEvaluationAt"`
	Source           Source               `json:"source"`
	Status           ExplainabilityStatus `json:"status"`
	AutoDecision     *AutoDecision        `json:"autoDecision"`
	Validations      []Validation         `json:"validations"`
	OCRFields        []OCRField           `json:"ocrFields"`
	Flags            []Flag               `json:"flags"`
}
