package models

// DocumentStatus is the review state of an uploaded document.
type DocumentStatus string

const (
	DocumentApproved       DocumentStatus = "APPROVED"
	DocumentRejected       DocumentStatus = "REJECTED"
	DocumentPending        DocumentStatus = "PENDING"
	DocumentReviewRequired DocumentStatus = "REVIEW_REQUIRED"
)

// DocumentCheckResult is the outcome of a per-document validation.
type DocumentCheckResult string

const (
	DocumentCheckOK      DocumentCheckResult = "ok"
	DocumentCheckWarning DocumentCheckResult = "warning"
	DocumentCheckFail    DocumentCheckResult = "fail"
)

// Document is an uploaded document with its extracted data.
type Document struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Status          DocumentStatus       `json:"status"`
	UploadedAt      string               `json:"uploadedAt"`
	UpdatedAt       string               `json:"updatedAt"`
	Source          Source               `json:"source"`
	FileName        string               `json:"fileName"`
	ExtractedFields map[string]string    `json:"extractedFields"`
	Validations     []DocumentValidation `json:"validations"`
}

// DocumentValidation is a rule evaluated against a single document.
type DocumentValidation struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Result   DocumentCheckResult `json:"result"`
	Rule     string              `json:"rule"`
	Evidence string              `json:"evidence"`
	Impact   string              `json:"impact"`
	Details  string              `json:"details,omitempty"`
}

// Actor is who produced an audit event.
type Actor string

const (
	ActorSystem  Actor = "system"
	ActorAnalyst Actor = "analyst"
	ActorClient  Actor = "client"
)

// AuditEvent is a timestamped action on a case.
type AuditEvent struct {
	ID                string `json:"id"`
	Timestamp         string `json:"timestamp"`
	Type              string `json:"type"`
	Actor             Actor  `json:"actor"`
	Summary           string `json:"summary"`
	Details           string `json:"details,omitempty"`
	RelatedDocumentID string `json:"relatedDocumentId,omitempty"`
}
