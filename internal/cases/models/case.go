package models

// CaseStatus is the lifecycle state of a case as stored in the fixtures.
type CaseStatus string

const (
	CaseStatusPending  CaseStatus = "PENDIENTE"
	CaseStatusApproved CaseStatus = "APROBADO"
	CaseStatusRejected CaseStatus = "RECHAZADO"
	CaseStatusInReview CaseStatus = "EN_REVISION"
)

// IsValid reports whether s is one of the four known statuses.
func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusPending, CaseStatusApproved, CaseStatusRejected, CaseStatusInReview:
		return true
	}
	return false
}

// Case is the list-level view of a case.
type Case struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Status CaseStatus `json:"status"`
}

// CheckResult is the outcome of an automated validation.
type CheckResult string

const (
	ResultPass CheckResult = "PASS"
	ResultWarn CheckResult = "WARN"
	ResultFail CheckResult = "FAIL"
)

// CaseData holds the three headline checks shown on the case data card.
type CaseData struct {
	IdentityValidation CheckResult `json:"validacionIdentidad"`
	FundsOrigin        CheckResult `json:"origenFondos"`
	RiskMatrix         CheckResult `json:"matrizRiesgo"`
}

// CaseRecord is a raw entry of the case fixture list.
type CaseRecord struct {
	ID                     string     `json:"id"`
	Name                   string     `json:"name"`
	Status                 CaseStatus `json:"status"`
	CaseData               *CaseData  `json:"caseData,omitempty"`
	RequiresManualDecision bool       `json:"requiereDecisionManual"`
}

// Case projects the record onto its list-level view.
func (r CaseRecord) Case() Case {
	return Case{ID: r.ID, Name: r.Name, Status: r.Status}
}

// CaseBundle is the body of GET /cases/{caseId}.
type CaseBundle struct {
	Case                Case                 `json:"case"`
	Status              string               `json:"status"`
	CaseData            *CaseData            `json:"caseData,omitempty"`
	PendingItems        []PendingItem        `json:"pendingItems"`
	Tasks               []Task               `json:"tasks"`
	PendingRequirements []PendingRequirement `json:"pendingRequirements"`
	ValidationIssues    []ValidationIssue    `json:"validationIssues"`
}

var caseStatusLabels = map[CaseStatus]string{
	CaseStatusPending:  "Pendiente",
	CaseStatusApproved: "Aprobado",
	CaseStatusRejected: "Rechazado",
	CaseStatusInReview: "En revisión",
}

// Label is the human-readable status; unknown statuses are returned verbatim.
func (s CaseStatus) Label() string {
	if l, ok := caseStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// IsClosedLabel reports whether a status label names a terminal status.
// Components downstream of the case bundle only see the label.
func IsClosedLabel(label string) bool {
	return label == caseStatusLabels[CaseStatusApproved] || label == caseStatusLabels[CaseStatusRejected]
}
