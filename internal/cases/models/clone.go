package models

import (
	"maps"
	"slices"
)

// Clone returns an independent copy of the record.
func (r CaseRecord) Clone() CaseRecord {
	if r.CaseData != nil {
		cd := *r.CaseData
		r.CaseData = &cd
	}
	return r
}

// Clone returns a deep copy of the detail so callers never share slices or
// maps with the fixture store.
func (d *CaseDetail) Clone() *CaseDetail {
	if d == nil {
		return nil
	}
	out := *d
	out.AutomaticValidations = slices.Clone(d.AutomaticValidations)
	out.OCR = slices.Clone(d.OCR)
	out.PendingItems = slices.Clone(d.PendingItems)
	out.PendingRequirements = slices.Clone(d.PendingRequirements)
	out.ValidationIssues = slices.Clone(d.ValidationIssues)
	out.Tasks = slices.Clone(d.Tasks)
	out.AuditEvents = slices.Clone(d.AuditEvents)
	if d.Documents != nil {
		out.Documents = make([]Document, len(d.Documents))
		for i, doc := range d.Documents {
			out.Documents[i] = doc.Clone()
		}
	}
	return &out
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	d.ExtractedFields = maps.Clone(d.ExtractedFields)
	d.Validations = slices.Clone(d.Validations)
	return d
}
