// Package fixtures is the read-only store of case and case-detail records.
//
// The store is filled once from a Source and never mutated afterwards, so it
// needs no locking. Every accessor hands out a deep copy.
package fixtures

import (
	"context"
	"fmt"

	"casedesk/internal/cases/models"
	"casedesk/pkg/platform/sentinel"
)

// Store holds the loaded fixture collections.
type Store struct {
	source  string
	cases   []models.CaseRecord
	index   map[string]int
	details map[string]*models.CaseDetail
}

// Load reads the snapshot from src and validates it. Case identifiers must be
// unique and statuses must be one of the four known values.
func Load(ctx context.Context, src Source) (*Store, error) {
	snap, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load fixtures from %s: %w", src.Name(), err)
	}
	return New(src.Name(), snap)
}

// New builds a store from an in-memory snapshot.
func New(name string, snap *Snapshot) (*Store, error) {
	s := &Store{
		source:  name,
		cases:   make([]models.CaseRecord, 0, len(snap.Cases)),
		index:   make(map[string]int, len(snap.Cases)),
		details: make(map[string]*models.CaseDetail, len(snap.Details)),
	}
	for _, rec := range snap.Cases {
		if rec.ID == "" {
			return nil, fmt.Errorf("case without id: %w", sentinel.ErrMalformed)
		}
		if _, dup := s.index[rec.ID]; dup {
			return nil, fmt.Errorf("duplicate case id %q: %w", rec.ID, sentinel.ErrMalformed)
		}
		if !rec.Status.IsValid() {
			return nil, fmt.Errorf("case %q has unknown status %q: %w", rec.ID, rec.Status, sentinel.ErrMalformed)
		}
		s.index[rec.ID] = len(s.cases)
		s.cases = append(s.cases, rec.Clone())
	}
	for id, detail := range snap.Details {
		if detail == nil {
			continue
		}
		s.details[id] = detail.Clone()
	}
	return s, nil
}

// Source names where the fixtures came from.
func (s *Store) Source() string { return s.source }

// Len is the number of cases.
func (s *Store) Len() int { return len(s.cases) }

// DetailCount is the number of detail records.
func (s *Store) DetailCount() int { return len(s.details) }

// Cases returns every case record in fixture order.
func (s *Store) Cases() []models.CaseRecord {
	out := make([]models.CaseRecord, len(s.cases))
	for i, rec := range s.cases {
		out[i] = rec.Clone()
	}
	return out
}

// Case returns the record for caseID or sentinel.ErrNotFound.
func (s *Store) Case(caseID string) (models.CaseRecord, error) {
	i, ok := s.index[caseID]
	if !ok {
		return models.CaseRecord{}, sentinel.ErrNotFound
	}
	return s.cases[i].Clone(), nil
}

// Detail returns the detail for caseID or sentinel.ErrNotFound. A detail may
// exist in the fixtures for an identifier that has no case record; callers
// look up the case first.
func (s *Store) Detail(caseID string) (*models.CaseDetail, error) {
	d, ok := s.details[caseID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return d.Clone(), nil
}
