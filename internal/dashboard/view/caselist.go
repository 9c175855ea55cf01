package view

import (
	"context"
	"sync"

	"casedesk/internal/cases/models"
)

const componentCaseList = "case_list"

// CaseListItem is one entry of the case list.
type CaseListItem struct {
	ID          string
	Name        string
	Status      models.CaseStatus
	StatusLabel string
	Selected    bool
}

// CaseList fetches every case once per mount. Fetch failures show an empty
// list.
type CaseList struct {
	env    Env
	loader *Loader[[]models.Case]

	mu       sync.Mutex
	selected string
	onSelect func(caseID string)
}

// NewCaseList builds the list. onSelect is called when the user picks a case.
func NewCaseList(env Env, selected string, onSelect func(caseID string)) *CaseList {
	l := &CaseList{
		env:      env,
		loader:   newLoader[[]models.Case](componentCaseList, env),
		selected: selected,
		onSelect: onSelect,
	}
	l.loader.OnApply(func(cases []models.Case, err error) {
		l.env.record(componentCaseList, fetchOutcome(err, len(cases) == 0))
		if err != nil {
			l.env.logger().Warn("case list fetch failed", "error", err)
		}
	})
	return l
}

// Mount starts the fetch.
func (l *CaseList) Mount(ctx context.Context) {
	l.loader.Mount(ctx, l.env.Fetcher.ListCases)
}

// Unmount cancels the fetch in flight.
func (l *CaseList) Unmount() { l.loader.Unmount() }

// Wait blocks until the fetch settled.
func (l *CaseList) Wait(ctx context.Context) error { return l.loader.Wait(ctx) }

// Loading reports whether the first fetch is still running.
func (l *CaseList) Loading() bool {
	state, _, _ := l.loader.Snapshot()
	return state == StateLoading
}

// Items returns the list with localized badges.
func (l *CaseList) Items() []CaseListItem {
	_, cases, _ := l.loader.Snapshot()

	l.mu.Lock()
	selected := l.selected
	l.mu.Unlock()

	items := make([]CaseListItem, len(cases))
	for i, c := range cases {
		items[i] = CaseListItem{
			ID:          c.ID,
			Name:        c.Name,
			Status:      c.Status,
			StatusLabel: c.Status.Label(),
			Selected:    c.ID == selected,
		}
	}
	return items
}

// Select marks caseID as selected and notifies the shell.
func (l *CaseList) Select(caseID string) {
	l.mu.Lock()
	l.selected = caseID
	onSelect := l.onSelect
	l.mu.Unlock()

	if onSelect != nil {
		onSelect(caseID)
	}
}
