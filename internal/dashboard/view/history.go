package view

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"casedesk/internal/cases/models"
	"casedesk/internal/dashboard/client"
)

const (
	componentAudit = "audit"

	// HistoryPageSize is the number of events shown before "Ver más".
	HistoryPageSize = 20
)

// ActorFilter restricts the history to one actor. The zero value shows all.
type ActorFilter string

const ActorAll ActorFilter = "all"

// ParseActorFilter accepts all, system, analyst and client.
func ParseActorFilter(s string) (ActorFilter, bool) {
	switch f := ActorFilter(s); f {
	case ActorAll, "":
		return ActorAll, true
	case ActorFilter(models.ActorSystem), ActorFilter(models.ActorAnalyst), ActorFilter(models.ActorClient):
		return f, true
	}
	return "", false
}

// SortEventsNewestFirst orders events by timestamp descending. Unparseable
// timestamps count as the zero time and sort last; ties keep input order.
func SortEventsNewestFirst(events []models.AuditEvent, loc *time.Location) {
	key := func(e models.AuditEvent) time.Time {
		t, _ := parseTimestamp(e.Timestamp, loc)
		return t
	}
	slices.SortStableFunc(events, func(a, b models.AuditEvent) int {
		return key(b).Compare(key(a))
	})
}

// HistoryTab is the audit timeline of a case.
type HistoryTab struct {
	env    Env
	caseID string
	loader *Loader[[]models.AuditEvent]

	mu            sync.Mutex
	actor         ActorFilter
	showAll       bool
	expandedEvent string
}

// NewHistoryTab builds the tab showing every actor.
func NewHistoryTab(env Env, caseID string) *HistoryTab {
	t := &HistoryTab{
		env:    env,
		caseID: caseID,
		loader: newLoader[[]models.AuditEvent](componentAudit, env),
		actor:  ActorAll,
	}
	t.loader.OnApply(func(events []models.AuditEvent, err error) {
		t.env.record(componentAudit, fetchOutcome(err, len(events) == 0))
		if err != nil && !errors.Is(err, client.ErrNotFound) {
			t.env.logger().Warn("audit fetch failed", "case_id", caseID, "error", err)
		}
	})
	return t
}

// Mount starts the fetch. Events are sorted before they are applied.
func (t *HistoryTab) Mount(ctx context.Context) {
	t.loader.Mount(ctx, func(ctx context.Context) ([]models.AuditEvent, error) {
		events, err := t.env.Fetcher.ListAuditEvents(ctx, t.caseID)
		if err != nil {
			return nil, err
		}
		SortEventsNewestFirst(events, t.env.location())
		return events, nil
	})
}

// Unmount cancels the fetch in flight.
func (t *HistoryTab) Unmount() { t.loader.Unmount() }

// Wait blocks until the fetch settled.
func (t *HistoryTab) Wait(ctx context.Context) error { return t.loader.Wait(ctx) }

// SetActor changes the actor filter.
func (t *HistoryTab) SetActor(f ActorFilter) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if f == "" {
		f = ActorAll
	}
	t.actor = f
}

// SetShowAll toggles between the first page and every filtered event.
func (t *HistoryTab) SetShowAll(all bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.showAll = all
}

// ToggleEvent expands eventID, collapsing any other event.
func (t *HistoryTab) ToggleEvent(eventID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.expandedEvent == eventID {
		t.expandedEvent = ""
		return
	}
	t.expandedEvent = eventID
}

// EventView is one timeline entry.
type EventView struct {
	ID              string
	Date            string
	Time            string
	Type            string
	Category        EventCategory
	Actor           models.Actor
	ActorLabel      string
	Summary         string
	Details         string
	RelatedDocument string
	Expanded        bool
}

// FilterChip is one actor filter button.
type FilterChip struct {
	Filter ActorFilter
	Label  string
	Active bool
}

// HistoryView is the renderable state of the tab.
type HistoryView struct {
	Loading  bool
	Message  string
	Title    string
	Filters  []FilterChip
	Actor    ActorFilter
	Events   []EventView
	ShowAll  bool
	ShowMore string
	ShowLess string
}

var filterChips = []FilterChip{
	{Filter: ActorAll, Label: "Todos"},
	{Filter: ActorFilter(models.ActorSystem), Label: "Sistema"},
	{Filter: ActorFilter(models.ActorAnalyst), Label: "Analista"},
	{Filter: ActorFilter(models.ActorClient), Label: "Cliente"},
}

// View renders the current state.
func (t *HistoryTab) View() HistoryView {
	state, events, _ := t.loader.Snapshot()
	if state == StateLoading || state == StateIdle {
		return HistoryView{Loading: true, Message: "Cargando historial..."}
	}
	if len(events) == 0 {
		return HistoryView{Message: "No hay eventos de auditoría disponibles para este caso."}
	}

	t.mu.Lock()
	actor, showAll, expanded := t.actor, t.showAll, t.expandedEvent
	t.mu.Unlock()

	v := HistoryView{Title: "Historial de auditoría", Actor: actor, ShowAll: showAll}
	for _, chip := range filterChips {
		chip.Active = chip.Filter == actor
		v.Filters = append(v.Filters, chip)
	}

	filtered := events
	if actor != ActorAll {
		filtered = make([]models.AuditEvent, 0, len(events))
		for _, e := range events {
			if ActorFilter(e.Actor) == actor {
				filtered = append(filtered, e)
			}
		}
	}

	displayed := filtered
	if !showAll && len(filtered) > HistoryPageSize {
		displayed = filtered[:HistoryPageSize]
	}
	if len(filtered) > HistoryPageSize {
		if showAll {
			v.ShowLess = "Ver menos"
		} else {
			v.ShowMore = fmt.Sprintf("Ver más (%d eventos adicionales)", len(filtered)-HistoryPageSize)
		}
	}

	loc := t.env.location()
	for _, e := range displayed {
		ev := EventView{
			ID:         e.ID,
			Date:       FormatDate(e.Timestamp, loc),
			Time:       FormatTime(e.Timestamp, loc),
			Type:       e.Type,
			Category:   CategorizeEvent(e.Type),
			Actor:      e.Actor,
			ActorLabel: ActorLabel(e.Actor),
			Summary:    e.Summary,
			Details:    e.Details,
			Expanded:   e.Details != "" && e.ID == expanded,
		}
		if e.RelatedDocumentID != "" {
			ev.RelatedDocument = "Documento relacionado: " + e.RelatedDocumentID
		}
		v.Events = append(v.Events, ev)
	}
	return v
}
