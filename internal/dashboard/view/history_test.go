package view

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"casedesk/internal/cases/models"
	"casedesk/internal/dashboard/client"
	"casedesk/internal/dashboard/view/mocks"
)

func mountedHistory(t *testing.T, events []models.AuditEvent, err error) *HistoryTab {
	t.Helper()
	fetcher := mocks.NewMockCaseFetcher(gomock.NewController(t))
	fetcher.EXPECT().ListAuditEvents(gomock.Any(), "1001").Return(events, err)

	tab := NewHistoryTab(Env{Fetcher: fetcher, Location: time.UTC}, "1001")
	tab.Mount(context.Background())
	require.NoError(t, tab.Wait(context.Background()))
	return tab
}

func manyEvents(n int) []models.AuditEvent {
	base := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	events := make([]models.AuditEvent, n)
	for i := range events {
		actor := models.ActorSystem
		if i%2 == 1 {
			actor = models.ActorAnalyst
		}
		events[i] = models.AuditEvent{
			ID:        fmt.Sprintf("e%02d", i),
			Timestamp: base.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
			Type:      "Validación automática",
			Actor:     actor,
			Summary:   fmt.Sprintf("evento %d", i),
		}
	}
	return events
}

func TestSortEventsNewestFirst(t *testing.T) {
	events := []models.AuditEvent{
		{ID: "old", Timestamp: "2024-04-01T10:00:00Z"},
		{ID: "broken", Timestamp: "ayer"},
		{ID: "new", Timestamp: "2024-04-03T10:00:00Z"},
		{ID: "tie-a", Timestamp: "2024-04-02T10:00:00Z"},
		{ID: "tie-b", Timestamp: "2024-04-02T10:00:00Z"},
	}
	SortEventsNewestFirst(events, time.UTC)

	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"new", "tie-a", "tie-b", "old", "broken"}, ids)
}

func TestHistoryTabSortsOnLoad(t *testing.T) {
	tab := mountedHistory(t, manyEvents(3), nil)

	v := tab.View()
	require.Len(t, v.Events, 3)
	assert.Equal(t, "e02", v.Events[0].ID)
	assert.Equal(t, "e00", v.Events[2].ID)
	assert.Equal(t, "01/04/2024", v.Events[2].Date)
	assert.Equal(t, "09:00", v.Events[2].Time)
	assert.Equal(t, EventValidation, v.Events[0].Category)
	assert.Equal(t, "Historial de auditoría", v.Title)
}

func TestHistoryTabPaging(t *testing.T) {
	tab := mountedHistory(t, manyEvents(25), nil)

	v := tab.View()
	assert.Len(t, v.Events, HistoryPageSize)
	assert.Equal(t, "Ver más (5 eventos adicionales)", v.ShowMore)
	assert.Empty(t, v.ShowLess)

	tab.SetShowAll(true)
	v = tab.View()
	assert.Len(t, v.Events, 25)
	assert.Empty(t, v.ShowMore)
	assert.Equal(t, "Ver menos", v.ShowLess)
}

func TestHistoryTabActorFilter(t *testing.T) {
	tab := mountedHistory(t, manyEvents(25), nil)

	tab.SetActor(ActorFilter(models.ActorAnalyst))
	v := tab.View()
	assert.Len(t, v.Events, 12)
	assert.Empty(t, v.ShowMore, "paging applies to the filtered list")
	for _, e := range v.Events {
		assert.Equal(t, models.ActorAnalyst, e.Actor)
		assert.Equal(t, "Analista", e.ActorLabel)
	}
	active := 0
	for _, chip := range v.Filters {
		if chip.Active {
			active++
			assert.Equal(t, "Analista", chip.Label)
		}
	}
	assert.Equal(t, 1, active)

	tab.SetActor(ActorFilter(models.ActorClient))
	assert.Empty(t, tab.View().Events)
}

func TestHistoryTabExpandEvent(t *testing.T) {
	events := []models.AuditEvent{
		{ID: "e1", Timestamp: "2024-04-02T10:00:00Z", Type: "Documento cargado", Actor: models.ActorClient,
			Summary: "Subió DNI", Details: "Frente y dorso", RelatedDocumentID: "doc-1"},
		{ID: "e2", Timestamp: "2024-04-01T10:00:00Z", Type: "Comentario", Actor: models.ActorAnalyst,
			Summary: "Nota"},
	}
	tab := mountedHistory(t, events, nil)

	tab.ToggleEvent("e1")
	v := tab.View()
	assert.True(t, v.Events[0].Expanded)
	assert.Equal(t, "Documento relacionado: doc-1", v.Events[0].RelatedDocument)

	tab.ToggleEvent("e2")
	v = tab.View()
	assert.False(t, v.Events[0].Expanded)
	assert.False(t, v.Events[1].Expanded, "events without details never expand")

	tab.ToggleEvent("e2")
	tab.ToggleEvent("e1")
	tab.ToggleEvent("e1")
	assert.False(t, tab.View().Events[0].Expanded)
}

func TestHistoryTabEmptyAndFailed(t *testing.T) {
	const empty = "No hay eventos de auditoría disponibles para este caso."

	assert.Equal(t, empty, mountedHistory(t, []models.AuditEvent{}, nil).View().Message)
	assert.Equal(t, empty, mountedHistory(t, nil, client.ErrTransport).View().Message)
}

func TestParseActorFilter(t *testing.T) {
	f, ok := ParseActorFilter("")
	assert.True(t, ok)
	assert.Equal(t, ActorAll, f)

	f, ok = ParseActorFilter("client")
	assert.True(t, ok)
	assert.Equal(t, ActorFilter(models.ActorClient), f)

	_, ok = ParseActorFilter("robot")
	assert.False(t, ok)
}
