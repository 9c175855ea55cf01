package view

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"casedesk/internal/cases/models"
	"casedesk/internal/dashboard/client"
	"casedesk/internal/dashboard/view/mocks"
)

type DashboardSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	fetcher *mocks.MockCaseFetcher
	env     Env
}

func TestDashboardSuite(t *testing.T) {
	suite.Run(t, new(DashboardSuite))
}

func (s *DashboardSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.fetcher = mocks.NewMockCaseFetcher(s.ctrl)
	s.env = Env{Fetcher: s.fetcher, Location: time.UTC}
}

var dashboardCases = []models.Case{
	{ID: "1001", Name: "Juan Pérez", Status: models.CaseStatusPending},
	{ID: "1002", Name: "María Gómez", Status: models.CaseStatusApproved},
}

func bundleFor(c models.Case) *models.CaseBundle {
	return &models.CaseBundle{
		Case:   c,
		Status: c.Status.Label(),
		PendingRequirements: []models.PendingRequirement{
			{ID: "r1", DocType: "Extracto bancario", Reason: "Últimos 3 meses"},
		},
		Tasks: []models.Task{
			{ID: "t1", Title: "Verificar identidad", Status: models.TaskDone, Timestamp: "2024-04-10T12:30:00Z"},
			{ID: "t2", Title: "Revisar extracto", Status: models.TaskTodo},
		},
		PendingItems:     []models.PendingItem{},
		ValidationIssues: []models.ValidationIssue{},
	}
}

func (s *DashboardSuite) expectList() {
	s.fetcher.EXPECT().ListCases(gomock.Any()).Return(dashboardCases, nil)
}

func (s *DashboardSuite) mountAndWait(d *Dashboard) {
	d.Mount(context.Background())
	s.Require().NoError(d.Wait(context.Background()))
}

func (s *DashboardSuite) TestLoadsSummaryTab() {
	s.expectList()
	s.fetcher.EXPECT().GetCase(gomock.Any(), "1001").Return(bundleFor(dashboardCases[0]), nil)
	s.fetcher.EXPECT().GetExplainability(gomock.Any(), "1001").Return(reviewRequiredData(), nil)

	d := NewDashboard(s.env, "1001", Options{}, nil)
	s.mountAndWait(d)
	defer d.Unmount()

	v := d.View()
	s.Equal(ShellLoaded, v.State)
	s.Equal("Juan Pérez", v.Name)
	s.Equal("Pendiente", v.StatusLabel)
	s.True(v.Open)
	s.Equal(TabSummary, v.Tab)
	s.Require().Len(v.Tabs, 3)
	s.True(v.Tabs[0].Active)
	s.Require().Len(v.Cases, 2)
	s.True(v.Cases[0].Selected)
	s.Equal("Aprobado", v.Cases[1].StatusLabel)

	s.Require().NotNil(v.Pending)
	s.Equal("Pendientes (1)", v.Pending.Title)
	s.Equal("Tareas", v.Tasks.Title)
	s.Require().NotNil(v.Explainability)
	s.Equal(CardLoaded, v.Explainability.State)
}

func (s *DashboardSuite) TestClosedCaseHidesPending() {
	s.expectList()
	s.fetcher.EXPECT().GetCase(gomock.Any(), "1002").Return(bundleFor(dashboardCases[1]), nil)
	s.fetcher.EXPECT().GetExplainability(gomock.Any(), "1002").Return(reviewRequiredData(), nil)

	d := NewDashboard(s.env, "1002", Options{}, nil)
	s.mountAndWait(d)
	defer d.Unmount()

	v := d.View()
	s.False(v.Open)
	s.Nil(v.Pending)
	s.Equal("Historial de tareas", v.Tasks.Title)
	s.Len(v.Tasks.VisibleCompleted(), 1)
}

func (s *DashboardSuite) TestErrorStates() {
	tests := []struct {
		name   string
		bundle *models.CaseBundle
		err    error
	}{
		{"not found", nil, &client.StatusError{Path: "/cases/9999", StatusCode: 404}},
		{"transport", nil, client.ErrTransport},
		{"missing name", &models.CaseBundle{Case: models.Case{ID: "9999"}}, nil},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.expectList()
			s.fetcher.EXPECT().GetCase(gomock.Any(), "9999").Return(tt.bundle, tt.err)

			d := NewDashboard(s.env, "9999", Options{}, nil)
			s.mountAndWait(d)
			defer d.Unmount()

			v := d.View()
			s.Equal(ShellError, v.State)
			s.Equal("No se pudo cargar el caso", v.Message)
			s.Nil(d.Explainability(), "no tab is mounted for a failed case")
		})
	}
}

func (s *DashboardSuite) TestLoadingState() {
	release := make(chan struct{})
	s.expectList()
	s.fetcher.EXPECT().GetCase(gomock.Any(), "1001").DoAndReturn(
		func(ctx context.Context, _ string) (*models.CaseBundle, error) {
			<-release
			return bundleFor(dashboardCases[0]), nil
		})

	d := NewDashboard(s.env, "1001", Options{}, nil)
	d.Mount(context.Background())

	v := d.View()
	s.Equal(ShellLoading, v.State)
	s.Equal("Cargando caso...", v.Message)

	d.Unmount()
	close(release)
	s.Require().NoError(d.Wait(context.Background()))
	s.Equal(ShellLoading, d.State(), "a result arriving after unmount is ignored")
}

func (s *DashboardSuite) TestTabSwitchDoesNotRefetchTheCase() {
	s.expectList()
	s.fetcher.EXPECT().GetCase(gomock.Any(), "1001").Return(bundleFor(dashboardCases[0]), nil).Times(1)
	s.fetcher.EXPECT().GetExplainability(gomock.Any(), "1001").Return(reviewRequiredData(), nil).Times(2)
	s.fetcher.EXPECT().ListAuditEvents(gomock.Any(), "1001").Return(manyEvents(3), nil)

	d := NewDashboard(s.env, "1001", Options{}, nil)
	s.mountAndWait(d)
	defer d.Unmount()

	d.SetTab(TabHistory)
	s.Require().NoError(d.Wait(context.Background()))
	v := d.View()
	s.Equal(TabHistory, v.Tab)
	s.Require().NotNil(v.History)
	s.Len(v.History.Events, 3)
	s.Nil(d.Explainability(), "the summary tab is unmounted")

	d.SetTab(TabSummary)
	s.Require().NoError(d.Wait(context.Background()))
	s.Nil(d.History())
	s.Equal(CardLoaded, d.View().Explainability.State)
}

func (s *DashboardSuite) TestOptionsPresetTheTab() {
	s.expectList()
	s.fetcher.EXPECT().GetCase(gomock.Any(), "1001").Return(bundleFor(dashboardCases[0]), nil)
	s.fetcher.EXPECT().ListDocuments(gomock.Any(), "1001").Return(sampleDocuments(), nil)

	d := NewDashboard(s.env, "1001", Options{Tab: TabDetails, Document: "doc-2"}, nil)
	s.mountAndWait(d)
	defer d.Unmount()

	v := d.View()
	s.Require().NotNil(v.Details)
	s.Equal("doc-2", v.Details.Selected.ID)
}

func (s *DashboardSuite) TestSelectDiscardsThePreviousCase() {
	release := make(chan struct{})
	s.expectList()
	s.fetcher.EXPECT().GetCase(gomock.Any(), "1001").DoAndReturn(
		func(ctx context.Context, _ string) (*models.CaseBundle, error) {
			<-release
			return bundleFor(dashboardCases[0]), nil
		})
	s.fetcher.EXPECT().GetCase(gomock.Any(), "1002").Return(bundleFor(dashboardCases[1]), nil)
	s.fetcher.EXPECT().GetExplainability(gomock.Any(), "1002").Return(reviewRequiredData(), nil)

	var navigated []string
	d := NewDashboard(s.env, "1001", Options{}, func(id string) { navigated = append(navigated, id) })
	d.Mount(context.Background())
	defer d.Unmount()

	d.List().Select("1002")
	s.Require().NoError(d.Wait(context.Background()))
	close(release)

	// The stale 1001 result settles after 1002 was applied.
	time.Sleep(10 * time.Millisecond)

	v := d.View()
	s.Equal("1002", v.CaseID)
	s.Equal("María Gómez", v.Name)
	s.Equal([]string{"1002"}, navigated)
}

func (s *DashboardSuite) TestToggleCompletedTasks() {
	s.expectList()
	s.fetcher.EXPECT().GetCase(gomock.Any(), "1001").Return(bundleFor(dashboardCases[0]), nil)
	s.fetcher.EXPECT().GetExplainability(gomock.Any(), "1001").Return(reviewRequiredData(), nil)

	d := NewDashboard(s.env, "1001", Options{}, nil)
	s.mountAndWait(d)
	defer d.Unmount()

	s.Empty(d.View().Tasks.VisibleCompleted())
	d.ToggleCompletedTasks()
	s.Len(d.View().Tasks.VisibleCompleted(), 1)
}

func (s *DashboardSuite) TestParseTab() {
	tab, ok := ParseTab("historial")
	s.True(ok)
	s.Equal(TabHistory, tab)

	_, ok = ParseTab("otro")
	s.False(ok)
}
