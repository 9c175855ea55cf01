package view

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"casedesk/internal/cases/models"
	"casedesk/internal/dashboard/client"
)

const componentCase = "case"

// ShellState is the state of the case dashboard.
type ShellState int

const (
	ShellLoading ShellState = iota
	ShellLoaded
	ShellError
)

// Tab is one of the three dashboard tabs.
type Tab string

const (
	TabSummary Tab = "RESUMEN"
	TabDetails Tab = "DETALLES"
	TabHistory Tab = "HISTORIAL"
)

// Tabs in display order.
var Tabs = []Tab{TabSummary, TabDetails, TabHistory}

// ParseTab accepts tab names in any case. Empty means the summary tab.
func ParseTab(s string) (Tab, bool) {
	if s == "" {
		return TabSummary, true
	}
	switch t := Tab(strings.ToUpper(s)); t {
	case TabSummary, TabDetails, TabHistory:
		return t, true
	}
	return "", false
}

// Options preset the local UI state of a dashboard, for example from URL
// query parameters.
type Options struct {
	Tab Tab
	// Expanded replaces the default open sections of the explainability card
	// unless nil. An empty non-nil slice collapses every section.
	Expanded           []Section
	CompletedExpanded  bool
	Document           string
	ExpandedValidation string
	Actor              ActorFilter
	ShowAllEvents      bool
	ExpandedEvent      string
}

// Dashboard is the shell of one case: it owns the selected case, the active
// tab and the components mounted for it.
type Dashboard struct {
	env      Env
	list     *CaseList
	loader   *Loader[*models.CaseBundle]
	navigate func(caseID string)

	mu                sync.Mutex
	ctx               context.Context
	mounted           bool
	caseID            string
	tab               Tab
	opts              Options
	completedExpanded bool
	explainability    *ExplainabilityCard
	details           *DetailsTab
	history           *HistoryTab
}

// NewDashboard builds the shell for caseID. navigate is called when another
// case is picked from the list.
func NewDashboard(env Env, caseID string, opts Options, navigate func(caseID string)) *Dashboard {
	if opts.Tab == "" {
		opts.Tab = TabSummary
	}
	d := &Dashboard{
		env:               env,
		loader:            newLoader[*models.CaseBundle](componentCase, env),
		navigate:          navigate,
		caseID:            caseID,
		tab:               opts.Tab,
		opts:              opts,
		completedExpanded: opts.CompletedExpanded,
	}
	d.list = NewCaseList(env, caseID, d.Select)
	d.loader.OnApply(func(bundle *models.CaseBundle, err error) {
		if err == nil && !validBundle(bundle) {
			err = client.ErrMalformed
		}
		d.env.record(componentCase, fetchOutcome(err, false))
		if err != nil {
			d.env.logger().Warn("case fetch failed", "case_id", d.CaseID(), "error", err)
			return
		}
		d.mu.Lock()
		defer d.mu.Unlock()
		d.mountTabLocked()
	})
	return d
}

// Mount fetches the case list and the selected case.
func (d *Dashboard) Mount(ctx context.Context) {
	d.mu.Lock()
	d.ctx = ctx
	d.mounted = true
	d.mu.Unlock()

	d.list.Mount(ctx)
	d.mountCase(ctx)
}

// Unmount tears down every component. Responses still in flight are
// discarded.
func (d *Dashboard) Unmount() {
	d.mu.Lock()
	d.mounted = false
	d.unmountTabLocked()
	d.mu.Unlock()

	d.loader.Unmount()
	d.list.Unmount()
}

// Wait blocks until the list, the case and the active tab have settled.
func (d *Dashboard) Wait(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return d.list.Wait(gctx) })
	g.Go(func() error {
		if err := d.loader.Wait(gctx); err != nil {
			return err
		}
		for _, w := range d.tabWaiters() {
			if err := w(gctx); err != nil {
				return err
			}
		}
		return nil
	})
	return g.Wait()
}

// Select switches the shell to another case. The previous case's fetches are
// cancelled and their late results ignored.
func (d *Dashboard) Select(caseID string) {
	d.mu.Lock()
	if caseID == d.caseID {
		d.mu.Unlock()
		return
	}
	d.caseID = caseID
	d.tab = TabSummary
	d.opts = Options{Tab: TabSummary}
	d.completedExpanded = false
	d.unmountTabLocked()
	ctx, mounted := d.ctx, d.mounted
	d.mu.Unlock()

	if mounted {
		d.mountCase(ctx)
	}
	if d.navigate != nil {
		d.navigate(caseID)
	}
}

// SetTab switches tabs without refetching the case.
func (d *Dashboard) SetTab(tab Tab) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if tab == d.tab {
		return
	}
	d.unmountTabLocked()
	d.tab = tab
	if state, _, _ := d.loader.Snapshot(); state == StateLoaded {
		d.mountTabLocked()
	}
}

// ToggleCompletedTasks opens or closes the completed tasks section.
func (d *Dashboard) ToggleCompletedTasks() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.completedExpanded = !d.completedExpanded
}

// CaseID returns the selected case.
func (d *Dashboard) CaseID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.caseID
}

// List returns the case list component.
func (d *Dashboard) List() *CaseList { return d.list }

// Explainability returns the explainability card while the summary tab is
// mounted.
func (d *Dashboard) Explainability() *ExplainabilityCard {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.explainability
}

// Details returns the details tab while it is mounted.
func (d *Dashboard) Details() *DetailsTab {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.details
}

// History returns the history tab while it is mounted.
func (d *Dashboard) History() *HistoryTab {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.history
}

// State returns the shell state. A malformed payload is an error like any
// failed fetch.
func (d *Dashboard) State() ShellState {
	state, bundle, _ := d.loader.Snapshot()
	switch state {
	case StateLoaded:
		if !validBundle(bundle) {
			return ShellError
		}
		return ShellLoaded
	case StateFailed:
		return ShellError
	default:
		return ShellLoading
	}
}

func validBundle(b *models.CaseBundle) bool {
	return b != nil && b.Case.Name != ""
}

func (d *Dashboard) mountCase(ctx context.Context) {
	caseID := d.CaseID()
	d.loader.Mount(ctx, func(ctx context.Context) (*models.CaseBundle, error) {
		return d.env.Fetcher.GetCase(ctx, caseID)
	})
}

// mountTabLocked mounts the components of the active tab. d.mu must be held.
func (d *Dashboard) mountTabLocked() {
	if !d.mounted {
		return
	}
	switch d.tab {
	case TabSummary:
		if d.explainability == nil {
			d.explainability = NewExplainabilityCard(d.env, d.caseID)
			if d.opts.Expanded != nil {
				d.explainability.SetExpanded(d.opts.Expanded...)
			}
			d.explainability.Mount(d.ctx)
		}
	case TabDetails:
		if d.details == nil {
			d.details = NewDetailsTab(d.env, d.caseID)
			d.details.SelectDocument(d.opts.Document)
			if d.opts.ExpandedValidation != "" {
				d.details.ToggleValidation(d.opts.ExpandedValidation)
			}
			d.details.Mount(d.ctx)
		}
	case TabHistory:
		if d.history == nil {
			d.history = NewHistoryTab(d.env, d.caseID)
			d.history.SetActor(d.opts.Actor)
			d.history.SetShowAll(d.opts.ShowAllEvents)
			if d.opts.ExpandedEvent != "" {
				d.history.ToggleEvent(d.opts.ExpandedEvent)
			}
			d.history.Mount(d.ctx)
		}
	}
}

// unmountTabLocked tears down every tab component. d.mu must be held.
func (d *Dashboard) unmountTabLocked() {
	if d.explainability != nil {
		d.explainability.Unmount()
		d.explainability = nil
	}
	if d.details != nil {
		d.details.Unmount()
		d.details = nil
	}
	if d.history != nil {
		d.history.Unmount()
		d.history = nil
	}
}

func (d *Dashboard) tabWaiters() []func(context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	var waiters []func(context.Context) error
	if d.explainability != nil {
		waiters = append(waiters, d.explainability.Wait)
	}
	if d.details != nil {
		waiters = append(waiters, d.details.Wait)
	}
	if d.history != nil {
		waiters = append(waiters, d.history.Wait)
	}
	return waiters
}

// TabView is one tab button.
type TabView struct {
	Tab    Tab
	Label  string
	Active bool
}

// DashboardView is the renderable state of the shell.
type DashboardView struct {
	State   ShellState
	Message string
	CaseID  string
	Cases   []CaseListItem

	Name        string
	StatusLabel string
	// Open is true while the case is neither approved nor rejected: the
	// header shows the pending marker and the Pending card is visible.
	Open bool
	Tab  Tab
	Tabs []TabView

	CaseData       CaseDataCard
	Pending        *PendingCard
	Tasks          TasksCard
	Explainability *ExplainabilityView
	Details        *DetailsView
	History        *HistoryView
}

// View renders the current state.
func (d *Dashboard) View() DashboardView {
	d.mu.Lock()
	caseID, tab, completed := d.caseID, d.tab, d.completedExpanded
	explainability, details, history := d.explainability, d.details, d.history
	d.mu.Unlock()

	v := DashboardView{State: d.State(), CaseID: caseID, Cases: d.list.Items(), Tab: tab}
	switch v.State {
	case ShellLoading:
		v.Message = "Cargando caso..."
		return v
	case ShellError:
		v.Message = "No se pudo cargar el caso"
		return v
	}

	_, bundle, _ := d.loader.Snapshot()
	loc := d.env.location()
	v.Name = bundle.Case.Name
	v.StatusLabel = bundle.Status
	v.Open = !models.IsClosedLabel(bundle.Status)
	for _, t := range Tabs {
		v.Tabs = append(v.Tabs, TabView{Tab: t, Label: string(t), Active: t == tab})
	}

	switch tab {
	case TabSummary:
		v.CaseData = NewCaseDataCard(bundle.CaseData)
		if v.Open {
			pending := NewPendingCard(bundle.PendingRequirements, bundle.ValidationIssues, loc)
			v.Pending = &pending
		}
		v.Tasks = NewTasksCard(bundle.Status, bundle.Tasks, completed, loc)
		if explainability != nil {
			ev := explainability.View()
			v.Explainability = &ev
		}
	case TabDetails:
		if details != nil {
			dv := details.View()
			v.Details = &dv
		}
	case TabHistory:
		if history != nil {
			hv := history.View()
			v.History = &hv
		}
	}
	return v
}
