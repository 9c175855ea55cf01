package web

import (
	"net/url"
	"slices"
	"strings"

	"casedesk/internal/dashboard/view"
	platformstrings "casedesk/pkg/platform/strings"
)

// Query parameters carrying the local UI state of a case page.
const (
	paramTab        = "tab"
	paramExpand     = "expand"
	paramCompleted  = "completed"
	paramDocument   = "doc"
	paramValidation = "validation"
	paramActor      = "actor"
	paramAll        = "all"
	paramEvent      = "event"
)

// parseOptions turns query parameters into dashboard options. Unknown values
// are ignored.
func parseOptions(q url.Values) view.Options {
	opts := view.Options{
		CompletedExpanded:  q.Get(paramCompleted) == "1",
		Document:           q.Get(paramDocument),
		ExpandedValidation: q.Get(paramValidation),
		ShowAllEvents:      q.Get(paramAll) == "1",
		ExpandedEvent:      q.Get(paramEvent),
	}
	if tab, ok := view.ParseTab(q.Get(paramTab)); ok {
		opts.Tab = tab
	}
	if actor, ok := view.ParseActorFilter(q.Get(paramActor)); ok {
		opts.Actor = actor
	}
	if values, ok := q[paramExpand]; ok {
		opts.Expanded = []view.Section{}
		for _, part := range platformstrings.SplitList(values...) {
			if sec, ok := view.ParseSection(part); ok {
				opts.Expanded = append(opts.Expanded, sec)
			}
		}
	}
	return opts
}

// links builds the URLs of a case page that change one piece of UI state and
// keep the rest.
type links struct {
	caseID   string
	query    url.Values
	expanded []view.Section
}

func newLinks(caseID string, query url.Values, expanded []view.Section) links {
	return links{caseID: caseID, query: query, expanded: expanded}
}

func (l links) base() string {
	return "/cases/" + url.PathEscape(l.caseID)
}

func (l links) with(set map[string][]string) string {
	q := url.Values{}
	for k, v := range l.query {
		q[k] = slices.Clone(v)
	}
	for k, v := range set {
		if len(v) == 0 {
			q.Del(k)
			continue
		}
		q[k] = v
	}
	if len(q) == 0 {
		return l.base()
	}
	return l.base() + "?" + q.Encode()
}

// toggled returns value unless current already equals it.
func toggled(current, value string) []string {
	if current == value {
		return nil
	}
	return []string{value}
}

// Tab switches tabs. State of the other tabs is dropped.
func (l links) Tab(tab string) string {
	q := url.Values{}
	for _, k := range []string{paramExpand, paramCompleted} {
		if v, ok := l.query[k]; ok {
			q[k] = slices.Clone(v)
		}
	}
	if t, ok := view.ParseTab(tab); ok && t != view.TabSummary {
		q.Set(paramTab, strings.ToLower(string(t)))
	}
	if len(q) == 0 {
		return l.base()
	}
	return l.base() + "?" + q.Encode()
}

// ToggleSection opens or closes one explainability section.
func (l links) ToggleSection(section string) string {
	sec, ok := view.ParseSection(section)
	if !ok {
		return l.with(nil)
	}
	next := make([]string, 0, len(l.expanded)+1)
	found := false
	for _, s := range l.expanded {
		if s == sec {
			found = true
			continue
		}
		next = append(next, string(s))
	}
	if !found {
		next = append(next, string(sec))
	}
	if len(next) == 0 {
		next = []string{""}
	}
	return l.with(map[string][]string{paramExpand: {strings.Join(next, ",")}})
}

// ToggleCompleted opens or closes the completed tasks.
func (l links) ToggleCompleted() string {
	return l.with(map[string][]string{paramCompleted: toggled(l.query.Get(paramCompleted), "1")})
}

// Document selects a document and collapses its validations.
func (l links) Document(docID string) string {
	return l.with(map[string][]string{paramDocument: {docID}, paramValidation: nil})
}

// Validation expands or collapses a document validation.
func (l links) Validation(validationID string) string {
	return l.with(map[string][]string{paramValidation: toggled(l.query.Get(paramValidation), validationID)})
}

// Actor changes the history filter and goes back to the first page.
func (l links) Actor(actor string) string {
	if actor == string(view.ActorAll) {
		actor = ""
	}
	set := map[string][]string{paramAll: nil, paramEvent: nil, paramActor: nil}
	if actor != "" {
		set[paramActor] = []string{actor}
	}
	return l.with(set)
}

// ShowAll shows every event or only the first page.
func (l links) ShowAll(all bool) string {
	if all {
		return l.with(map[string][]string{paramAll: {"1"}})
	}
	return l.with(map[string][]string{paramAll: nil})
}

// Event expands or collapses one audit event.
func (l links) Event(eventID string) string {
	return l.with(map[string][]string{paramEvent: toggled(l.query.Get(paramEvent), eventID)})
}

// Summary is the plain-text explainability summary.
func (l links) Summary() string {
	return l.base() + "/summary.txt"
}
