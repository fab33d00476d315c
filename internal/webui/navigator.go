// BYH Music Store | 2026
// navigator.go

package webui

import (
	"context"
	"html/template"
	"sync"
)

type LoadState int

const (
	StateUnloaded LoadState = iota
	StateLoading
	StateLoaded
	StateError
)

// NavResult is what one navigation produced. Discarded results belong to a
// navigation that was superseded before its load finished; their content
// must not be shown.
type NavResult struct {
	Route      Route
	ActiveMenu Route
	Title      string
	State      LoadState
	Content    template.HTML
	Err        error
	Generation uint64
	Discarded  bool
}

// ViewSet is the immutable route-to-view registry shared by every
// navigation sequence.
type ViewSet struct {
	views map[Route]View
}

func NewViewSet(views ...View) *ViewSet {
	registered := make(map[Route]View, len(views))
	for _, v := range views {
		registered[v.Route()] = v
	}
	return &ViewSet{views: registered}
}

// Resolve maps a raw route name to its view, falling back to the
// dashboard for unknown names.
func (s *ViewSet) Resolve(name string) (Route, View) {
	route := ParseRoute(name)
	view, ok := s.views[route]
	if !ok {
		route = RouteDashboard
		view = s.views[route]
	}
	return route, view
}

// FormFor returns the form view for a route name if the resolved view
// accepts submissions.
func (s *ViewSet) FormFor(name string) (Route, FormView, bool) {
	route, view := s.Resolve(name)
	form, ok := view.(FormView)
	return route, form, ok
}

// Navigator sequences the navigations of ONE client. Each navigation
// takes the next generation number; a load that finishes after a newer
// navigation in the same sequence started is discarded instead of
// clobbering the newer view's result. Sequences are independent: a
// concurrent client never supersedes this one, so anything serving
// multiple clients needs one Navigator per client, never a shared one.
type Navigator struct {
	mu         sync.Mutex
	views      *ViewSet
	generation uint64
	current    NavResult
}

func NewNavigator(views *ViewSet) *Navigator {
	return &Navigator{views: views}
}

// Navigate runs a full navigation: placeholder state, load, then loaded or
// error. The returned result is marked Discarded when a newer navigation
// in this sequence won the race.
func (n *Navigator) Navigate(ctx context.Context, name string) NavResult {
	route, view := n.views.Resolve(name)
	if view == nil {
		return NavResult{Route: route, ActiveMenu: route.MenuRoute()}
	}

	n.mu.Lock()
	n.generation++
	generation := n.generation
	n.current = NavResult{
		Route:      route,
		ActiveMenu: route.MenuRoute(),
		Title:      view.Title(),
		State:      StateLoading,
		Content:    view.Placeholder(),
		Generation: generation,
	}
	n.mu.Unlock()

	content, err := view.Load(ctx)

	n.mu.Lock()
	defer n.mu.Unlock()

	result := NavResult{
		Route:      route,
		ActiveMenu: route.MenuRoute(),
		Title:      view.Title(),
		Content:    content,
		Generation: generation,
	}
	if err != nil {
		result.State = StateError
		result.Err = err
	} else {
		result.State = StateLoaded
	}

	if generation != n.generation {
		result.Discarded = true
		return result
	}

	n.current = result
	return result
}

// Current returns the latest non-discarded outcome of this sequence.
func (n *Navigator) Current() NavResult {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
