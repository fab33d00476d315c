// BYH Music Store | 2026
// navigator_test.go

package webui

import (
	"context"
	"errors"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubView struct {
	route   Route
	title   string
	content template.HTML
	err     error
	started chan struct{}
	release chan struct{}
}

func (v *stubView) Route() Route               { return v.route }
func (v *stubView) Title() string              { return v.title }
func (v *stubView) Placeholder() template.HTML { return loadingSlot }

func (v *stubView) Load(ctx context.Context) (template.HTML, error) {
	if v.started != nil {
		close(v.started)
	}
	if v.release != nil {
		<-v.release
	}
	return v.content, v.err
}

func TestParseRouteFallsBackToDashboard(t *testing.T) {
	assert.Equal(t, RouteDashboard, ParseRoute("no-such-view"))
	assert.Equal(t, RouteDashboard, ParseRoute(""))
	assert.Equal(t, RouteProductos, ParseRoute("productos"))
}

func TestMenuRouteHighlightsParentOfFormLeaf(t *testing.T) {
	assert.Equal(t, RouteProductos, RouteNuevoProducto.MenuRoute())
	assert.Equal(t, RoutePromociones, RouteNuevaPromocion.MenuRoute())
	assert.Equal(t, RouteBanners, RouteNuevoBanner.MenuRoute())
	assert.Equal(t, RouteClientes, RouteNuevoCliente.MenuRoute())
	assert.Equal(t, RouteDashboard, RouteDashboard.MenuRoute())
}

func TestNavigateUnknownRouteServesDashboard(t *testing.T) {
	dashboard := &stubView{
		route:   RouteDashboard,
		title:   "Dashboard",
		content: "<p>tiles</p>",
	}
	nav := NewNavigator(NewViewSet(dashboard))

	result := nav.Navigate(context.Background(), "whatever")

	require.NoError(t, result.Err)
	assert.Equal(t, RouteDashboard, result.Route)
	assert.Equal(t, StateLoaded, result.State)
	assert.Equal(t, template.HTML("<p>tiles</p>"), result.Content)
}

func TestNavigateErrorState(t *testing.T) {
	failing := &stubView{
		route:   RouteDashboard,
		title:   "Dashboard",
		content: "<div class=\"error-row\">boom</div>",
		err:     errors.New("boom"),
	}
	nav := NewNavigator(NewViewSet(failing))

	result := nav.Navigate(context.Background(), "dashboard")

	assert.Equal(t, StateError, result.State)
	require.Error(t, result.Err)
}

func TestStaleNavigationIsDiscarded(t *testing.T) {
	slow := &stubView{
		route:   RouteProductos,
		title:   "Productos",
		content: "<p>slow</p>",
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	fast := &stubView{
		route:   RoutePedidos,
		title:   "Pedidos",
		content: "<p>fast</p>",
	}
	nav := NewNavigator(NewViewSet(slow, fast))

	results := make(chan NavResult, 1)
	go func() {
		results <- nav.Navigate(context.Background(), "productos")
	}()

	// wait for the slow navigation to take its generation number
	<-slow.started

	fastResult := nav.Navigate(context.Background(), "pedidos")
	require.Equal(t, StateLoaded, fastResult.State)

	close(slow.release)
	slowResult := <-results

	assert.True(t, slowResult.Discarded)

	current := nav.Current()
	assert.Equal(t, RoutePedidos, current.Route)
	assert.Equal(t, template.HTML("<p>fast</p>"), current.Content)
}

func TestConcurrentSequencesDoNotSupersedeEachOther(t *testing.T) {
	slow := &stubView{
		route:   RouteProductos,
		title:   "Productos",
		content: "<p>slow</p>",
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	fast := &stubView{
		route:   RoutePedidos,
		title:   "Pedidos",
		content: "<p>fast</p>",
	}
	views := NewViewSet(slow, fast)

	// two clients, one Navigator each, sharing the registry
	navA := NewNavigator(views)
	navB := NewNavigator(views)

	results := make(chan NavResult, 1)
	go func() {
		results <- navA.Navigate(context.Background(), "productos")
	}()

	<-slow.started

	fastResult := navB.Navigate(context.Background(), "pedidos")
	require.Equal(t, StateLoaded, fastResult.State)

	close(slow.release)
	slowResult := <-results

	// client B finishing first must not discard client A's navigation
	// or swap its route for B's
	assert.False(t, slowResult.Discarded)
	assert.Equal(t, StateLoaded, slowResult.State)
	assert.Equal(t, RouteProductos, slowResult.Route)
	assert.Equal(t, template.HTML("<p>slow</p>"), slowResult.Content)
}

func TestNavigateTracksGenerations(t *testing.T) {
	view := &stubView{
		route:   RouteDashboard,
		title:   "Dashboard",
		content: "<p>ok</p>",
	}
	nav := NewNavigator(NewViewSet(view))

	first := nav.Navigate(context.Background(), "dashboard")
	second := nav.Navigate(context.Background(), "dashboard")

	assert.Greater(t, second.Generation, first.Generation)
}
