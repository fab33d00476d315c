// BYH Music Store | 2026
// route.go

package webui

// Route is the closed set of admin panel destinations. There is no string
// registry: an unknown name simply resolves to the dashboard.
type Route string

const (
	RouteDashboard      Route = "dashboard"
	RouteProductos      Route = "productos"
	RouteNuevoProducto  Route = "nuevo-producto"
	RoutePedidos        Route = "pedidos"
	RoutePromociones    Route = "promociones"
	RouteNuevaPromocion Route = "nueva-promocion"
	RouteBanners        Route = "banners"
	RouteNuevoBanner    Route = "nuevo-banner"
	RouteClientes       Route = "clientes"
	RouteNuevoCliente   Route = "nuevo-cliente"
	RouteConfiguracion  Route = "configuracion"
)

var routes = map[Route]struct{}{
	RouteDashboard:      {},
	RouteProductos:      {},
	RouteNuevoProducto:  {},
	RoutePedidos:        {},
	RoutePromociones:    {},
	RouteNuevaPromocion: {},
	RouteBanners:        {},
	RouteNuevoBanner:    {},
	RouteClientes:       {},
	RouteNuevoCliente:   {},
	RouteConfiguracion:  {},
}

// parents maps each form leaf to the listing it belongs to; the listing's
// menu entry stays highlighted while the form is open.
var parents = map[Route]Route{
	RouteNuevoProducto:  RouteProductos,
	RouteNuevaPromocion: RoutePromociones,
	RouteNuevoBanner:    RouteBanners,
	RouteNuevoCliente:   RouteClientes,
}

// ParseRoute resolves a navigation target. Unknown names are not an
// error; they self-correct to the dashboard.
func ParseRoute(name string) Route {
	r := Route(name)
	if _, ok := routes[r]; !ok {
		return RouteDashboard
	}
	return r
}

// MenuRoute returns the route whose sidebar entry should be active: the
// route itself, or its parent listing when the route is a form leaf.
func (r Route) MenuRoute() Route {
	if parent, ok := parents[r]; ok {
		return parent
	}
	return r
}

func (r Route) String() string {
	return string(r)
}

// MenuEntry drives the sidebar; the order here is the render order.
type MenuEntry struct {
	Route Route
	Label string
}

func MenuEntries() []MenuEntry {
	return []MenuEntry{
		{RouteDashboard, "Dashboard"},
		{RouteProductos, "Productos"},
		{RoutePedidos, "Pedidos"},
		{RoutePromociones, "Promociones"},
		{RouteBanners, "Banners"},
		{RouteClientes, "Clientes"},
		{RouteConfiguracion, "Configuración"},
	}
}
