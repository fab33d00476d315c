// BYH Music Store | 2026
// views_list.go

package webui

import (
	"context"
	"html/template"
	"net/url"

	"github.com/byhstore/byh-store/internal/apiclient"
)

var (
	dashboardTmpl = template.Must(template.New("dashboard").Parse(`
<div class="tiles">
  <div class="tile"><span class="tile-num">{{.Counts.products}}</span> Productos</div>
  <div class="tile"><span class="tile-num">{{.Counts.orders}}</span> Pedidos</div>
  <div class="tile"><span class="tile-num">{{.Counts.promotions}}</span> Promociones</div>
  <div class="tile"><span class="tile-num">{{.Counts.banners}}</span> Banners</div>
  <div class="tile"><span class="tile-num">{{.Counts.users}}</span> Clientes</div>
</div>
<div class="system">
  <p>Base de datos: {{if .Database.Healthy}}OK{{else}}sin conexión{{end}}</p>
  <p>Cache: {{if .Redis.Healthy}}OK{{else}}sin conexión{{end}}</p>
  <p>Go {{.Runtime.GoVersion}} · {{.Runtime.NumGoroutine}} goroutines</p>
</div>`))

	productosTmpl = template.Must(template.New("productos").Parse(`
<a class="btn-new" href="/admin/nuevo-producto">Nuevo Producto</a>
<table class="data">
  <thead><tr><th>Nombre</th><th>Categoría</th><th>Precio</th><th>Stock</th><th>Acciones</th></tr></thead>
  <tbody>
  {{range .}}<tr>
    <td>{{.Name}}</td><td>{{.Category}}</td>
    <td>{{printf "%.2f" .Price}} €</td><td>{{.Stock}}</td>
    <td>
      <form method="post" action="/admin/productos"
            onsubmit="return confirm('¿Eliminar este producto?')">
        <input type="hidden" name="_action" value="delete">
        <input type="hidden" name="_id" value="{{.ID}}">
        <button type="submit" class="btn-delete">Eliminar</button>
      </form>
    </td>
  </tr>
  {{else}}<tr><td colspan="5">Sin productos.</td></tr>{{end}}
  </tbody>
</table>`))

	pedidosTmpl = template.Must(template.New("pedidos").Parse(`
<table class="data">
  <thead><tr><th>Cliente</th><th>Email</th><th>Total</th><th>Estado</th><th>Fecha</th></tr></thead>
  <tbody>
  {{range .}}<tr>
    <td>{{.UserName}}</td><td>{{.UserEmail}}</td>
    <td>{{printf "%.2f" .Total}} €</td><td>{{.Status}}</td>
    <td>{{.CreatedAt.Format "2006-01-02"}}</td>
  </tr>
  {{else}}<tr><td colspan="5">Sin pedidos.</td></tr>{{end}}
  </tbody>
</table>`))

	promocionesTmpl = template.Must(template.New("promociones").Parse(`
<a class="btn-new" href="/admin/nueva-promocion">Nueva Promoción</a>
<table class="data">
  <thead><tr><th>Nombre</th><th>Descuento</th><th>Inicio</th><th>Fin</th><th>Estado</th></tr></thead>
  <tbody>
  {{range .}}<tr>
    <td>{{.Name}}</td>
    <td>{{.DiscountValue}}{{if eq .DiscountType "percentage"}}%{{else}} €{{end}}</td>
    <td>{{.StartDate}}</td><td>{{.EndDate}}</td><td>{{.Status}}</td>
  </tr>
  {{else}}<tr><td colspan="5">Sin promociones.</td></tr>{{end}}
  </tbody>
</table>`))

	bannersTmpl = template.Must(template.New("banners").Parse(`
<a class="btn-new" href="/admin/nuevo-banner">Nuevo Banner</a>
<table class="data">
  <thead><tr><th>Título</th><th>Inicio</th><th>Fin</th><th>Estado</th></tr></thead>
  <tbody>
  {{range .}}<tr>
    <td>{{.Title}}</td><td>{{.StartDate}}</td><td>{{.EndDate}}</td><td>{{.Status}}</td>
  </tr>
  {{else}}<tr><td colspan="4">Sin banners.</td></tr>{{end}}
  </tbody>
</table>`))

	clientesTmpl = template.Must(template.New("clientes").Parse(`
<a class="btn-new" href="/admin/nuevo-cliente">Nuevo Cliente</a>
<table class="data">
  <thead><tr><th>Nombre</th><th>Email</th><th>Rol</th><th>Teléfono</th></tr></thead>
  <tbody>
  {{range .}}<tr>
    <td>{{.Name}}</td><td>{{.Email}}</td><td>{{.Role}}</td><td>{{.Phone}}</td>
  </tr>
  {{else}}<tr><td colspan="4">Sin clientes.</td></tr>{{end}}
  </tbody>
</table>`))

	configuracionTmpl = template.Must(template.New("configuracion").Parse(`
<form method="post" action="/admin/configuracion" class="settings">
  {{range $key, $value := .}}
  <label>{{$key}}
    <input type="text" name="{{$key}}" value="{{$value}}">
  </label>
  {{end}}
  <label>Nueva clave <input type="text" name="_new_key"></label>
  <label>Valor <input type="text" name="_new_value"></label>
  <button type="submit">Guardar</button>
</form>`))
)

type DashboardView struct {
	api *apiclient.Client
}

func NewDashboardView(api *apiclient.Client) *DashboardView {
	return &DashboardView{api: api}
}

func (v *DashboardView) Route() Route               { return RouteDashboard }
func (v *DashboardView) Title() string              { return "Dashboard" }
func (v *DashboardView) Placeholder() template.HTML { return loadingSlot }

func (v *DashboardView) Load(ctx context.Context) (template.HTML, error) {
	client := v.api.WithToken(SessionToken(ctx))
	stats, err := client.GetStats(ctx)
	if err != nil {
		return errorRow(err), err
	}
	return render(dashboardTmpl, stats)
}

type ProductosView struct {
	api *apiclient.Client
}

func NewProductosView(api *apiclient.Client) *ProductosView {
	return &ProductosView{api: api}
}

func (v *ProductosView) Route() Route               { return RouteProductos }
func (v *ProductosView) Title() string              { return "Productos" }
func (v *ProductosView) Placeholder() template.HTML { return loadingSlot }

func (v *ProductosView) Load(ctx context.Context) (template.HTML, error) {
	client := v.api.WithToken(SessionToken(ctx))
	products, err := client.ListProducts(ctx)
	if err != nil {
		return errorRow(err), err
	}
	return render(productosTmpl, products)
}

// Submit handles the per-row delete forms of the listing.
func (v *ProductosView) Submit(ctx context.Context, form url.Values) error {
	if form.Get("_action") != "delete" {
		return nil
	}
	id := form.Get("_id")
	if id == "" {
		return nil
	}

	client := v.api.WithToken(SessionToken(ctx))
	_, err := client.DeleteProduct(ctx, id)
	return err
}

type PedidosView struct {
	api *apiclient.Client
}

func NewPedidosView(api *apiclient.Client) *PedidosView {
	return &PedidosView{api: api}
}

func (v *PedidosView) Route() Route               { return RoutePedidos }
func (v *PedidosView) Title() string              { return "Pedidos" }
func (v *PedidosView) Placeholder() template.HTML { return loadingSlot }

func (v *PedidosView) Load(ctx context.Context) (template.HTML, error) {
	client := v.api.WithToken(SessionToken(ctx))
	orders, err := client.ListOrders(ctx)
	if err != nil {
		return errorRow(err), err
	}
	return render(pedidosTmpl, orders)
}

type PromocionesView struct {
	api *apiclient.Client
}

func NewPromocionesView(api *apiclient.Client) *PromocionesView {
	return &PromocionesView{api: api}
}

func (v *PromocionesView) Route() Route               { return RoutePromociones }
func (v *PromocionesView) Title() string              { return "Promociones" }
func (v *PromocionesView) Placeholder() template.HTML { return loadingSlot }

func (v *PromocionesView) Load(ctx context.Context) (template.HTML, error) {
	client := v.api.WithToken(SessionToken(ctx))
	promotions, err := client.ListPromotions(ctx)
	if err != nil {
		return errorRow(err), err
	}
	return render(promocionesTmpl, promotions)
}

type BannersView struct {
	api *apiclient.Client
}

func NewBannersView(api *apiclient.Client) *BannersView {
	return &BannersView{api: api}
}

func (v *BannersView) Route() Route               { return RouteBanners }
func (v *BannersView) Title() string              { return "Banners" }
func (v *BannersView) Placeholder() template.HTML { return loadingSlot }

func (v *BannersView) Load(ctx context.Context) (template.HTML, error) {
	client := v.api.WithToken(SessionToken(ctx))
	banners, err := client.ListBanners(ctx)
	if err != nil {
		return errorRow(err), err
	}
	return render(bannersTmpl, banners)
}

type ClientesView struct {
	api *apiclient.Client
}

func NewClientesView(api *apiclient.Client) *ClientesView {
	return &ClientesView{api: api}
}

func (v *ClientesView) Route() Route               { return RouteClientes }
func (v *ClientesView) Title() string              { return "Clientes" }
func (v *ClientesView) Placeholder() template.HTML { return loadingSlot }

func (v *ClientesView) Load(ctx context.Context) (template.HTML, error) {
	client := v.api.WithToken(SessionToken(ctx))
	users, err := client.ListCustomers(ctx)
	if err != nil {
		return errorRow(err), err
	}
	return render(clientesTmpl, users)
}

type ConfiguracionView struct {
	api *apiclient.Client
}

func NewConfiguracionView(api *apiclient.Client) *ConfiguracionView {
	return &ConfiguracionView{api: api}
}

func (v *ConfiguracionView) Route() Route               { return RouteConfiguracion }
func (v *ConfiguracionView) Title() string              { return "Configuración" }
func (v *ConfiguracionView) Placeholder() template.HTML { return loadingSlot }

func (v *ConfiguracionView) Load(ctx context.Context) (template.HTML, error) {
	client := v.api.WithToken(SessionToken(ctx))
	values, err := client.GetSettings(ctx)
	if err != nil {
		return errorRow(err), err
	}
	return render(configuracionTmpl, values)
}
