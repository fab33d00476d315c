// BYH Music Store | 2026
// views_form.go

package webui

import (
	"context"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"github.com/byhstore/byh-store/internal/apiclient"
	"github.com/byhstore/byh-store/internal/customer"
	"github.com/byhstore/byh-store/internal/promotion"
)

var (
	nuevoProductoTmpl = template.Must(template.New("nuevo-producto").Parse(`
<form method="post" action="/admin/nuevo-producto" class="form">
  <label>Nombre <input type="text" name="name" required></label>
  <label>Categoría <input type="text" name="category" required></label>
  <label>Precio <input type="number" name="price" step="0.01" min="0" required></label>
  <label>Stock <input type="number" name="stock" min="0" required></label>
  <label>Descripción <textarea name="description"></textarea></label>
  <button type="submit">Guardar</button>
  <a href="/admin/productos">Cancelar</a>
</form>`))

	nuevaPromocionTmpl = template.Must(template.New("nueva-promocion").Parse(`
<form method="post" action="/admin/nueva-promocion" class="form">
  <label>Nombre <input type="text" name="name" required></label>
  <label>Descripción <textarea name="description"></textarea></label>
  <label>Tipo
    <select name="discount_type">
      <option value="percentage">Porcentaje</option>
      <option value="fixed_amount">Importe fijo</option>
    </select>
  </label>
  <label>Valor <input type="number" name="discount_value" step="0.01" min="0" required></label>
  <label>Inicio <input type="date" name="start_date" required></label>
  <label>Fin <input type="date" name="end_date" required></label>
  <button type="submit">Guardar</button>
  <a href="/admin/promociones">Cancelar</a>
</form>`))

	nuevoBannerTmpl = template.Must(template.New("nuevo-banner").Parse(`
<form method="post" action="/admin/nuevo-banner" class="form">
  <label>Título <input type="text" name="title" required></label>
  <label>Enlace <input type="url" name="link_url"></label>
  <label>Inicio <input type="date" name="start_date" required></label>
  <label>Fin <input type="date" name="end_date" required></label>
  <button type="submit">Guardar</button>
  <a href="/admin/banners">Cancelar</a>
</form>`))

	nuevoClienteTmpl = template.Must(template.New("nuevo-cliente").Parse(`
<form method="post" action="/admin/nuevo-cliente" class="form">
  <label>Nombre <input type="text" name="name" required></label>
  <label>Email <input type="email" name="email" required></label>
  <label>Contraseña <input type="password" name="password" required></label>
  <label>Rol
    <select name="role">
      <option value="cliente">Cliente</option>
      <option value="admin">Administrador</option>
    </select>
  </label>
  <label>Teléfono <input type="text" name="phone"></label>
  <label>Dirección <input type="text" name="address"></label>
  <button type="submit">Guardar</button>
  <a href="/admin/clientes">Cancelar</a>
</form>`))
)

type NuevoProductoView struct {
	api *apiclient.Client
}

func NewNuevoProductoView(api *apiclient.Client) *NuevoProductoView {
	return &NuevoProductoView{api: api}
}

func (v *NuevoProductoView) Route() Route               { return RouteNuevoProducto }
func (v *NuevoProductoView) Title() string              { return "Nuevo Producto" }
func (v *NuevoProductoView) Placeholder() template.HTML { return loadingSlot }

func (v *NuevoProductoView) Load(context.Context) (template.HTML, error) {
	return render(nuevoProductoTmpl, nil)
}

func (v *NuevoProductoView) Submit(
	ctx context.Context,
	form url.Values,
) error {
	client := v.api.WithToken(SessionToken(ctx))
	_, err := client.CreateProduct(ctx, map[string]string{
		"name":        form.Get("name"),
		"category":    form.Get("category"),
		"price":       form.Get("price"),
		"stock":       form.Get("stock"),
		"description": form.Get("description"),
	})
	return err
}

type NuevaPromocionView struct {
	api *apiclient.Client
}

func NewNuevaPromocionView(api *apiclient.Client) *NuevaPromocionView {
	return &NuevaPromocionView{api: api}
}

func (v *NuevaPromocionView) Route() Route               { return RouteNuevaPromocion }
func (v *NuevaPromocionView) Title() string              { return "Nueva Promoción" }
func (v *NuevaPromocionView) Placeholder() template.HTML { return loadingSlot }

func (v *NuevaPromocionView) Load(context.Context) (template.HTML, error) {
	return render(nuevaPromocionTmpl, nil)
}

func (v *NuevaPromocionView) Submit(
	ctx context.Context,
	form url.Values,
) error {
	client := v.api.WithToken(SessionToken(ctx))
	_, err := client.CreatePromotion(ctx, promotion.PromotionRequest{
		Name:          form.Get("name"),
		Description:   form.Get("description"),
		DiscountType:  form.Get("discount_type"),
		DiscountValue: parseFloat(form.Get("discount_value")),
		StartDate:     form.Get("start_date"),
		EndDate:       form.Get("end_date"),
	})
	return err
}

type NuevoBannerView struct {
	api *apiclient.Client
}

func NewNuevoBannerView(api *apiclient.Client) *NuevoBannerView {
	return &NuevoBannerView{api: api}
}

func (v *NuevoBannerView) Route() Route               { return RouteNuevoBanner }
func (v *NuevoBannerView) Title() string              { return "Nuevo Banner" }
func (v *NuevoBannerView) Placeholder() template.HTML { return loadingSlot }

func (v *NuevoBannerView) Load(context.Context) (template.HTML, error) {
	return render(nuevoBannerTmpl, nil)
}

func (v *NuevoBannerView) Submit(ctx context.Context, form url.Values) error {
	client := v.api.WithToken(SessionToken(ctx))
	_, err := client.CreateBanner(ctx, map[string]string{
		"title":      form.Get("title"),
		"link_url":   form.Get("link_url"),
		"start_date": form.Get("start_date"),
		"end_date":   form.Get("end_date"),
	})
	return err
}

type NuevoClienteView struct {
	api *apiclient.Client
}

func NewNuevoClienteView(api *apiclient.Client) *NuevoClienteView {
	return &NuevoClienteView{api: api}
}

func (v *NuevoClienteView) Route() Route               { return RouteNuevoCliente }
func (v *NuevoClienteView) Title() string              { return "Nuevo Cliente" }
func (v *NuevoClienteView) Placeholder() template.HTML { return loadingSlot }

func (v *NuevoClienteView) Load(context.Context) (template.HTML, error) {
	return render(nuevoClienteTmpl, nil)
}

func (v *NuevoClienteView) Submit(ctx context.Context, form url.Values) error {
	client := v.api.WithToken(SessionToken(ctx))
	_, err := client.CreateCustomer(ctx, customer.CreateCustomerRequest{
		Name:     form.Get("name"),
		Email:    form.Get("email"),
		Password: form.Get("password"),
		Role:     form.Get("role"),
		Phone:    form.Get("phone"),
		Address:  form.Get("address"),
	})
	return err
}

// Submit makes the settings page a form view: every non-reserved field is
// upserted, and the optional new key/value pair is added when filled in.
func (v *ConfiguracionView) Submit(
	ctx context.Context,
	form url.Values,
) error {
	values := make(map[string]string)
	for key := range form {
		if strings.HasPrefix(key, "_") {
			continue
		}
		values[key] = form.Get(key)
	}

	if newKey := strings.TrimSpace(form.Get("_new_key")); newKey != "" {
		values[newKey] = form.Get("_new_value")
	}

	if len(values) == 0 {
		return nil
	}

	client := v.api.WithToken(SessionToken(ctx))
	_, err := client.UpdateSettings(ctx, values)
	return err
}

func parseFloat(value string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return f
}
