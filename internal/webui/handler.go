// BYH Music Store | 2026
// handler.go

package webui

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/byhstore/byh-store/internal/apiclient"
	"github.com/byhstore/byh-store/internal/banner"
	"github.com/byhstore/byh-store/internal/catalog"
	"github.com/byhstore/byh-store/internal/promotion"
)

const (
	cookieToken   = "byh_token"
	cookieRefresh = "byh_refresh"
	cookieName    = "byh_name"
)

type Handler struct {
	api    *apiclient.Client
	views  *ViewSet
	logger *slog.Logger
}

func NewHandler(api *apiclient.Client, logger *slog.Logger) *Handler {
	views := NewViewSet(
		NewDashboardView(api),
		NewProductosView(api),
		NewNuevoProductoView(api),
		NewPedidosView(api),
		NewPromocionesView(api),
		NewNuevaPromocionView(api),
		NewBannersView(api),
		NewNuevoBannerView(api),
		NewClientesView(api),
		NewNuevoClienteView(api),
		NewConfiguracionView(api),
	)

	return &Handler{api: api, views: views, logger: logger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Storefront)
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.LoginSubmit)
	r.Post("/logout", h.Logout)

	r.Route("/admin", func(r chi.Router) {
		r.Use(h.requireSession)
		r.Get("/", h.redirectDashboard)
		r.Get("/{route}", h.AdminView)
		r.Post("/{route}", h.AdminSubmit)
	})
}

// Storefront renders the public landing page from the public endpoints; a
// failing section degrades to empty rather than breaking the page.
func (h *Handler) Storefront(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.api.ListProducts(ctx)
	if err != nil {
		h.logger.Warn("storefront products unavailable", "error", err)
	}

	promotions, err := h.api.ListActivePromotions(ctx)
	if err != nil {
		h.logger.Warn("storefront promotions unavailable", "error", err)
	}

	banners, err := h.api.ListActiveBanners(ctx)
	if err != nil {
		h.logger.Warn("storefront banners unavailable", "error", err)
	}

	h.renderPage(w, storefrontTmpl, struct {
		Products   []catalog.ProductResponse
		Promotions []promotion.PromotionResponse
		Banners    []banner.BannerResponse
	}{products, promotions, banners})
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, loginTmpl, loginData{})
}

type loginData struct {
	Email        string
	ErrorMessage string
}

func (h *Handler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderPage(w, loginTmpl, loginData{
			ErrorMessage: "Formulario no válido.",
		})
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	resp, err := h.api.Login(r.Context(), email, password)
	if err != nil {
		message := "No se pudo iniciar sesión."
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) {
			message = apiErr.Message
		}
		h.renderPage(w, loginTmpl, loginData{
			Email:        email,
			ErrorMessage: message,
		})
		return
	}

	setSessionCookies(w, resp.Token, resp.RefreshToken, resp.User.Name)
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(cookieRefresh); err == nil {
		token := sessionTokenFromRequest(r)
		client := h.api.WithToken(token)
		if err := client.Logout(r.Context(), cookie.Value); err != nil {
			h.logger.Warn("logout call failed", "error", err)
		}
	}

	clearSessionCookies(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) redirectDashboard(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

// AdminView serves one page load. Each request is its own navigation
// sequence; nothing another client does can supersede it.
func (h *Handler) AdminView(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "route")

	result := NewNavigator(h.views).Navigate(r.Context(), name)

	if result.Err != nil && apiclient.IsUnauthorized(result.Err) {
		clearSessionCookies(w)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.renderAdmin(w, result, "")
}

func (h *Handler) AdminSubmit(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "route")

	route, form, ok := h.views.FormFor(name)
	if !ok {
		http.Redirect(w, r, "/admin/"+route.String(), http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin/"+route.String(), http.StatusSeeOther)
		return
	}

	if err := form.Submit(r.Context(), r.PostForm); err != nil {
		if apiclient.IsUnauthorized(err) {
			clearSessionCookies(w)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		message := "No se pudo guardar."
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) {
			message = apiErr.Message
		}

		result := NewNavigator(h.views).Navigate(r.Context(), name)
		h.renderAdmin(w, result, message)
		return
	}

	http.Redirect(
		w,
		r,
		"/admin/"+route.MenuRoute().String(),
		http.StatusSeeOther,
	)
}

// requireSession gates the admin pages behind the login cookie and puts
// the session on the context for the views.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionTokenFromRequest(r)
		if token == "" {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		session := Session{Token: token}
		if cookie, err := r.Cookie(cookieRefresh); err == nil {
			session.RefreshToken = cookie.Value
		}
		if cookie, err := r.Cookie(cookieName); err == nil {
			session.UserName = cookie.Value
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

type adminPageData struct {
	Title        string
	Menu         []MenuEntry
	ActiveMenu   Route
	Content      template.HTML
	ErrorMessage string
}

func (h *Handler) renderAdmin(
	w http.ResponseWriter,
	result NavResult,
	errorMessage string,
) {
	h.renderPage(w, layoutTmpl, adminPageData{
		Title:        result.Title,
		Menu:         MenuEntries(),
		ActiveMenu:   result.ActiveMenu,
		Content:      result.Content,
		ErrorMessage: errorMessage,
	})
}

func (h *Handler) renderPage(
	w http.ResponseWriter,
	tmpl *template.Template,
	data any,
) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		h.logger.Error("render page", "template", tmpl.Name(), "error", err)
	}
}

func sessionTokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(cookieToken)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func setSessionCookies(w http.ResponseWriter, token, refresh, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieToken,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     cookieRefresh,
		Value:    refresh,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    name,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{cookieToken, cookieRefresh, cookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:   name,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
	}
}
