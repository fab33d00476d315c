// BYH Music Store | 2026
// view.go

package webui

import (
	"context"
	"html/template"
	"net/url"
)

// View is implemented by every admin panel destination. Placeholder is
// synchronous chrome shown while Load runs; Load fetches from the API and
// returns the data region.
type View interface {
	Route() Route
	Title() string
	Placeholder() template.HTML
	Load(ctx context.Context) (template.HTML, error)
}

// FormView is a View that also accepts a POST submission. On success the
// navigator redirects back to the parent listing; on failure the form is
// re-rendered with the submission error inline.
type FormView interface {
	View
	Submit(ctx context.Context, form url.Values) error
}
