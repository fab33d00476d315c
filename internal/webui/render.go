// BYH Music Store | 2026
// render.go

package webui

import (
	"bytes"
	"fmt"
	"html/template"
)

func render(tmpl *template.Template, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	//nolint:gosec // G203: output of a parsed html/template, already escaped
	return template.HTML(buf.String()), nil
}

const loadingSlot = `<div class="loading">Cargando…</div>`

var errorTmpl = template.Must(
	template.New("error").Parse(`<div class="error-row">{{.}}</div>`),
)

// errorRow is what listing views show in place of their table when the
// API call fails; the server's message is rendered as text.
func errorRow(err error) template.HTML {
	out, renderErr := render(errorTmpl, err.Error())
	if renderErr != nil {
		return `<div class="error-row">error</div>`
	}
	return out
}
