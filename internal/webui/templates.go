// BYH Music Store | 2026
// templates.go

package webui

import (
	"html/template"
)

var layoutTmpl = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="utf-8">
  <title>{{.Title}} · BYH Music Store</title>
  <link rel="stylesheet" href="/static/admin.css">
</head>
<body class="admin">
  <aside class="sidebar">
    <h1>BYH Admin</h1>
    <nav>
      <ul>
      {{$active := .ActiveMenu}}
      {{range .Menu}}
        <li{{if eq .Route $active}} class="active"{{end}}>
          <a href="/admin/{{.Route}}">{{.Label}}</a>
        </li>
      {{end}}
      </ul>
    </nav>
    <form method="post" action="/logout"><button type="submit">Salir</button></form>
  </aside>
  <main>
    <header><h2>{{.Title}}</h2></header>
    {{if .ErrorMessage}}<div class="flash-error">{{.ErrorMessage}}</div>{{end}}
    <section class="content">{{.Content}}</section>
  </main>
</body>
</html>`))

var storefrontTmpl = template.Must(template.New("storefront").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="utf-8">
  <title>BYH Music Store</title>
  <link rel="stylesheet" href="/static/store.css">
</head>
<body class="store">
  <header>
    <h1>BYH Music Store</h1>
    <a class="login-link" href="/login">Acceder</a>
  </header>
  {{if .Banners}}
  <div class="marquee">
    {{range .Banners}}
      {{if .LinkURL}}<a href="{{.LinkURL}}">{{.Title}}</a>{{else}}<span>{{.Title}}</span>{{end}}
    {{end}}
  </div>
  {{end}}
  <div class="layout">
    <main class="grid">
      {{range .Products}}
      <article class="card">
        {{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Name}}">{{end}}
        <h3>{{.Name}}</h3>
        <p class="category">{{.Category}}</p>
        <p class="price">{{printf "%.2f" .Price}} €</p>
        {{if gt .Stock 0}}<p class="stock">En stock</p>{{else}}<p class="stock out">Agotado</p>{{end}}
      </article>
      {{else}}
      <p>No hay productos disponibles.</p>
      {{end}}
    </main>
    {{if .Promotions}}
    <aside class="promos">
      <h2>Promociones</h2>
      {{range .Promotions}}
      <div class="promo">
        <h3>{{.Name}}</h3>
        <p>{{.Description}}</p>
        <p class="until">Hasta el {{.EndDate}}</p>
      </div>
      {{end}}
    </aside>
    {{end}}
  </div>
</body>
</html>`))

var loginTmpl = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="utf-8">
  <title>Acceso · BYH Music Store</title>
  <link rel="stylesheet" href="/static/store.css">
</head>
<body class="login">
  <main>
    <h1>Acceso</h1>
    {{if .ErrorMessage}}<div class="flash-error">{{.ErrorMessage}}</div>{{end}}
    <form method="post" action="/login">
      <label>Email <input type="email" name="email" value="{{.Email}}" required></label>
      <label>Contraseña <input type="password" name="password" required></label>
      <button type="submit">Entrar</button>
    </form>
  </main>
</body>
</html>`))
