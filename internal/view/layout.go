package view

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

const (
	tailwindSrc = "https://cdn.tailwindcss.com"
	alpineSrc   = "https://unpkg.com/alpinejs@3.14.1/dist/cdn.min.js"
	htmxSrc     = "https://unpkg.com/htmx.org@1.9.12"
	lucideSrc   = "https://unpkg.com/lucide@0.441.0/dist/umd/lucide.min.js"
	splineSrc   = "https://unpkg.com/@splinetool/viewer@1.9.28/build/spline-viewer.js"
)

// Layout wraps body nodes in the HTML5 shell with the shared scripts and styles.
func Layout(title, description string, body ...g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       title,
		Description: description,
		Language:    "en",
		Head: []g.Node{
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			Script(Src(tailwindSrc)),
			Link(Rel("stylesheet"), Href("/static/app.css")),
			Script(Defer(), Src(alpineSrc)),
			Script(Src(htmxSrc)),
			Script(Src(lucideSrc)),
			Script(Type("module"), Src(splineSrc)),
			Script(Defer(), Src("/static/app.js")),
		},
		Body: []g.Node{
			Class("min-h-screen bg-slate-950 text-slate-200 antialiased"),
			g.Group(body),
		},
	})
}

// Page is the single-page portfolio.
func Page(m Model) g.Node {
	p := m.Portfolio.Profile
	return Layout(p.Brand, p.AboutSummary,
		Div(Class("page-backdrop fixed inset-0 -z-10")),
		Navbar(m),
		Main(
			Hero(m),
			About(m),
			Skills(m),
			Projects(m),
			Certifications(m),
			Contact(m),
		),
		SiteFooter(m),
	)
}

func icon(name, size string) g.Node {
	if name == "" {
		return nil
	}
	return I(g.Attr("data-lucide", name), Class(size), Aria("hidden", "true"))
}

func external() g.Node {
	return g.Group{Target("_blank"), Rel("noreferrer")}
}
