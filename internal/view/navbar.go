package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pawarnirmal/portfolio/internal/content"
)

const (
	navScrolled = "backdrop-blur-md bg-slate-900/70 border-b border-white/10"
	navTop      = "bg-transparent"
)

// Navbar is the fixed header. Its only state is Alpine's open/scrolled pair;
// the window scroll listener lives and dies with the component.
func Navbar(m Model) g.Node {
	p := m.Portfolio
	return Header(
		ID("navbar"),
		g.Attr("x-data", "{ open: false, scrolled: false }"),
		g.Attr("x-init", "scrolled = window.scrollY > 10"),
		g.Attr("@scroll.window", "scrolled = window.scrollY > 10"),
		g.Attr(":class", "scrolled ? '"+navScrolled+"' : '"+navTop+"'"),
		Class("fixed top-0 inset-x-0 z-50 transition-all "+navTop),
		Div(Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(Class("h-16 flex items-center justify-between"),
				A(Href("#top"), Class("flex items-center gap-2 text-white"),
					Span(Class("inline-flex items-center justify-center w-9 h-9 rounded-lg bg-gradient-to-br from-indigo-500 to-cyan-400 text-white shadow-lg shadow-cyan-500/30"),
						icon("shield", "w-[18px] h-[18px]"),
					),
					Span(Class("font-semibold tracking-wide"), g.Text(p.Profile.Brand)),
				),
				Nav(Class("hidden md:flex items-center gap-8"),
					g.Map(p.Nav, func(l content.NavLink) g.Node {
						return A(Href(l.Href), Class("text-slate-200 hover:text-white transition-colors"), g.Text(l.Label))
					}),
				),
				Div(Class("hidden md:flex items-center gap-3"),
					socialIcons(m),
					hireMe(false),
				),
				Button(
					Type("button"),
					Class("md:hidden text-white p-2"),
					g.Attr("@click", "open = !open"),
					Aria("label", "Toggle menu"),
					g.Attr(":aria-expanded", "open.toString()"),
					Span(g.Attr("x-show", "!open"), icon("menu", "w-6 h-6")),
					Span(g.Attr("x-show", "open"), g.Attr("x-cloak", ""), icon("x", "w-6 h-6")),
				),
			),
			Div(ID("mobile-menu"), g.Attr("x-show", "open"), g.Attr("x-cloak", ""), Class("md:hidden pb-4 space-y-4"),
				Nav(Class("flex flex-col gap-3"),
					g.Map(p.Nav, func(l content.NavLink) g.Node {
						return A(Href(l.Href), g.Attr("@click", "open = false"), Class("text-slate-200 hover:text-white transition-colors"), g.Text(l.Label))
					}),
				),
				Div(Class("flex items-center gap-2"),
					socialIcons(m),
					hireMe(true),
				),
			),
		),
	)
}

func socialIcons(m Model) g.Node {
	return g.Map(m.Portfolio.Socials, func(s content.SocialLink) g.Node {
		return A(Href(m.socialHref(s)), external(), Aria("label", s.Label),
			Class("p-2 rounded-md hover:bg-white/5 text-slate-200 hover:text-white transition-colors"),
			icon(s.Icon, "w-[18px] h-[18px]"),
		)
	})
}

func hireMe(closesMenu bool) g.Node {
	cls := "inline-flex items-center gap-2 bg-white text-slate-900 px-3 py-1.5 rounded-md text-sm font-medium hover:bg-slate-100 transition-colors"
	if closesMenu {
		cls = "ml-auto " + cls
	}
	return A(Href("#contact"), Class(cls),
		g.If(closesMenu, g.Attr("@click", "open = false")),
		icon("mail", "w-4 h-4"), g.Text("Hire Me"),
	)
}
