package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Hero is the top banner: intro copy on the left, the hosted 3D scene on the right.
func Hero(m Model) g.Node {
	p := m.Portfolio.Profile
	return Section(ID("top"), Class("relative min-h-[92vh] pt-28 md:pt-32 flex items-center"),
		Div(Class("absolute inset-0 bg-gradient-to-b from-slate-900 via-slate-900 to-slate-950")),
		Div(Class("pointer-events-none absolute inset-0"), Aria("hidden", "true"),
			Div(Class("absolute -top-32 right-1/2 h-72 w-72 rounded-full bg-cyan-500/20 blur-3xl")),
			Div(Class("absolute top-10 left-1/3 h-80 w-80 rounded-full bg-indigo-500/20 blur-3xl")),
			Div(Class("absolute bottom-0 left-0 right-0 h-40 bg-gradient-to-t from-slate-950")),
		),
		Div(Class("relative max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 grid md:grid-cols-2 gap-10 items-center"),
			Div(Data("motion", "rise"), Data("motion-on", "load"), Class("text-white"),
				g.If(p.Badge != "",
					Div(Class("inline-flex items-center gap-2 rounded-full px-3 py-1 text-xs font-medium bg-white/10 ring-1 ring-white/20 backdrop-blur"),
						icon("sparkles", "w-3.5 h-3.5"), g.Text(p.Badge),
					),
				),
				H1(Class("mt-5 text-4xl md:text-6xl font-bold tracking-tight"), g.Text(p.Headline)),
				Div(Class("hero-bio mt-4 text-slate-300 text-lg leading-relaxed"), g.Raw(m.BioHTML)),
				Div(Class("mt-8 flex items-center gap-3"),
					A(Href("#projects"), Class("inline-flex items-center gap-2 bg-white text-slate-900 px-4 py-2 rounded-md font-medium hover:bg-slate-100"),
						g.Text("View Projects"), icon("external-link", "w-4 h-4"),
					),
					A(Href("#contact"), Class("inline-flex items-center gap-2 px-4 py-2 rounded-md font-medium border border-white/20 text-white hover:bg-white/10"),
						g.Text("Contact Me"), icon("mail", "w-4 h-4"),
					),
				),
			),
			g.If(p.SceneURL != "",
				Div(Data("motion", "zoom"), Data("motion-on", "load"), Data("motion-delay", "100"),
					Class("relative h-[420px] md:h-[520px] rounded-2xl overflow-hidden ring-1 ring-white/10 bg-slate-900/40"),
					g.El("spline-viewer", g.Attr("url", p.SceneURL), g.Attr("loading-anim-type", "spinner-small-dark"), Class("block w-full h-full")),
					Div(Class("pointer-events-none absolute inset-0 bg-gradient-to-t from-slate-950/40 to-transparent")),
				),
			),
		),
	)
}
