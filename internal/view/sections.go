package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pawarnirmal/portfolio/internal/content"
)

// Pill is a small rounded label with an optional icon.
func Pill(p content.Pill) g.Node {
	return Span(Class("inline-flex items-center gap-2 px-3 py-1 rounded-full bg-white/5 text-white ring-1 ring-white/10"),
		icon(p.Icon, "w-3.5 h-3.5"), g.Text(p.Label),
	)
}

// FeatureCard fades in once when it first scrolls into view.
func FeatureCard(f content.Feature) g.Node {
	return Div(Data("motion", "rise"), Class("group relative overflow-hidden rounded-2xl p-6 bg-gradient-to-br from-white/5 to-white/[0.03] ring-1 ring-white/10"),
		Div(Class("absolute inset-0 opacity-0 group-hover:opacity-100 transition-opacity bg-gradient-to-br from-cyan-500/10 to-indigo-500/10")),
		Div(Class("relative flex items-start gap-4"),
			Div(Class("inline-flex items-center justify-center w-12 h-12 rounded-xl bg-white/10 ring-1 ring-white/20 text-white"),
				icon(f.Icon, "w-6 h-6"),
			),
			Div(
				H3(Class("text-white font-semibold text-lg"), g.Text(f.Title)),
				P(Class("text-slate-400 mt-1"), g.Text(f.Desc)),
			),
		),
	)
}

// About renders the bio, highlight pills and feature cards.
func About(m Model) g.Node {
	p := m.Portfolio
	return Section(ID("about"), Class("relative py-20 bg-slate-950"),
		Div(Class("absolute inset-0 pointer-events-none"), Aria("hidden", "true"),
			Div(Class("absolute top-[-4rem] left-1/2 -translate-x-1/2 h-32 w-[90%] rounded-full bg-gradient-to-b from-cyan-500/10 blur-3xl")),
		),
		Div(Class("max-w-6xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(Class("grid lg:grid-cols-3 gap-10 items-start"),
				Div(Class("lg:col-span-1"),
					H2(Class("text-3xl font-bold text-white"), g.Text(p.Profile.AboutTitle)),
					P(Class("mt-3 text-slate-400"), g.Text(p.Profile.AboutSummary)),
					Div(Class("mt-6 flex flex-wrap gap-2"), g.Map(p.Pills, Pill)),
				),
				Div(Class("lg:col-span-2 space-y-4"), g.Map(p.Features, FeatureCard)),
			),
		),
	)
}

// Skills renders one card per skill group.
func Skills(m Model) g.Node {
	return Section(ID("skills"), Class("py-20 bg-slate-950"),
		Div(Class("max-w-6xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(Class("flex items-end justify-between"),
				H2(Class("text-3xl font-bold text-white"), g.Text("Skills")),
				Span(Class("text-cyan-400"), icon("graduation-cap", "w-6 h-6")),
			),
			Div(Class("mt-8 grid md:grid-cols-2 lg:grid-cols-3 gap-5"),
				g.Map(m.Portfolio.Skills, skillCard),
			),
		),
	)
}

func skillCard(s content.SkillGroup) g.Node {
	return Div(Class("skill-group rounded-2xl p-5 bg-white/[0.03] ring-1 ring-white/10"),
		H3(Class("text-white font-semibold"), g.Text(s.Title)),
		Div(Class("mt-4 flex flex-wrap gap-2"),
			g.Map(s.Items, func(item string) g.Node {
				return Span(Class("text-xs px-3 py-1 rounded-full bg-white/5 text-slate-200 ring-1 ring-white/10"), g.Text(item))
			}),
		),
	)
}

// Projects renders the project cards. Each card links through /go/{slug} unless DirectLinks is set.
func Projects(m Model) g.Node {
	return Section(ID("projects"), Class("py-20 bg-slate-950"),
		Div(Class("max-w-6xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(Class("flex items-end justify-between"),
				H2(Class("text-3xl font-bold text-white"), g.Text("Featured Projects")),
				Span(Class("text-cyan-400"), icon("external-link", "w-6 h-6")),
			),
			Div(Class("mt-8 grid md:grid-cols-2 lg:grid-cols-3 gap-6"),
				g.Map(m.Portfolio.Projects, func(p content.Project) g.Node {
					return projectCard(m, p)
				}),
			),
		),
	)
}

// projectCard is the whole tile as one link; hover lift is data-motion-hover.
func projectCard(m Model, p content.Project) g.Node {
	return A(Href(m.projectHref(p)), external(), ID("project-"+p.Slug),
		Data("motion", "rise"), Data("motion-hover", "lift"),
		Class("project-card group relative rounded-2xl p-5 bg-gradient-to-b from-white/[0.06] to-white/[0.03] ring-1 ring-white/10 hover:ring-cyan-400/40 transition"),
		Div(Class("absolute inset-0 rounded-2xl opacity-0 group-hover:opacity-100 transition-opacity bg-gradient-to-br from-cyan-500/10 to-indigo-500/10")),
		Div(Class("relative"),
			H3(Class("text-white font-semibold text-lg"), g.Text(p.Title)),
			P(Class("text-slate-400 mt-2 text-sm"), g.Text(p.Desc)),
			Div(Class("mt-4 flex flex-wrap gap-2"),
				g.Map(p.Tags, func(t string) g.Node {
					return Span(Class("text-xs px-2.5 py-1 rounded-full bg-white/5 text-slate-200 ring-1 ring-white/10"), g.Text(t))
				}),
			),
			Div(Class("mt-5 inline-flex items-center gap-2 text-cyan-300"),
				g.Text("Explore"), icon("external-link", "w-3.5 h-3.5"),
			),
		),
	)
}

// Certifications renders the credential list.
func Certifications(m Model) g.Node {
	return Section(ID("certs"), Class("py-20 bg-slate-950"),
		Div(Class("max-w-6xl mx-auto px-4 sm:px-6 lg:px-8"),
			H2(Class("text-3xl font-bold text-white"), g.Text("Certifications")),
			Div(Class("mt-8 grid md:grid-cols-2 lg:grid-cols-3 gap-6"),
				g.Map(m.Portfolio.Certifications, certCard),
			),
		),
	)
}

func certCard(c content.Certification) g.Node {
	return Div(Class("cert rounded-2xl p-5 bg-white/[0.03] ring-1 ring-white/10"),
		Div(Class("flex items-start justify-between gap-3"),
			Div(
				H3(Class("text-white font-semibold flex items-center gap-2"),
					g.Text(c.Name),
					g.If(c.Badge != "",
						Span(Class("cert-badge text-[10px] uppercase tracking-wide px-2 py-0.5 rounded-full bg-gradient-to-r from-amber-400 to-yellow-300 text-slate-900 ring-1 ring-amber-300/60"),
							g.Text("🥇 "+c.Badge),
						),
					),
				),
				P(Class("text-slate-400 text-sm"), g.Text(c.Issuer)),
			),
			Span(Class("text-xs text-cyan-300 whitespace-nowrap"), g.Text(c.Year)),
		),
	)
}

// Contact renders the contact call to action and, when enabled, the HTMX form slot.
func Contact(m Model) g.Node {
	p := m.Portfolio
	return Section(ID("contact"), Class("py-24 bg-slate-950"),
		Div(Class("max-w-3xl mx-auto px-4 sm:px-6 lg:px-8 text-center"),
			H2(Class("text-3xl font-bold text-white"), g.Text(p.Profile.ContactTitle)),
			P(Class("mt-3 text-slate-400"), g.Text(p.Profile.ContactSummary)),
			Div(Class("mt-8 flex flex-col sm:flex-row items-center justify-center gap-3"),
				A(Href("mailto:"+p.Profile.Email), Class("inline-flex items-center gap-2 bg-white text-slate-900 px-5 py-2.5 rounded-md font-medium hover:bg-slate-100"),
					icon("mail", "w-[18px] h-[18px]"), g.Text("Email Me"),
				),
				g.Map(p.Socials, func(s content.SocialLink) g.Node {
					return A(Href(m.socialHref(s)), external(),
						Class("inline-flex items-center gap-2 px-5 py-2.5 rounded-md font-medium border border-white/20 text-white hover:bg-white/10"),
						icon(s.Icon, "w-[18px] h-[18px]"), g.Text(s.Label),
					)
				}),
			),
			g.If(m.ContactForm,
				Div(Class("mt-10"),
					Button(Type("button"),
						g.Attr("hx-get", "/contact-form"), g.Attr("hx-target", "#contact-form-slot"), g.Attr("hx-swap", "innerHTML"),
						Class("text-sm text-cyan-300 hover:text-cyan-200 underline underline-offset-4"),
						g.Text("Or send a message from here"),
					),
					Div(ID("contact-form-slot"), Class("mt-6 text-left")),
				),
			),
		),
	)
}

// SiteFooter prints the copyright for m.Year.
func SiteFooter(m Model) g.Node {
	return Footer(Class("bg-slate-950 border-t border-white/10"),
		Div(Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-8 flex flex-col md:flex-row items-center justify-between gap-4"),
			P(Class("text-slate-400 text-sm"),
				g.Text("© "+strconv.Itoa(m.Year)+" "+m.Portfolio.Profile.Name+". All rights reserved."),
			),
			Div(Class("flex items-center gap-3 text-slate-400 text-sm"),
				g.If(!m.DirectLinks, A(Href("/privacy"), Class("hover:text-white"), g.Text("Privacy"))),
				A(Href("#top"), Class("hover:text-white"), g.Text("Back to top")),
			),
		),
	)
}
