package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const fieldClass = "w-full rounded-md bg-white/5 ring-1 ring-white/10 px-3 py-2 text-white placeholder-slate-500 focus:outline-none focus:ring-cyan-400/60"

// ContactFormValues repopulates the form after a validation error.
type ContactFormValues struct {
	Name    string
	Email   string
	Message string
}

// ContactForm is the HTMX fragment posted to /contact. The result replaces #contact-result.
func ContactForm(v ContactFormValues) g.Node {
	return Form(ID("contact-form"), Method("post"), Action("/contact"),
		g.Attr("hx-post", "/contact"), g.Attr("hx-target", "#contact-result"), g.Attr("hx-swap", "innerHTML"),
		Class("space-y-4"),
		Div(
			Label(For("fullName"), Class("block text-sm text-slate-300 mb-1"), g.Text("Name")),
			Input(ID("fullName"), Name("fullName"), Type("text"), Required(), MaxLength("100"), Value(v.Name), Class(fieldClass)),
		),
		Div(
			Label(For("email"), Class("block text-sm text-slate-300 mb-1"), g.Text("Email")),
			Input(ID("email"), Name("email"), Type("email"), Required(), MaxLength("254"), Value(v.Email), Class(fieldClass)),
		),
		Div(
			Label(For("message"), Class("block text-sm text-slate-300 mb-1"), g.Text("Message")),
			Textarea(ID("message"), Name("message"), Rows("5"), Required(), MaxLength("5000"), Class(fieldClass), g.Text(v.Message)),
		),
		Div(Class("flex items-center gap-4"),
			Button(Type("submit"), Class("inline-flex items-center gap-2 bg-white text-slate-900 px-5 py-2.5 rounded-md font-medium hover:bg-slate-100"),
				icon("send", "w-4 h-4"), g.Text("Send"),
			),
			Div(ID("contact-result"), Class("text-sm")),
		),
	)
}

// ContactSuccess confirms a queued message.
func ContactSuccess(msg string) g.Node {
	return P(Class("contact-success text-emerald-300"), Role("status"), g.Text(msg))
}

// ContactError reports a failed submission.
func ContactError(msg string) g.Node {
	return P(Class("contact-error text-rose-300"), Role("alert"), g.Text(msg))
}
