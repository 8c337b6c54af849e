package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Privacy explains what the visitor tracking stores.
func Privacy(siteName string, retentionDays int) g.Node {
	return Layout("Privacy Policy · "+siteName, "How this site handles visitor data.",
		Main(Class("max-w-3xl mx-auto px-4 py-24 space-y-6 text-slate-300"),
			H1(Class("text-3xl font-bold text-white"), g.Text("Privacy Policy")),
			P(g.Text("This site records page views to understand which sections people read. Each record holds a one-way hash of your IP address, your browser's user agent, the page path, and a timestamp. Raw IP addresses are never stored.")),
			P(g.Textf("Records older than %d days are deleted automatically.", retentionDays)),
			P(g.Text("If your browser sends the Do Not Track header, no page views are recorded at all.")),
			P(g.Text("Messages sent through the contact form are stored until they are delivered by email and are used only to reply to you.")),
			A(Href("/"), Class("inline-block text-cyan-300 hover:text-cyan-200"), g.Text("← Back to the portfolio")),
		),
	)
}

// NotFound is the 404 page.
func NotFound() g.Node {
	return Layout("Not found", "",
		Main(Class("max-w-3xl mx-auto px-4 py-24 space-y-6 text-center text-slate-300"),
			H1(Class("text-3xl font-bold text-white"), g.Text("Page not found")),
			P(g.Text("The page you asked for does not exist.")),
			A(Href("/"), Class("inline-block text-cyan-300 hover:text-cyan-200"), g.Text("← Back to the portfolio")),
		),
	)
}
