package view

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pawarnirmal/portfolio/internal/domain"
)

const timeLayout = "2006-01-02 15:04"

func adminLayout(title string, body ...g.Node) g.Node {
	return Layout(title+" · Admin", "Site administration",
		Header(Class("border-b border-white/10"),
			Nav(Class("max-w-6xl mx-auto px-4 h-14 flex items-center gap-6 text-sm"),
				A(Href("/admin/dashboard"), Class("font-semibold text-white"), g.Text("Dashboard")),
				A(Href("/admin/messages"), Class("hover:text-white"), g.Text("Messages")),
				A(Href("/admin/visitors"), Class("hover:text-white"), g.Text("Visitors")),
				A(Href("/admin/links"), Class("hover:text-white"), g.Text("Links")),
				A(Href("/admin/export/stats"), Class("hover:text-white"), g.Text("Export")),
				A(Href("/admin/logout"), Class("ml-auto hover:text-white"), g.Text("Log out")),
			),
		),
		Main(Class("max-w-6xl mx-auto px-4 py-10 space-y-8"), g.Group(body)),
	)
}

// AdminLogin is the login form; errMsg is shown when non-empty.
func AdminLogin(errMsg string) g.Node {
	return Layout("Admin Login", "Site administration",
		Main(Class("min-h-screen flex items-center justify-center px-4"),
			Form(Method("post"), Action("/admin/login"), Class("w-full max-w-sm space-y-4 rounded-2xl p-6 bg-white/[0.03] ring-1 ring-white/10"),
				H1(Class("text-xl font-semibold text-white"), g.Text("Admin Login")),
				g.If(errMsg != "", ContactError(errMsg)),
				Input(Name("username"), Type("text"), Placeholder("Username"), AutoComplete("username"), Required(), Class(fieldClass)),
				Input(Name("password"), Type("password"), Placeholder("Password"), AutoComplete("current-password"), Required(), Class(fieldClass)),
				Button(Type("submit"), Class("w-full bg-white text-slate-900 px-4 py-2 rounded-md font-medium"), g.Text("Sign in")),
			),
		),
	)
}

// AdminError is a full page error for admin views.
func AdminError(msg string) g.Node {
	return adminLayout("Error", ContactError(msg))
}

func statCard(label string, value int64) g.Node {
	return Div(Class("stat rounded-xl p-4 bg-white/[0.03] ring-1 ring-white/10"),
		P(Class("text-xs uppercase tracking-wide text-slate-400"), g.Text(label)),
		P(Class("mt-1 text-2xl font-semibold text-white"), g.Text(strconv.FormatInt(value, 10))),
	)
}

// AdminDashboard renders the aggregate statistics.
func AdminDashboard(s *domain.AdminStats) g.Node {
	statuses := make([]string, 0, len(s.Messages))
	for st := range s.Messages {
		statuses = append(statuses, string(st))
	}
	sort.Strings(statuses)

	return adminLayout("Dashboard",
		Div(Class("grid grid-cols-2 md:grid-cols-4 gap-4"),
			statCard("Total visitors", s.TotalVisitors),
			statCard("Unique visitors", s.UniqueVisitors),
			statCard("Today", s.VisitorsToday),
			statCard("This week", s.VisitorsThisWeek),
			statCard("Tracked links", s.TotalLinks),
			statCard("Link clicks", s.TotalClicks),
			statCard("Cache hits", s.Cache.Hits),
			statCard("Renders", s.Cache.Renders),
		),
		Section(
			H2(Class("text-lg font-semibold text-white"), g.Text("Messages")),
			Ul(Class("mt-2 flex gap-4 text-sm"),
				g.Map(statuses, func(st string) g.Node {
					return Li(g.Textf("%s: %d", st, s.Messages[domain.MessageStatus(st)]))
				}),
			),
		),
		Section(
			H2(Class("text-lg font-semibold text-white"), g.Text("Top links")),
			linkTable(s.TopLinks),
		),
		Section(
			H2(Class("text-lg font-semibold text-white"), g.Text("Recent visitors")),
			visitorTable(s.RecentVisitors),
		),
		P(Class("text-xs text-slate-500"), g.Textf("Content version %d", s.ContentVersion)),
	)
}

// AdminLinks lists every tracked outbound link.
func AdminLinks(links []domain.LinkStat) g.Node {
	return adminLayout("Links", linkTable(links))
}

// AdminVisitors lists recent page views.
func AdminVisitors(visitors []domain.VisitorMetric) g.Node {
	return adminLayout("Visitors",
		visitorTable(visitors),
		Form(Method("post"), Action("/admin/privacy/cleanup"),
			Button(Type("submit"), Class("text-sm text-rose-300 hover:text-rose-200"), g.Text("Run retention cleanup now")),
		),
	)
}

// AdminMessages lists contact messages with a retry action for failed ones.
func AdminMessages(msgs []domain.Message) g.Node {
	return adminLayout("Messages",
		Table(Class("w-full text-sm"),
			THead(Tr(Th(g.Text("Received")), Th(g.Text("From")), Th(g.Text("Message")), Th(g.Text("Status")), Th(g.Text("Attempts")), Th())),
			TBody(
				g.Map(msgs, func(m domain.Message) g.Node {
					return Tr(ID("message-"+m.ID), Class("align-top border-t border-white/5"),
						Td(g.Text(m.CreatedAt.Format(timeLayout))),
						Td(g.Text(m.Name), Br(), Small(Class("text-slate-400"), g.Text(m.Email))),
						Td(Class("max-w-md whitespace-pre-wrap"), g.Text(m.Body)),
						Td(g.Text(string(m.Status)), g.If(m.LastError != "", Small(Class("block text-rose-300"), g.Text(m.LastError)))),
						Td(g.Text(strconv.Itoa(m.Attempts))),
						Td(g.If(m.Status == domain.MessageStatusFailed,
							Button(Type("button"),
								g.Attr("hx-post", "/admin/messages/"+m.ID+"/retry"),
								g.Attr("hx-target", "#message-"+m.ID), g.Attr("hx-swap", "outerHTML"),
								Class("text-cyan-300"), g.Text("Retry"),
							),
						)),
					)
				}),
			),
		),
	)
}

func linkTable(links []domain.LinkStat) g.Node {
	return Table(Class("w-full text-sm mt-2"),
		THead(Tr(Th(g.Text("Code")), Th(g.Text("Target")), Th(g.Text("Clicks")), Th(g.Text("Last click")))),
		TBody(
			g.Map(links, func(l domain.LinkStat) g.Node {
				return Tr(Class("border-t border-white/5"),
					Td(Code(g.Text(l.Code))),
					Td(g.Text(l.TargetURL)),
					Td(g.Text(strconv.FormatInt(l.Clicks, 10))),
					Td(g.Text(formatTime(l.LastClick))),
				)
			}),
		),
	)
}

func visitorTable(visitors []domain.VisitorMetric) g.Node {
	return Table(Class("w-full text-sm mt-2"),
		THead(Tr(Th(g.Text("When")), Th(g.Text("Visitor")), Th(g.Text("Path")), Th(g.Text("User agent")))),
		TBody(
			g.Map(visitors, func(v domain.VisitorMetric) g.Node {
				return Tr(Class("border-t border-white/5"),
					Td(g.Text(formatTime(v.Timestamp))),
					Td(Code(g.Text(v.HashedIP))),
					Td(g.Text(v.Path)),
					Td(Class("truncate max-w-xs"), g.Text(v.UserAgent)),
				)
			}),
		),
	)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.UTC().Format(timeLayout)
}

// MessageRow re-renders one row after a retry.
func MessageRow(m domain.Message) g.Node {
	return Tr(ID("message-"+m.ID), Class("align-top border-t border-white/5"),
		Td(Class("text-slate-400"), g.Attr("colspan", "6"), g.Text(fmt.Sprintf("Message from %s re-queued for delivery.", m.Name))),
	)
}
