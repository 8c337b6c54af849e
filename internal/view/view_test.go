package view

import (
	"html/template"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/pawarnirmal/portfolio/internal/content"
	"github.com/pawarnirmal/portfolio/internal/domain"
)

func renderString(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func model() Model {
	return Model{Portfolio: content.Default(), BioHTML: "<p>bio</p>", Year: 2025}
}

func TestNavbar_ClientState(t *testing.T) {
	html := renderString(t, Navbar(model()))

	assert.Contains(t, html, `x-data="{ open: false, scrolled: false }"`)
	assert.Contains(t, html, `@scroll.window="scrolled = window.scrollY &gt; 10"`)
	assert.Contains(t, html, `@click="open = !open"`)
	for _, l := range content.Default().Nav {
		assert.Contains(t, html, `href="`+l.Href+`"`)
	}
	assert.Contains(t, html, `href="/out/github"`)
}

func TestHero_Scene(t *testing.T) {
	m := model()
	html := renderString(t, Hero(m))
	assert.Contains(t, html, "<spline-viewer")
	assert.Contains(t, html, m.Portfolio.Profile.SceneURL)
	assert.Contains(t, html, `data-motion="rise"`)

	m.Portfolio.Profile.SceneURL = ""
	assert.NotContains(t, renderString(t, Hero(m)), "<spline-viewer")
}

func TestSections(t *testing.T) {
	m := model()

	projects := renderString(t, Projects(m))
	for _, p := range m.Portfolio.Projects {
		assert.Contains(t, projects, `id="project-`+p.Slug+`"`)
		assert.Contains(t, projects, template.HTMLEscapeString(p.Title))
	}

	skills := renderString(t, Skills(m))
	for _, s := range m.Portfolio.Skills {
		assert.Contains(t, skills, template.HTMLEscapeString(s.Title))
	}
	assert.Contains(t, skills, "AI &amp; Data")

	certs := renderString(t, Certifications(m))
	assert.Contains(t, certs, "EC-Council")
	assert.Contains(t, certs, "1st Place")

	footer := renderString(t, SiteFooter(m))
	assert.Contains(t, footer, "© 2025 Nirmal. All rights reserved.")
	assert.Contains(t, footer, `href="/privacy"`)
}

func TestContact_FormToggle(t *testing.T) {
	m := model()
	assert.NotContains(t, renderString(t, Contact(m)), "hx-get")

	m.ContactForm = true
	html := renderString(t, Contact(m))
	assert.Contains(t, html, `hx-get="/contact-form"`)
	assert.Contains(t, html, `id="contact-form-slot"`)
}

func TestContactForm_Repopulates(t *testing.T) {
	html := renderString(t, ContactForm(ContactFormValues{Name: "Ada", Email: "ada@example.com", Message: "<hi>"}))

	assert.Contains(t, html, `value="Ada"`)
	assert.Contains(t, html, "&lt;hi&gt;")
	assert.Contains(t, html, `name="fullName"`)
}

func TestAdminMessages_RetryOnlyFailed(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	html := renderString(t, AdminMessages([]domain.Message{
		{ID: "a", Name: "Ada", Status: domain.MessageStatusFailed, LastError: "smtp down", CreatedAt: now},
		{ID: "b", Name: "Bob", Status: domain.MessageStatusSent, CreatedAt: now},
	}))

	assert.Contains(t, html, `hx-post="/admin/messages/a/retry"`)
	assert.NotContains(t, html, `hx-post="/admin/messages/b/retry"`)
	assert.Contains(t, html, "smtp down")
}

func TestRenderer_Render(t *testing.T) {
	w := httptest.NewRecorder()
	require.NoError(t, Renderer{Node: ContactSuccess("ok")}.Render(w))

	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "contact-success")
}
