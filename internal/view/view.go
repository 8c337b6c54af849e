// Package view renders the site as gomponents node trees. Components mirror the
// page sections one to one; they take plain data and never touch storage.
package view

import (
	"net/http"

	"github.com/gin-gonic/gin/render"
	g "maragu.dev/gomponents"

	"github.com/pawarnirmal/portfolio/internal/content"
)

// Model is everything the home page needs.
type Model struct {
	Portfolio *content.Portfolio
	BioHTML   string
	Year      int

	// DirectLinks makes cards and social buttons point straight at their targets
	// instead of the counting redirects. Used for the static export.
	DirectLinks bool

	// ContactForm enables the HTMX-loaded message form in the contact section.
	ContactForm bool
}

func (m Model) projectHref(p content.Project) string {
	if m.DirectLinks {
		return p.Link
	}
	return "/go/" + p.Slug
}

func (m Model) socialHref(s content.SocialLink) string {
	if m.DirectLinks {
		return s.URL
	}
	return "/out/" + s.Name
}

// Renderer adapts a node to gin's render interface.
type Renderer struct {
	Node g.Node
}

var _ render.Render = Renderer{}

// Render writes the node.
func (h Renderer) Render(w http.ResponseWriter) error {
	h.WriteContentType(w)
	return h.Node.Render(w)
}

// WriteContentType sets the HTML content type.
func (h Renderer) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = []string{"text/html; charset=utf-8"}
	}
}
