package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawarnirmal/portfolio/internal/view"
)

// handleProjectLink counts a project card click and redirects to its target.
func (h *Handler) handleProjectLink(c *gin.Context) {
	target, err := h.Links.Project(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.linkNotFound(c, err)
		return
	}
	c.Redirect(http.StatusFound, target)
}

// handleSocialLink counts a social link click and redirects to the profile.
func (h *Handler) handleSocialLink(c *gin.Context) {
	target, err := h.Links.Social(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.linkNotFound(c, err)
		return
	}
	c.Redirect(http.StatusFound, target)
}

func (h *Handler) linkNotFound(c *gin.Context, err error) {
	if wantsJSON(c) {
		respondDomainError(c, err)
		return
	}
	status, _, _ := MapError(err)
	if status == http.StatusNotFound {
		page(c, status, view.NotFound())
		return
	}
	_ = c.Error(err)
	c.String(status, "internal server error")
}
