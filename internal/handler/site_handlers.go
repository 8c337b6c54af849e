package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pawarnirmal/portfolio/internal/view"
)

// handleHome serves the cached page. A matching If-None-Match gets a 304.
func (h *Handler) handleHome(c *gin.Context) {
	p, err := h.Cache.Get(c.Request.Context())
	if err != nil {
		h.log.Error("render home page", zap.Error(err))
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.Header("ETag", p.ETag)
	c.Header("Cache-Control", "no-cache")
	if etagMatch(c.GetHeader("If-None-Match"), p.ETag) {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", p.Body)
}

// etagMatch implements the weak comparison used for If-None-Match.
func etagMatch(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if strings.TrimPrefix(candidate, "W/") == strings.TrimPrefix(etag, "W/") {
			return true
		}
	}
	return false
}

func (h *Handler) handlePrivacy(c *gin.Context) {
	p, _ := h.Store.Get()
	days := int(h.VisitorRetention.Hours() / 24)
	page(c, http.StatusOK, view.Privacy(p.Profile.Name, days))
}

// handlePortfolio returns the live content as JSON.
func (h *Handler) handlePortfolio(c *gin.Context) {
	p, version := h.Store.Get()
	c.Header("X-Content-Version", strconv.FormatUint(version, 10))
	c.JSON(http.StatusOK, p)
}

// handleSearch queries the content index. An empty query returns no hits.
func (h *Handler) handleSearch(c *gin.Context) {
	q := c.Query("q")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "limit must be a positive integer")
			return
		}
		limit = n
	}

	hits, err := h.Search.Search(q, limit)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"query": q, "hits": hits})
}
