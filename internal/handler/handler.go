// Package handler wires the HTTP routes onto gin.
package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/pawarnirmal/portfolio/internal/content"
	"github.com/pawarnirmal/portfolio/internal/database"
	"github.com/pawarnirmal/portfolio/internal/middleware"
	"github.com/pawarnirmal/portfolio/internal/render"
	"github.com/pawarnirmal/portfolio/internal/repository"
	"github.com/pawarnirmal/portfolio/internal/search"
	"github.com/pawarnirmal/portfolio/internal/service"
	"github.com/pawarnirmal/portfolio/internal/static"
	"github.com/pawarnirmal/portfolio/internal/view"
)

// Waker nudges the delivery worker.
type Waker interface {
	Wake()
}

// Deps are the collaborators the routes need. All fields are required except
// Worker.
type Deps struct {
	DB      *database.DB
	Store   *content.Store
	Cache   *render.Cache
	Search  *search.Index
	Contact *service.ContactService
	Links   *service.LinkService
	Stats   *service.StatsService
	Tracker *service.Tracker
	Auth    *service.AdminAuth
	Limiter *middleware.RateLimiter
	Worker  Waker
	Logger  *zap.Logger

	Visitors *repository.VisitorRepository
	Messages *repository.MessageRepository
	LinkRepo *repository.LinkRepository

	VisitorRetention time.Duration
	SecureCookies    bool
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	Deps
	log *zap.Logger
	now func() time.Time
}

// New creates a new Handler instance with all dependencies.
func New(d Deps) *Handler {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Deps: d, log: log, now: time.Now}
}

// Engine builds a gin engine with the global middleware and every route.
func (h *Handler) Engine() *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.Recovery(h.log),
		middleware.RequestLogger(h.log, h.Tracker.Hash),
		middleware.SecurityHeaders(),
		middleware.TrackVisitors(h.Tracker),
	)
	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.handleHome)
	r.HEAD("/", h.handleHome)
	r.StaticFS("/static", http.FS(static.FS))
	r.GET("/healthz", h.handleHealthz)
	r.GET("/privacy", h.handlePrivacy)

	r.GET("/api/portfolio", h.handlePortfolio)
	r.GET("/api/search", h.handleSearch)

	// Contact form
	r.GET("/contact-form", h.handleContactForm)
	r.POST("/contact", h.Limiter.Limit(h.handleRateLimited), h.handleContact)

	// Counted outbound links
	r.GET("/go/:slug", h.handleProjectLink)
	r.GET("/out/:name", h.handleSocialLink)

	h.registerAdminRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		if wantsJSON(c) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "no such route")
			return
		}
		page(c, http.StatusNotFound, view.NotFound())
	})
}

// handleHealthz returns 200 OK if the database is reachable.
func (h *Handler) handleHealthz(c *gin.Context) {
	if err := h.DB.Ping(c.Request.Context()); err != nil {
		h.log.Error("database health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "content_version": h.Store.Version()})
}

// wantsJSON reports whether the client prefers JSON over an HTML fragment.
func wantsJSON(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "application/json") && c.GetHeader("HX-Request") == ""
}

func page(c *gin.Context, status int, node g.Node) {
	c.Render(status, view.Renderer{Node: node})
}
