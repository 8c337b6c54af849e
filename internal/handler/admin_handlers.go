package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pawarnirmal/portfolio/internal/domain"
	"github.com/pawarnirmal/portfolio/internal/middleware"
	"github.com/pawarnirmal/portfolio/internal/view"
)

const (
	adminSessionTTL   = 24 * time.Hour
	adminVisitorLimit = 200
	adminMessageLimit = 200
)

func (h *Handler) registerAdminRoutes(r *gin.Engine) {
	r.GET("/admin/login", h.handleAdminLoginPage)
	r.POST("/admin/login", h.handleAdminLogin)
	r.GET("/admin/logout", h.handleAdminLogout)

	admin := r.Group("/admin", middleware.RequireAdmin(h.Auth))
	admin.GET("/dashboard", h.handleAdminDashboard)
	admin.GET("/api/stats", h.handleAdminStats)
	admin.GET("/links", h.handleAdminLinks)
	admin.GET("/visitors", h.handleAdminVisitors)
	admin.GET("/messages", h.handleAdminMessages)
	admin.POST("/messages/:id/retry", h.handleAdminRetry)
	admin.GET("/export/stats", h.handleAdminExport)
	admin.POST("/privacy/cleanup", h.handleAdminCleanup)
}

func (h *Handler) handleAdminLoginPage(c *gin.Context) {
	page(c, http.StatusOK, view.AdminLogin(""))
}

func (h *Handler) handleAdminLogin(c *gin.Context) {
	client := h.Tracker.Hash(c.ClientIP())

	token, err := h.Auth.Login(c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		h.log.Warn("failed admin login", zap.String("client", client))
		page(c, http.StatusUnauthorized, view.AdminLogin("Invalid credentials"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminCookie, token, int(adminSessionTTL.Seconds()), "/admin", "", h.SecureCookies, true)
	h.log.Info("admin login", zap.String("client", client))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (h *Handler) handleAdminLogout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminCookie, "", -1, "/admin", "", h.SecureCookies, true)
	h.log.Info("admin logout", zap.String("client", h.Tracker.Hash(c.ClientIP())))
	c.Redirect(http.StatusFound, "/admin/login")
}

func (h *Handler) handleAdminDashboard(c *gin.Context) {
	stats, err := h.Stats.Stats(c.Request.Context())
	if err != nil {
		h.adminFailed(c, "Failed to load statistics", err)
		return
	}
	page(c, http.StatusOK, view.AdminDashboard(stats))
}

func (h *Handler) handleAdminStats(c *gin.Context) {
	stats, err := h.Stats.Stats(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) handleAdminLinks(c *gin.Context) {
	links, err := h.LinkRepo.All(c.Request.Context())
	if err != nil {
		h.adminFailed(c, "Failed to load links", err)
		return
	}
	page(c, http.StatusOK, view.AdminLinks(links))
}

func (h *Handler) handleAdminVisitors(c *gin.Context) {
	visitors, err := h.Visitors.Recent(c.Request.Context(), adminVisitorLimit)
	if err != nil {
		h.adminFailed(c, "Failed to load visitors", err)
		return
	}
	page(c, http.StatusOK, view.AdminVisitors(visitors))
}

// handleAdminMessages lists the contact queue, optionally filtered by ?status=.
func (h *Handler) handleAdminMessages(c *gin.Context) {
	status := domain.MessageStatus(c.Query("status"))
	if status != "" && !status.IsValid() {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", fmt.Sprintf("unknown status %q", status))
		return
	}

	msgs, err := h.Messages.List(c.Request.Context(), status, adminMessageLimit)
	if err != nil {
		h.adminFailed(c, "Failed to load messages", err)
		return
	}
	if wantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"messages": msgs})
		return
	}
	page(c, http.StatusOK, view.AdminMessages(msgs))
}

// handleAdminRetry puts an undelivered message back in the queue with a fresh
// attempt budget and wakes the worker.
func (h *Handler) handleAdminRetry(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	m, err := h.Messages.GetByID(ctx, id)
	if err == nil && m.Status == domain.MessageStatusSent {
		err = fmt.Errorf("%w: %s", domain.ErrAlreadySent, id)
	}
	if err == nil {
		err = h.Messages.Requeue(ctx, id, h.now())
	}
	if err != nil {
		respondDomainError(c, err)
		return
	}

	if h.Worker != nil {
		h.Worker.Wake()
	}
	h.log.Info("message requeued", zap.String("message_id", id))

	if wantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"id": id, "status": domain.MessageStatusPending})
		return
	}
	page(c, http.StatusOK, view.MessageRow(*m))
}

// handleAdminExport downloads the dashboard aggregate as a JSON file.
func (h *Handler) handleAdminExport(c *gin.Context) {
	stats, err := h.Stats.Stats(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
	h.log.Info("admin stats exported", zap.String("client", h.Tracker.Hash(c.ClientIP())))
	c.JSON(http.StatusOK, stats)
}

// handleAdminCleanup applies visitor retention immediately.
func (h *Handler) handleAdminCleanup(c *gin.Context) {
	deleted, err := h.Tracker.Cleanup(c.Request.Context(), h.VisitorRetention)
	if err != nil {
		if wantsJSON(c) {
			respondDomainError(c, err)
			return
		}
		h.adminFailed(c, "Privacy cleanup failed", err)
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"deleted": deleted})
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/visitors")
}

func (h *Handler) adminFailed(c *gin.Context, msg string, err error) {
	h.log.Error(msg, zap.Error(err))
	_ = c.Error(err)
	page(c, http.StatusInternalServerError, view.AdminError(msg))
}
