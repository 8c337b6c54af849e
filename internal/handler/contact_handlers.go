package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/pawarnirmal/portfolio/internal/domain"
	"github.com/pawarnirmal/portfolio/internal/view"
)

const (
	contactSuccessText = "Thank you for your message! I'll get back to you soon."
	contactFailureText = "Sorry, there was an error sending your message. Please try again later."
	contactLimitedText = "You've sent several messages in a short time. Please wait a minute and try again."
)

func (h *Handler) handleContactForm(c *gin.Context) {
	page(c, http.StatusOK, view.ContactForm(view.ContactFormValues{}))
}

// handleContact queues a contact message. HTMX callers get an HTML fragment,
// JSON callers a JSON body.
func (h *Handler) handleContact(c *gin.Context) {
	var form domain.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		// Validation failures leave the decoded form in place; the service
		// re-validates after trimming and names the failing field.
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			h.contactFailed(c, fmt.Errorf("%w: malformed request", domain.ErrInvalidMessage))
			return
		}
	}

	m, err := h.Contact.Submit(c.Request.Context(), form)
	if err != nil {
		h.contactFailed(c, err)
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusAccepted, gin.H{"id": m.ID, "status": m.Status})
		return
	}
	page(c, http.StatusOK, view.ContactSuccess(contactSuccessText))
}

func (h *Handler) contactFailed(c *gin.Context, err error) {
	status, code, message := MapError(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("contact submission failed", zap.Error(err))
		message = contactFailureText
	}

	if wantsJSON(c) {
		respondError(c, status, code, message)
		return
	}

	text := contactFailureText
	if errors.Is(err, domain.ErrInvalidMessage) {
		text = "Please check your details: " + strings.TrimPrefix(err.Error(), domain.ErrInvalidMessage.Error()+": ")
	}
	page(c, fragmentStatus(c, status), view.ContactError(text))
}

// fragmentStatus downgrades errors to 200 for HTMX, which only swaps 2xx
// responses by default.
func fragmentStatus(c *gin.Context, status int) int {
	if c.GetHeader("HX-Request") != "" {
		return http.StatusOK
	}
	return status
}

// handleRateLimited writes the body for a throttled contact submission. The
// limiter has already set the status and Retry-After.
func (h *Handler) handleRateLimited(c *gin.Context) {
	if wantsJSON(c) {
		_, code, _ := MapError(domain.ErrRateLimited)
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: ErrorDetail{Code: code, Message: contactLimitedText}})
		return
	}
	page(c, fragmentStatus(c, http.StatusTooManyRequests), view.ContactError(contactLimitedText))
}
