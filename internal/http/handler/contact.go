package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"muaiadhadad.me/portfolio/internal/contact"
	"muaiadhadad.me/portfolio/internal/http/dto"
)

type ContactHandler struct {
	contactService contact.Service
}

func NewContactHandler(contactService contact.Service) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid contact request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.contactService.Notify(ctx, contact.Submission{
		Name:     req.Name,
		Email:    req.Email,
		Subject:  req.Subject,
		Message:  req.Message,
		Honeypot: req.Honeypot,
	})
	if err != nil {
		if errors.Is(err, contact.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
		slog.ErrorContext(ctx, "contact delivery failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
