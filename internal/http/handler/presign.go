package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"muaiadhadad.me/portfolio/internal/http/dto"
	"muaiadhadad.me/portfolio/internal/storage"
)

// presignValidity is the fixed lifetime of issued download URLs.
const presignValidity = time.Hour

type PresignHandler struct {
	signer storage.Signer
}

func NewPresignHandler(signer storage.Signer) *PresignHandler {
	return &PresignHandler{signer: signer}
}

func (h *PresignHandler) Sign(c *gin.Context) {
	ctx := c.Request.Context()

	if h.signer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage not configured"})
		return
	}

	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing key"})
		return
	}

	// Keys arrive raw or percent-encoded (names with spaces, parentheses,
	// commas). The query layer already decoded once, so this second pass
	// must not treat + as a space. Keep the raw value when the escape
	// sequence is malformed.
	if decoded, err := url.PathUnescape(key); err == nil {
		key = decoded
	}

	signed, err := h.signer.SignedGetURL(ctx, key, presignValidity)
	if err != nil {
		slog.ErrorContext(ctx, "presign failed", "key", key, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "presign_failed"})
		return
	}

	c.JSON(http.StatusOK, dto.PresignResponse{URL: signed})
}
