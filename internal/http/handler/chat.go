package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"muaiadhadad.me/portfolio/internal/chat"
	"muaiadhadad.me/portfolio/internal/http/dto"
	"muaiadhadad.me/portfolio/internal/llm"
)

// doneSentinel terminates a successfully completed stream.
const doneSentinel = "[DONE]"

type ChatHandler struct {
	chatService chat.Service
}

func NewChatHandler(chatService chat.Service) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Relay streams the assistant's reply as server-sent events. Failures before
// the stream starts return a single JSON error body; a broken upstream
// stream simply terminates the response without the [DONE] sentinel.
func (h *ChatHandler) Relay(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid chat request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msgs := make([]llm.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		msgs = append(msgs, llm.Message{Role: m.Role, Content: m.Content})
	}

	deltas, errs, err := h.chatService.Stream(ctx, msgs, req.Temperature)
	if err != nil {
		slog.ErrorContext(ctx, "chat stream failed to start", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming not supported"})
		return
	}

	setSSEHeaders(c.Writer)

	for delta := range deltas {
		sseWrite(c.Writer, dto.ToChunk(delta.Content))
		flusher.Flush()
	}

	select {
	case err := <-errs:
		slog.ErrorContext(ctx, "chat stream broke mid-flight", "error", err)
		return
	default:
	}

	sseWrite(c.Writer, doneSentinel)
	flusher.Flush()
}
