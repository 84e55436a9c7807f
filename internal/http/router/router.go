package router

import (
	"github.com/gin-gonic/gin"

	"muaiadhadad.me/portfolio/internal/http/handler"
)

type Handlers struct {
	Chat    *handler.ChatHandler
	Contact *handler.ContactHandler
	Presign *handler.PresignHandler
}

func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/chat", h.Chat.Relay)
		api.POST("/contact", h.Contact.Submit)
		api.GET("/presign", h.Presign.Sign)
	}
}
