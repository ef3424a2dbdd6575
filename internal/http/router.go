package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/you/regsvc/internal/http/handlers"
)

func BuildRouter(rh *handlers.RegistrationHandlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", rh.Register)
	auth.POST("/verify", rh.Verify)
	auth.POST("/resend", rh.Resend)

	return r
}
