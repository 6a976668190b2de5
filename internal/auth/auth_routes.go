package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/Leonguyenbk/QLCV/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), h.Login)
		auth.POST("/refresh", h.RefreshToken)
		auth.POST("/logout", middleware.AuthMiddleware(), h.Logout)
		auth.GET("/me", middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5), h.Me)
	}
}
