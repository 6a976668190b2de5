package user

import (
	"github.com/gin-gonic/gin"

	"github.com/Leonguyenbk/QLCV/internal/authz"
	"github.com/Leonguyenbk/QLCV/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	gate authz.Gate,
) {
	users := r.Group("/users")

	users.Use(middleware.AuthMiddleware())
	users.Use(authz.Authorize(gate, "users", "manage"))

	{
		users.GET("", h.GetAll)
		users.GET("/:id", h.GetById)
		users.POST("", h.Create)
		users.PUT("/:id", h.Update)
		users.PUT("/:id/password", h.ResetPassword)
		users.DELETE("/:id", h.Delete)
	}
}
