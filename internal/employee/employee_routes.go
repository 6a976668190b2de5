package employee

import (
	"github.com/gin-gonic/gin"

	"github.com/Leonguyenbk/QLCV/internal/authz"
	"github.com/Leonguyenbk/QLCV/internal/history"
	"github.com/Leonguyenbk/QLCV/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	historyHandler *history.Handler,
	gate authz.Gate,
) {
	employees := r.Group("/employees")

	employees.Use(middleware.AuthMiddleware())

	{
		employees.GET("", authz.RequireHR(gate), h.GetAll)
		employees.GET("/:id", authz.RequireHR(gate), h.GetById)
		employees.GET("/:id/history", authz.RequireHR(gate), historyHandler.GetByEmployee)
		employees.POST("", authz.RequireHR(gate), h.Create)
		employees.PUT("/:id", h.Update)
		employees.DELETE("/:id", authz.Authorize(gate, "admin", "access"), h.Delete)
	}

	// Self-service profile, open to any authenticated account.
	me := r.Group("/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.PUT("/profile", h.UpdateProfile)
		me.POST("/avatar", h.UploadAvatar)
	}
}
