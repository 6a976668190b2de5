package department

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
	departments := r.Group("/departments")

	departments.Use(middleware.AuthMiddleware())

	{
		departments.GET("", authz.RequireHR(gate), h.GetAll)
		departments.GET("/options", h.GetOptions)
		departments.GET("/:id", authz.RequireHR(gate), h.GetById)
		departments.POST("", authz.Authorize(gate, "departments", "manage"), h.Create)
		departments.PUT("/:id", authz.Authorize(gate, "departments", "manage"), h.Update)
		departments.DELETE("/:id", authz.Authorize(gate, "departments", "manage"), h.Delete)
	}
}
