package assessment

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
	assessments := r.Group("/assessments")

	assessments.Use(middleware.AuthMiddleware())

	{
		assessments.GET("/employee/:id", authz.RequireHR(gate), h.GetByEmployee)
		assessments.POST("", authz.Authorize(gate, "assessments", "manage"), h.Create)
		assessments.PUT("/:id", authz.Authorize(gate, "assessments", "manage"), h.Update)
		assessments.DELETE("/:id", authz.Authorize(gate, "assessments", "manage"), h.Delete)
	}
}
