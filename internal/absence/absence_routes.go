package absence

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
	absences := r.Group("/absences")

	absences.Use(middleware.AuthMiddleware())

	{
		absences.GET("/employee/:id", authz.RequireHR(gate), h.GetByEmployee)
		absences.POST("", authz.Authorize(gate, "absences", "manage"), h.Create)
		absences.PUT("/:id", authz.Authorize(gate, "absences", "manage"), h.Update)
		absences.DELETE("/:id", authz.Authorize(gate, "absences", "manage"), h.Delete)
	}
}
