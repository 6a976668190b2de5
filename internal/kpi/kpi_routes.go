package kpi

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
	reports := r.Group("/reports/attendance")

	reports.Use(middleware.AuthMiddleware())

	{
		reports.GET("", authz.RequireHR(gate), h.GetMonthlyReport)
		reports.GET("/employee/:id", authz.RequireHR(gate), h.GetEmployeeReport)
	}
}
