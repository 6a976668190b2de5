package kpi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Leonguyenbk/QLCV/internal/authz"
	"github.com/Leonguyenbk/QLCV/internal/shared/apperror"
	"github.com/Leonguyenbk/QLCV/internal/shared/response"
)

const defaultPageSize = 10

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("kpi.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kpi.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("kpi request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetEmployeeReport serves one employee's attendance summary and score for
// the month selected by the ?month=MM-YYYY query parameter.
func (h *Handler) GetEmployeeReport(c *gin.Context) {
	month := ParseMonth(c.Query("month"), time.Now)

	res, err := h.service.EmployeeReport(c.Request.Context(), c.Param("id"), month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// GetMonthlyReport serves the scored attendance table for every employee
// the caller may see.
func (h *Handler) GetMonthlyReport(c *gin.Context) {
	month := ParseMonth(c.Query("month"), time.Now)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	actor := authz.SubjectFromContext(c)

	res, total, err := h.service.MonthlyReport(c.Request.Context(), actor, month, page)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, defaultPageSize)
	response.Success(c, http.StatusOK, res, &meta)
}
