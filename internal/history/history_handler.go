package history

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Leonguyenbk/QLCV/internal/shared/apperror"
	"github.com/Leonguyenbk/QLCV/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("history.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("history.handler")
	}
	return &Handler{service: service, logger: l}
}

// GetByEmployee lists every history period for one employee, oldest
// first, for the admin console timeline view.
func (h *Handler) GetByEmployee(c *gin.Context) {
	employeeID := c.Param("id")
	h.logger.Debug("http get employee history", zap.String("employee_id", employeeID))

	resp, err := h.service.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
