package employee

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Leonguyenbk/QLCV/internal/authz"
	"github.com/Leonguyenbk/QLCV/internal/shared/apperror"
	"github.com/Leonguyenbk/QLCV/internal/shared/response"
)

const maxAvatarBytes = 5 << 20

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	actor := c.GetString("user_id")
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	sub := authz.SubjectFromContext(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	filter := ListFilter{
		Keyword:      c.Query("kw"),
		DepartmentID: c.Query("department_id"),
		Page:         page,
		PageSize:     pageSize,
	}

	resp, total, err := h.service.List(c.Request.Context(), sub, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	sub := authz.SubjectFromContext(c)
	actor := c.GetString("user_id")
	id := c.Param("id")

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), sub, actor, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// UpdateProfile lets an employee edit their own contact data. The target
// is always the caller's linked employee, never a route parameter.
func (h *Handler) UpdateProfile(c *gin.Context) {
	employeeID := c.GetString("employee_id")
	if employeeID == "" {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "No employee record linked to this account", nil)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.UpdateProfile(c.Request.Context(), employeeID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UploadAvatar(c *gin.Context) {
	employeeID := c.GetString("employee_id")
	if employeeID == "" {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "No employee record linked to this account", nil)
		return
	}

	file, err := c.FormFile("picture")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "picture file is required", nil)
		return
	}
	if file.Size > maxAvatarBytes {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "picture exceeds the 5MB limit", nil)
		return
	}

	f, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "cannot read uploaded file", nil)
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "cannot read uploaded file", nil)
		return
	}

	resp, err := h.service.UpdateAvatar(c.Request.Context(), employeeID, raw, file.Filename)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	sub := authz.SubjectFromContext(c)

	if err := h.service.Delete(c.Request.Context(), sub, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
