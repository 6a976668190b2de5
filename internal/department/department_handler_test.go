package department_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Leonguyenbk/QLCV/internal/department"
	departmenterrors "github.com/Leonguyenbk/QLCV/internal/department/errors"
)

type fakeDepartmentService struct {
	CreateFn     func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetAllFn     func(ctx context.Context) ([]department.DepartmentResponse, error)
	GetOptionsFn func(ctx context.Context) ([]department.DepartmentResponse, error)
	GetByIDFn    func(ctx context.Context, id string) (department.DepartmentResponse, error)
	UpdateFn     func(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	DeleteFn     func(ctx context.Context, id string) error
}

func (f *fakeDepartmentService) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeDepartmentService) GetAll(ctx context.Context) ([]department.DepartmentResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeDepartmentService) GetOptions(ctx context.Context) ([]department.DepartmentResponse, error) {
	return f.GetOptionsFn(ctx)
}
func (f *fakeDepartmentService) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeDepartmentService) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeDepartmentService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func TestDepartmentHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{ID: uuid.New().String(), Name: req.Name}, nil
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name":"Engineering"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":true`)
	})

	t.Run("validation error", func(t *testing.T) {
		h := department.NewHandler(&fakeDepartmentService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":false`)
	})

	t.Run("name conflict", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{}, departmenterrors.ErrDepartmentNameTaken
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name":"Engineering"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestDepartmentHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("refused when not empty", func(t *testing.T) {
		svc := &fakeDepartmentService{
			DeleteFn: func(ctx context.Context, id string) error {
				return departmenterrors.ErrDepartmentNotEmpty
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodDelete, "/departments/x", nil)
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}

		h.Delete(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
