package departmenterrors

import (
	"net/http"

	"github.com/Leonguyenbk/QLCV/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrDepartmentNameTaken = apperror.New(
		apperror.CodeConflict,
		"Department with the same name already exists",
		http.StatusConflict,
	)
	ErrDepartmentNotEmpty = apperror.New(
		apperror.CodeInvalidState,
		"Department still has employees assigned to it",
		http.StatusConflict,
	)
)
