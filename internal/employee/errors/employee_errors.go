package employeeerrors

import (
	"net/http"

	"github.com/Leonguyenbk/QLCV/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeCodeTaken = apperror.New(
		apperror.CodeConflict,
		"Employee code already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department ID",
		http.StatusBadRequest,
	)
	ErrInvalidBirthDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid year_of_birth format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrManageForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to manage this employee",
		http.StatusForbidden,
	)
)
