package absenceerrors

import (
	"net/http"

	"github.com/Leonguyenbk/QLCV/internal/shared/apperror"
)

var (
	ErrAbsenceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Absence not found",
		http.StatusNotFound,
	)
	ErrDuplicateSlot = apperror.New(
		apperror.CodeConflict,
		"An absence is already recorded for this employee, date and day part",
		http.StatusConflict,
	)
	ErrInvalidWorkDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid work_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
