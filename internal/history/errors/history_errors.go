package historyerrors

import (
	"net/http"

	"github.com/Leonguyenbk/QLCV/internal/shared/apperror"
)

var (
	ErrReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"A reason is required when department, position or role changes",
		http.StatusBadRequest,
	)
	ErrOpenPeriodConflict = apperror.New(
		apperror.CodeConflict,
		"Employee already has an open history period",
		http.StatusConflict,
	)
	ErrHistoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee history not found",
		http.StatusNotFound,
	)
)
