package kpierrors

import (
	"net/http"

	"github.com/Leonguyenbk/QLCV/internal/shared/apperror"
)

var ErrInvalidEmployeeID = apperror.New(
	apperror.CodeInvalidInput,
	"Invalid employee id",
	http.StatusBadRequest,
)
