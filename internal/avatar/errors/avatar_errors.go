package avatarerrors

import (
	"net/http"

	"github.com/Leonguyenbk/QLCV/internal/shared/apperror"
)

var (
	ErrUnsupportedImageType = apperror.New(
		apperror.CodeInvalidInput,
		"Only JPG, PNG and WEBP images are accepted",
		http.StatusBadRequest,
	)
	ErrInvalidImage = apperror.New(
		apperror.CodeInvalidInput,
		"The uploaded file is not a valid image",
		http.StatusBadRequest,
	)
)
