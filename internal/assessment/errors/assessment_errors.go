package assessmenterrors

import (
	"net/http"

	"github.com/Leonguyenbk/QLCV/internal/shared/apperror"
)

var (
	ErrAssessmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Assessment not found",
		http.StatusNotFound,
	)
	ErrScoreOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"Score must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrInvalidAssessmentDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid assessment_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
