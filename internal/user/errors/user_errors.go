package usererrors

import (
	"net/http"

	"github.com/Leonguyenbk/QLCV/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"Username is already taken",
		http.StatusConflict,
	)
	ErrEmployeeAlreadyLinked = apperror.New(
		apperror.CodeConflict,
		"This employee is already linked to another account",
		http.StatusConflict,
	)
)
