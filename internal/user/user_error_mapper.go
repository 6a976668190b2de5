package user

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	usererrors "github.com/Leonguyenbk/QLCV/internal/user/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "employee") {
				return usererrors.ErrEmployeeAlreadyLinked
			}
			return usererrors.ErrUsernameTaken
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		if strings.Contains(errMsg, "employee") {
			return usererrors.ErrEmployeeAlreadyLinked
		}
		return usererrors.ErrUsernameTaken
	}

	return err
}
