package history

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	historyerrors "github.com/Leonguyenbk/QLCV/internal/history/errors"
)

// mapCreateError surfaces the partial unique index on open periods (at
// most one row per employee with effective_to IS NULL) as a typed
// conflict instead of a raw driver error.
func mapCreateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return historyerrors.ErrOpenPeriodConflict
	}

	return err
}
