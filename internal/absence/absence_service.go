package absence

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	absenceerrors "github.com/Leonguyenbk/QLCV/internal/absence/errors"
	"github.com/Leonguyenbk/QLCV/internal/domain"
	"github.com/Leonguyenbk/QLCV/internal/shared/apperror"
)

//go:generate mockgen -source=absence_service.go -destination=mock/absence_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAbsenceRequest) (AbsenceResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]AbsenceResponse, error)
	Update(ctx context.Context, id string, req UpdateAbsenceRequest) (AbsenceResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("absence.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("absence.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateAbsenceRequest) (AbsenceResponse, error) {
	workDate, err := time.Parse("2006-01-02", req.WorkDate)
	if err != nil {
		return AbsenceResponse{}, absenceerrors.ErrInvalidWorkDate
	}
	part, err := domain.ParseAbsencePart(req.Part)
	if err != nil {
		return AbsenceResponse{}, apperror.InvalidField("part")
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AbsenceResponse{}, apperror.InvalidField("employee_id")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AbsenceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := &Absence{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		WorkDate:    workDate,
		Part:        part,
		IsPermitted: req.IsPermitted,
		Reason:      req.Reason,
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("create absence persist failed", zap.Error(err))
		return AbsenceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return AbsenceResponse{}, err
	}

	s.logger.Info("create absence success",
		zap.String("employee_id", req.EmployeeID),
		zap.String("work_date", req.WorkDate),
		zap.String("part", req.Part),
	)

	return mapToResponse(*row), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]AbsenceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, absenceerrors.ErrAbsenceNotFound
	}

	rows, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]AbsenceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAbsenceRequest) (AbsenceResponse, error) {
	workDate, err := time.Parse("2006-01-02", req.WorkDate)
	if err != nil {
		return AbsenceResponse{}, absenceerrors.ErrInvalidWorkDate
	}
	part, err := domain.ParseAbsencePart(req.Part)
	if err != nil {
		return AbsenceResponse{}, apperror.InvalidField("part")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AbsenceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return AbsenceResponse{}, mapRepositoryError(err)
	}

	row.WorkDate = workDate
	row.Part = part
	row.IsPermitted = req.IsPermitted
	row.Reason = req.Reason

	if err := qtx.Update(ctx, row); err != nil {
		return AbsenceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return AbsenceResponse{}, err
	}

	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return absenceerrors.ErrAbsenceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return absenceerrors.ErrDuplicateSlot
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return absenceerrors.ErrDuplicateSlot
	}

	return err
}

func mapToResponse(a Absence) AbsenceResponse {
	return AbsenceResponse{
		ID:          a.ID.String(),
		EmployeeID:  a.EmployeeID.String(),
		WorkDate:    a.WorkDate.Format("2006-01-02"),
		Part:        string(a.Part),
		Days:        a.Part.Days(),
		IsPermitted: a.IsPermitted,
		Reason:      a.Reason,
	}
}
