package assessment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	assessmenterrors "github.com/Leonguyenbk/QLCV/internal/assessment/errors"
	"github.com/Leonguyenbk/QLCV/internal/shared/apperror"
)

//go:generate mockgen -source=assessment_service.go -destination=mock/assessment_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, assessorID string, req CreateAssessmentRequest) (AssessmentResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]AssessmentResponse, error)
	Update(ctx context.Context, id string, req UpdateAssessmentRequest) (AssessmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("assessment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assessment.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, assessorID string, req CreateAssessmentRequest) (AssessmentResponse, error) {
	if req.Score < 0 || req.Score > 100 {
		return AssessmentResponse{}, assessmenterrors.ErrScoreOutOfRange
	}
	date, err := time.Parse("2006-01-02", req.AssessmentDate)
	if err != nil {
		return AssessmentResponse{}, assessmenterrors.ErrInvalidAssessmentDate
	}
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AssessmentResponse{}, apperror.InvalidField("employee_id")
	}
	assessor, err := uuid.Parse(assessorID)
	if err != nil {
		return AssessmentResponse{}, apperror.ErrUnauthorized
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssessmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := &TaskAssessment{
		ID:             uuid.New(),
		EmployeeID:     employeeID,
		Content:        req.Content,
		Score:          req.Score,
		AssessmentDate: date,
		AssessorID:     assessor,
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("create assessment persist failed", zap.Error(err))
		return AssessmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AssessmentResponse{}, err
	}

	return mapToResponse(*row), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]AssessmentResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, assessmenterrors.ErrAssessmentNotFound
	}

	rows, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	res := make([]AssessmentResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAssessmentRequest) (AssessmentResponse, error) {
	if req.Score < 0 || req.Score > 100 {
		return AssessmentResponse{}, assessmenterrors.ErrScoreOutOfRange
	}
	date, err := time.Parse("2006-01-02", req.AssessmentDate)
	if err != nil {
		return AssessmentResponse{}, assessmenterrors.ErrInvalidAssessmentDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssessmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AssessmentResponse{}, assessmenterrors.ErrAssessmentNotFound
		}
		return AssessmentResponse{}, err
	}

	row.Content = req.Content
	row.Score = req.Score
	row.AssessmentDate = date

	if err := qtx.Update(ctx, row); err != nil {
		return AssessmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AssessmentResponse{}, err
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
		return err
	}

	return tx.Commit()
}

func mapToResponse(a TaskAssessment) AssessmentResponse {
	return AssessmentResponse{
		ID:             a.ID.String(),
		EmployeeID:     a.EmployeeID.String(),
		Content:        a.Content,
		Score:          a.Score,
		AssessmentDate: a.AssessmentDate.Format("2006-01-02"),
		AssessorID:     a.AssessorID.String(),
	}
}
