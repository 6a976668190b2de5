package user

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Leonguyenbk/QLCV/internal/domain"
	"github.com/Leonguyenbk/QLCV/internal/shared/apperror"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error)
	ResetPassword(ctx context.Context, id string, req ResetPasswordRequest) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	role, err := domain.ParseSystemRole(req.SystemRole)
	if err != nil {
		return UserResponse{}, apperror.InvalidField("system_role")
	}

	employeeID, err := parseOptionalUUID(req.EmployeeID)
	if err != nil {
		return UserResponse{}, apperror.InvalidField("employee_id")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := &User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: string(hash),
		SystemRole:   role,
		EmployeeID:   employeeID,
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("create user persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return UserResponse{}, err
	}

	s.logger.Info("create user success",
		zap.String("user_id", row.ID.String()),
		zap.String("system_role", string(role)),
	)

	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]UserResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error) {
	role, err := domain.ParseSystemRole(req.SystemRole)
	if err != nil {
		return UserResponse{}, apperror.InvalidField("system_role")
	}

	employeeID, err := parseOptionalUUID(req.EmployeeID)
	if err != nil {
		return UserResponse{}, apperror.InvalidField("employee_id")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	row.SystemRole = role
	row.EmployeeID = employeeID

	if err := qtx.Update(ctx, row); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return UserResponse{}, err
	}

	return mapToResponse(*row), nil
}

func (s *service) ResetPassword(ctx context.Context, id string, req ResetPasswordRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	row.PasswordHash = string(hash)

	if err := qtx.Update(ctx, row); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("password reset", zap.String("user_id", id))
	return nil
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

func parseOptionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func mapToResponse(u User) UserResponse {
	res := UserResponse{
		ID:         u.ID.String(),
		Username:   u.Username,
		SystemRole: string(u.SystemRole),
	}
	if u.EmployeeID != nil {
		res.EmployeeID = u.EmployeeID.String()
	}
	return res
}
