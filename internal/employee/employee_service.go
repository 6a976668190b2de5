package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Leonguyenbk/QLCV/internal/authz"
	"github.com/Leonguyenbk/QLCV/internal/avatar"
	"github.com/Leonguyenbk/QLCV/internal/domain"
	employeeerrors "github.com/Leonguyenbk/QLCV/internal/employee/errors"
	"github.com/Leonguyenbk/QLCV/internal/events"
	"github.com/Leonguyenbk/QLCV/internal/history"
	"github.com/Leonguyenbk/QLCV/internal/messaging/kafka"
	"github.com/Leonguyenbk/QLCV/internal/shared/contextutil"
	"github.com/Leonguyenbk/QLCV/internal/shared/counter"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor string, req CreateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context, sub authz.Subject, filter ListFilter) ([]EmployeeResponse, int64, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, sub authz.Subject, actor, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	UpdateProfile(ctx context.Context, employeeID string, req UpdateProfileRequest) (EmployeeResponse, error)
	UpdateAvatar(ctx context.Context, employeeID string, raw []byte, filename string) (EmployeeResponse, error)
	Delete(ctx context.Context, sub authz.Subject, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	history history.Service
	gate    authz.Gate
	counter counter.Repository
	outbox  kafka.OutboxRepository
	avatars avatar.Storage
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	historyService history.Service,
	gate authz.Gate,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	avatarStorage avatar.Storage,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		history: historyService,
		gate:    gate,
		counter: counterRepo,
		outbox:  outboxRepo,
		avatars: avatarStorage,
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, actor string, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("position", req.Position),
	)

	proposed, birth, err := parseProposed(req.DepartmentID, req.Position, req.OrgRole, req.YearOfBirth)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	code, err := s.nextCode(ctx)
	if err != nil {
		s.logger.Error("create employee generate code failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:           uuid.New(),
		Code:         code,
		Name:         req.Name,
		YearOfBirth:  birth,
		Position:     req.Position,
		Email:        req.Email,
		Phone:        req.Phone,
		DepartmentID: proposed.DepartmentID,
		OrgRole:      proposed.OrgRole,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	hist, err := s.history.Apply(ctx, tx, history.ApplyInput{
		EmployeeID: empl.ID,
		Proposed:   proposed,
		Reason:     req.Reason,
		Actor:      actor,
		IsCreation: true,
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	if err := s.enqueueCreated(ctx, tx, rid, empl.ID); err != nil {
		return EmployeeResponse{}, err
	}
	if err := s.enqueueHistory(ctx, tx, rid, hist); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapToResponse(*empl), nil
}

func (s *service) List(ctx context.Context, sub authz.Subject, filter ListFilter) ([]EmployeeResponse, int64, error) {
	empls, total, err := s.repo.FindAll(ctx, authz.Scope(sub), filter)
	if err != nil {
		return nil, 0, mapRepositoryError(err)
	}

	return mapToListResponse(empls), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

// Update routes the admin-console edit through the history engine: the
// engine decides whether the change is material, demands a reason, and
// rotates the open period inside this transaction.
func (s *service) Update(ctx context.Context, sub authz.Subject, actor, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if !s.gate.CanManage(sub, authz.Target{
		EmployeeID:   target.ID,
		DepartmentID: target.DepartmentID,
		OrgRole:      target.OrgRole,
	}) {
		s.logger.Warn("update employee denied",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
		)
		return EmployeeResponse{}, employeeerrors.ErrManageForbidden
	}

	proposed, birth, err := parseProposed(req.DepartmentID, req.Position, req.OrgRole, req.YearOfBirth)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Reason gate and period rotation happen before the row update so a
	// rejected material change leaves everything untouched.
	hist, err := s.history.Apply(ctx, tx, history.ApplyInput{
		EmployeeID: target.ID,
		Proposed:   proposed,
		Reason:     req.Reason,
		Actor:      actor,
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	target.Name = req.Name
	target.YearOfBirth = birth
	target.Position = req.Position
	target.Email = req.Email
	target.Phone = req.Phone
	target.DepartmentID = proposed.DepartmentID
	target.OrgRole = proposed.OrgRole

	if err := qtx.Update(ctx, target); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueHistory(ctx, tx, rid, hist); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*target), nil
}

// UpdateProfile is the self-service path: contact fields only, never a
// history mutation.
func (s *service) UpdateProfile(ctx context.Context, employeeID string, req UpdateProfileRequest) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.Name = req.Name
	empl.Email = req.Email
	empl.Phone = req.Phone

	if err := s.repo.Update(ctx, empl); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) UpdateAvatar(ctx context.Context, employeeID string, raw []byte, filename string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	path, err := s.avatars.Store(raw, filename)
	if err != nil {
		return EmployeeResponse{}, err
	}

	empl.AvatarPath = path

	if err := s.repo.Update(ctx, empl); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, sub authz.Subject, id string) error {
	if !s.gate.Enforce(sub.SystemRole, "admin", "access") {
		return employeeerrors.ErrManageForbidden
	}
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) nextCode(ctx context.Context) (string, error) {
	nextVal, err := s.counter.GetNextValue(ctx, "employee_code")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("NV-%06d", nextVal), nil
}

func (s *service) enqueueCreated(ctx context.Context, tx *sql.Tx, rid string, employeeID uuid.UUID) error {
	if s.outbox == nil {
		return nil
	}

	event := events.EmployeeCreatedEvent{
		EventType:  "employee_created",
		RequestID:  rid,
		EmployeeID: employeeID.String(),
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee",
		AggregateID:   employeeID.String(),
		EventType:     event.EventType,
		Topic:         events.EmployeeCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) enqueueHistory(ctx context.Context, tx *sql.Tx, rid string, hist *history.EmployeeHistory) error {
	if s.outbox == nil || hist == nil {
		return nil
	}

	event := events.EmployeeHistoryRecordedEvent{
		EventType:     "employee_history_recorded",
		RequestID:     rid,
		EmployeeID:    hist.EmployeeID.String(),
		HistoryID:     hist.ID.String(),
		ChangeType:    hist.ChangeType,
		EffectiveFrom: hist.EffectiveFrom.Format("2006-01-02"),
		ChangedBy:     hist.ChangedBy,
		OccurredAt:    time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee_history",
		AggregateID:   hist.EmployeeID.String(),
		EventType:     event.EventType,
		Topic:         events.EmployeeHistoryTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func parseProposed(departmentID, position, orgRole, yearOfBirth string) (history.Snapshot, *time.Time, error) {
	snapshot := history.Snapshot{Position: position}

	if departmentID != "" {
		id, err := uuid.Parse(departmentID)
		if err != nil {
			return history.Snapshot{}, nil, employeeerrors.ErrInvalidDepartmentID
		}
		snapshot.DepartmentID = &id
	}

	role, err := domain.ParseOrgRole(orgRole)
	if err != nil {
		return history.Snapshot{}, nil, err
	}
	snapshot.OrgRole = role

	var birth *time.Time
	if yearOfBirth != "" {
		t, err := time.Parse("2006-01-02", yearOfBirth)
		if err != nil {
			return history.Snapshot{}, nil, employeeerrors.ErrInvalidBirthDate
		}
		birth = &t
	}

	return snapshot, birth, nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         empl.ID.String(),
		Code:       empl.Code,
		Name:       empl.Name,
		Position:   empl.Position,
		Email:      empl.Email,
		Phone:      empl.Phone,
		AvatarPath: empl.AvatarPath,
		OrgRole:    string(empl.OrgRole),
	}
	if empl.YearOfBirth != nil {
		resp.YearOfBirth = empl.YearOfBirth.Format("2006-01-02")
	}
	if empl.DepartmentID != nil {
		resp.DepartmentID = empl.DepartmentID.String()
	}
	if empl.Department != nil {
		resp.Department = &EmployeeDepartmentResponse{
			ID:   empl.Department.ID.String(),
			Name: empl.Department.Name,
		}
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
