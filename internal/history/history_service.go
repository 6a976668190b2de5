package history

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	historyerrors "github.com/Leonguyenbk/QLCV/internal/history/errors"
)

// ApplyInput carries a proposed snapshot for one employee through the
// materiality check.
type ApplyInput struct {
	EmployeeID uuid.UUID
	Proposed   Snapshot
	Reason     string
	Actor      string
	IsCreation bool
}

//go:generate mockgen -source=history_service.go -destination=mock/history_service_mock.go -package=mock
type Service interface {
	// Apply records the proposed snapshot inside the caller's transaction.
	// It returns the newly opened period, or nil when nothing material
	// changed and no row was written.
	Apply(ctx context.Context, tx *sql.Tx, input ApplyInput) (*EmployeeHistory, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]HistoryResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("history.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("history.service")
	}
	return &service{repo: repo, logger: l, now: time.Now}
}

// NewServiceWithClock fixes "today" for tests.
func NewServiceWithClock(repo Repository, now func() time.Time, logger ...*zap.Logger) Service {
	svc := NewService(repo, logger...).(*service)
	svc.now = now
	return svc
}

func (s *service) Apply(ctx context.Context, tx *sql.Tx, input ApplyInput) (*EmployeeHistory, error) {
	qtx := s.repo.WithTx(tx)
	today := s.today()
	reason := strings.TrimSpace(input.Reason)

	if input.IsCreation {
		row := s.newOpenPeriod(input, today, ChangeTypeCreate, reason)
		if err := qtx.Create(ctx, row); err != nil {
			s.logger.Error("create initial history period failed",
				zap.String("employee_id", input.EmployeeID.String()),
				zap.Error(err),
			)
			return nil, mapCreateError(err)
		}
		return row, nil
	}

	open, err := qtx.FindOpenByEmployee(ctx, input.EmployeeID.String())
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		s.logger.Error("find open history period failed",
			zap.String("employee_id", input.EmployeeID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	// With no open period the previous values are unknown, so the diff
	// runs against an empty snapshot.
	var old Snapshot
	if open != nil && err == nil {
		old = open.Snapshot()
	}

	changed := diff(old, input.Proposed)
	if !changed.any() {
		// Metadata-only edit (name, email, phone): no history mutation.
		return nil, nil
	}

	// Reason gate runs before any write so a rejected update leaves no
	// partial mutation behind.
	if reason == "" {
		return nil, historyerrors.ErrReasonRequired
	}

	changeType := changed.classify()

	if open != nil && err == nil {
		if err := qtx.Close(ctx, open.ID.String(), today); err != nil {
			s.logger.Error("close history period failed",
				zap.String("employee_id", input.EmployeeID.String()),
				zap.String("period_id", open.ID.String()),
				zap.Error(err),
			)
			return nil, err
		}
	}

	row := s.newOpenPeriod(input, today, changeType, reason)
	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("open history period failed",
			zap.String("employee_id", input.EmployeeID.String()),
			zap.Error(err),
		)
		return nil, mapCreateError(err)
	}

	s.logger.Info("history period rotated",
		zap.String("employee_id", input.EmployeeID.String()),
		zap.String("change_type", changeType),
		zap.String("changed_by", input.Actor),
	)

	return row, nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]HistoryResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, historyerrors.ErrHistoryNotFound
	}

	rows, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("list employee history failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return nil, err
	}

	res := make([]HistoryResponse, len(rows))
	for i, h := range rows {
		res[i] = mapToResponse(h)
	}
	return res, nil
}

func (s *service) newOpenPeriod(input ApplyInput, today time.Time, changeType, reason string) *EmployeeHistory {
	return &EmployeeHistory{
		ID:            uuid.New(),
		EmployeeID:    input.EmployeeID,
		EffectiveFrom: today,
		DepartmentID:  input.Proposed.DepartmentID,
		Position:      input.Proposed.Position,
		OrgRole:       input.Proposed.OrgRole,
		ChangeType:    changeType,
		Reason:        reason,
		Source:        SourceAdmin,
		ChangedBy:     input.Actor,
	}
}

// today truncates to date granularity; periods are keyed by calendar day,
// not time of day.
func (s *service) today() time.Time {
	return s.now().UTC().Truncate(24 * time.Hour)
}
