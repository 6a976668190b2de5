package audit

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=audit_repo.go -destination=mock/audit_repo_mock.go -package=mock
type Repository interface {
	// Create is idempotent on history_id so redelivered messages are
	// absorbed silently.
	Create(ctx context.Context, entry *AuditLog) error
	FindByEmployee(ctx context.Context, employeeID string) ([]AuditLog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *AuditLog) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "history_id"}},
			DoNothing: true,
		}).
		Create(entry).Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]AuditLog, error) {
	var rows []AuditLog
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("occurred_at ASC, created_at ASC").
		Find(&rows).Error
	return rows, err
}
