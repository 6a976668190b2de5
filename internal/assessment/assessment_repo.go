package assessment

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=assessment_repo.go -destination=mock/assessment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *TaskAssessment) error
	FindByID(ctx context.Context, id string) (*TaskAssessment, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]TaskAssessment, error)
	Update(ctx context.Context, a *TaskAssessment) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn binds the session to the transaction handed over via WithTx, so
// writes inside a service transaction roll back with it.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	if r.tx == nil {
		return r.db.WithContext(ctx)
	}
	db := r.db.Session(&gorm.Session{Context: ctx, NewDB: true})
	db.Statement.ConnPool = r.tx
	return db
}

func (r *repository) Create(ctx context.Context, a *TaskAssessment) error {
	return r.conn(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*TaskAssessment, error) {
	var a TaskAssessment
	err := r.conn(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]TaskAssessment, error) {
	var rows []TaskAssessment
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Order("assessment_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *TaskAssessment) error {
	return r.conn(ctx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.conn(ctx).Delete(&TaskAssessment{}, "id = ?", id).Error
}
