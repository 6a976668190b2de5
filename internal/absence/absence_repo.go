package absence

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=absence_repo.go -destination=mock/absence_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Absence) error
	FindByID(ctx context.Context, id string) (*Absence, error)
	FindByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Absence, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Absence, error)
	Update(ctx context.Context, a *Absence) error
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

func (r *repository) Create(ctx context.Context, a *Absence) error {
	return r.conn(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Absence, error) {
	var a Absence
	err := r.conn(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

// FindByEmployeeAndRange is inclusive on both ends; the aggregator passes
// the first and last day of the month.
func (r *repository) FindByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Absence, error) {
	var rows []Absence
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Where("work_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("work_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Absence, error) {
	var rows []Absence
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Order("work_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *Absence) error {
	return r.conn(ctx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.conn(ctx).Delete(&Absence{}, "id = ?", id).Error
}
