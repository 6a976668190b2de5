package absence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	absenceerrors "github.com/Leonguyenbk/QLCV/internal/absence/errors"
	"github.com/Leonguyenbk/QLCV/internal/domain"
)

type fakeRepo struct {
	withTxFn   func(tx *sql.Tx) Repository
	createFn   func(ctx context.Context, a *Absence) error
	findByIDFn func(ctx context.Context, id string) (*Absence, error)
	findAllFn  func(ctx context.Context, employeeID string) ([]Absence, error)
	updateFn   func(ctx context.Context, a *Absence) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository                 { return f }
func (f *fakeRepo) Create(ctx context.Context, a *Absence) error { return f.createFn(ctx, a) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Absence, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Absence, error) {
	return nil, nil
}
func (f *fakeRepo) FindAllByEmployee(ctx context.Context, employeeID string) ([]Absence, error) {
	return f.findAllFn(ctx, employeeID)
}
func (f *fakeRepo) Update(ctx context.Context, a *Absence) error { return f.updateFn(ctx, a) }
func (f *fakeRepo) Delete(ctx context.Context, id string) error  { return f.deleteFn(ctx, id) }

func TestAbsenceService_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New().String()

	var saved Absence
	repo := &fakeRepo{
		createFn: func(ctx context.Context, a *Absence) error {
			saved = *a
			return nil
		},
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	res, err := svc.Create(context.Background(), CreateAbsenceRequest{
		EmployeeID:  employeeID,
		WorkDate:    "2024-07-03",
		Part:        "AM",
		IsPermitted: true,
		Reason:      "doctor visit",
	})

	assert.NoError(t, err)
	assert.Equal(t, employeeID, res.EmployeeID)
	assert.Equal(t, "2024-07-03", res.WorkDate)
	assert.Equal(t, 0.5, res.Days)
	assert.Equal(t, domain.AbsenceMorning, saved.Part)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAbsenceService_Create_DuplicateSlot(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		createFn: func(ctx context.Context, a *Absence) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_absence_slot"}
		},
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), CreateAbsenceRequest{
		EmployeeID: uuid.New().String(),
		WorkDate:   "2024-07-03",
		Part:       "FULL",
	})

	assert.ErrorIs(t, err, absenceerrors.ErrDuplicateSlot)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAbsenceService_Create_InvalidWorkDate(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{})

	_, err := svc.Create(context.Background(), CreateAbsenceRequest{
		EmployeeID: uuid.New().String(),
		WorkDate:   "03-07-2024",
		Part:       "FULL",
	})

	assert.ErrorIs(t, err, absenceerrors.ErrInvalidWorkDate)
}

func TestAbsenceService_Update_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Absence, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Update(context.Background(), uuid.New().String(), UpdateAbsenceRequest{
		WorkDate: "2024-07-04",
		Part:     "PM",
	})

	assert.ErrorIs(t, err, absenceerrors.ErrAbsenceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAbsenceService_GetByEmployee(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New()
	repo := &fakeRepo{
		findAllFn: func(ctx context.Context, id string) ([]Absence, error) {
			return []Absence{
				{ID: uuid.New(), EmployeeID: employeeID, WorkDate: time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC), Part: domain.AbsenceFullDay},
			}, nil
		},
	}

	svc := NewService(db, repo)

	res, err := svc.GetByEmployee(context.Background(), employeeID.String())
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, 1.0, res[0].Days)
}
