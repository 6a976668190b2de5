package assessment

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	assessmenterrors "github.com/Leonguyenbk/QLCV/internal/assessment/errors"
)

type fakeRepo struct {
	Repository
	createFn   func(ctx context.Context, a *TaskAssessment) error
	findByIDFn func(ctx context.Context, id string) (*TaskAssessment, error)
	updateFn   func(ctx context.Context, a *TaskAssessment) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, a *TaskAssessment) error {
	return f.createFn(ctx, a)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*TaskAssessment, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, a *TaskAssessment) error {
	return f.updateFn(ctx, a)
}

func TestAssessmentService_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	assessorID := uuid.New().String()
	employeeID := uuid.New().String()

	var saved TaskAssessment
	repo := &fakeRepo{
		createFn: func(ctx context.Context, a *TaskAssessment) error {
			saved = *a
			return nil
		},
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), assessorID, CreateAssessmentRequest{
		EmployeeID:     employeeID,
		Content:        "Delivered the reporting module on schedule",
		Score:          85,
		AssessmentDate: "2024-07-31",
	})

	assert.NoError(t, err)
	assert.Equal(t, 85, resp.Score)
	assert.Equal(t, assessorID, resp.AssessorID)
	assert.Equal(t, "2024-07-31", resp.AssessmentDate)
	assert.Equal(t, 85, saved.Score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssessmentService_Create_ScoreOutOfRange(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{})

	for _, score := range []int{-1, 101} {
		_, err := svc.Create(context.Background(), uuid.New().String(), CreateAssessmentRequest{
			EmployeeID:     uuid.New().String(),
			Content:        "x",
			Score:          score,
			AssessmentDate: "2024-07-31",
		})
		assert.ErrorIs(t, err, assessmenterrors.ErrScoreOutOfRange)
	}
}

func TestAssessmentService_Create_InvalidDate(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{})

	_, err := svc.Create(context.Background(), uuid.New().String(), CreateAssessmentRequest{
		EmployeeID:     uuid.New().String(),
		Content:        "x",
		Score:          50,
		AssessmentDate: "31-07-2024",
	})
	assert.ErrorIs(t, err, assessmenterrors.ErrInvalidAssessmentDate)
}
