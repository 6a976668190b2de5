package kpi

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Leonguyenbk/QLCV/internal/absence"
	"github.com/Leonguyenbk/QLCV/internal/domain"
)

type fakeAbsenceRepo struct {
	absence.Repository
	findByRangeFn func(ctx context.Context, employeeID string, from, to time.Time) ([]absence.Absence, error)
}

func (f *fakeAbsenceRepo) WithTx(tx *sql.Tx) absence.Repository { return f }
func (f *fakeAbsenceRepo) FindByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]absence.Absence, error) {
	return f.findByRangeFn(ctx, employeeID, from, to)
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestKPIService_Summarize(t *testing.T) {
	employeeID := uuid.New()
	month := Month{Year: 2024, Month: time.July}

	repo := &fakeAbsenceRepo{
		findByRangeFn: func(ctx context.Context, id string, from, to time.Time) ([]absence.Absence, error) {
			assert.Equal(t, employeeID.String(), id)
			assert.Equal(t, "2024-07-01", from.Format("2006-01-02"))
			assert.Equal(t, "2024-07-31", to.Format("2006-01-02"))
			return []absence.Absence{
				{WorkDate: day("2024-07-03"), Part: domain.AbsenceFullDay, IsPermitted: false},
				{WorkDate: day("2024-07-10"), Part: domain.AbsenceMorning, IsPermitted: true},
			}, nil
		},
	}

	svc := NewService(repo, nil)

	sum, err := svc.Summarize(context.Background(), employeeID.String(), month)
	assert.NoError(t, err)
	assert.Equal(t, 1.5, sum.TotalDays)
	assert.Equal(t, 0.5, sum.PermittedDays)
	assert.Equal(t, 1.0, sum.UnpermittedDay)

	// 100 - 2*0.5 - 10*1.0
	assert.Equal(t, 89.0, Score(sum))
}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		summary MonthlySummary
		want    float64
	}{
		{"no absences", MonthlySummary{}, 100.0},
		{"permitted only", MonthlySummary{PermittedDays: 3}, 94.0},
		{"unpermitted only", MonthlySummary{UnpermittedDay: 2}, 80.0},
		{"half days round to 2dp", MonthlySummary{PermittedDays: 0.5, UnpermittedDay: 0.5}, 94.0},
		{"clamped at zero", MonthlySummary{UnpermittedDay: 15}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.summary))
		})
	}
}

// More unpermitted absence can never raise the score.
func TestScore_Monotonic(t *testing.T) {
	prev := Score(MonthlySummary{})
	for u := 0.5; u <= 12; u += 0.5 {
		cur := Score(MonthlySummary{UnpermittedDay: u})
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestKPIService_Summarize_InvalidID(t *testing.T) {
	svc := NewService(&fakeAbsenceRepo{}, nil)
	_, err := svc.Summarize(context.Background(), "nope", Month{Year: 2024, Month: time.July})
	assert.Error(t, err)
}

func TestKPIService_EmployeeReport(t *testing.T) {
	employeeID := uuid.New()
	repo := &fakeAbsenceRepo{
		findByRangeFn: func(ctx context.Context, id string, from, to time.Time) ([]absence.Absence, error) {
			return nil, nil
		},
	}

	svc := NewService(repo, nil)

	rep, err := svc.EmployeeReport(context.Background(), employeeID.String(), Month{Year: 2024, Month: time.December})
	assert.NoError(t, err)
	assert.Equal(t, 100.0, rep.Score)
	assert.Equal(t, "12-2024", rep.Month)
	assert.Equal(t, "11-2024", rep.Nav.Prev)
	assert.Equal(t, "01-2025", rep.Nav.Next)
}
