package kpi

import (
	"context"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Leonguyenbk/QLCV/internal/absence"
	"github.com/Leonguyenbk/QLCV/internal/authz"
	"github.com/Leonguyenbk/QLCV/internal/employee"
	kpierrors "github.com/Leonguyenbk/QLCV/internal/kpi/errors"
)

// MonthlySummary totals one employee's absence days for a month.
type MonthlySummary struct {
	TotalDays      float64 `json:"total_days"`
	PermittedDays  float64 `json:"permitted_days"`
	UnpermittedDay float64 `json:"unpermitted_days"`
}

//go:generate mockgen -source=kpi_service.go -destination=mock/kpi_service_mock.go -package=mock
type Service interface {
	Summarize(ctx context.Context, employeeID string, month Month) (MonthlySummary, error)
	EmployeeReport(ctx context.Context, employeeID string, month Month) (EmployeeReport, error)
	MonthlyReport(ctx context.Context, actor authz.Subject, month Month, page int) (MonthlyReport, int64, error)
}

type service struct {
	absences  absence.Repository
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(absences absence.Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("kpi.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kpi.service")
	}
	return &service{absences: absences, employees: employees, logger: l}
}

// Score turns a monthly summary into a 0..100 attendance score. Each
// permitted day costs 2 points, each unpermitted day costs 10.
func Score(s MonthlySummary) float64 {
	raw := 100 - 2*s.PermittedDays - 10*s.UnpermittedDay
	clamped := math.Min(100, math.Max(0, raw))
	return math.Round(clamped*100) / 100
}

func (s *service) Summarize(ctx context.Context, employeeID string, month Month) (MonthlySummary, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return MonthlySummary{}, kpierrors.ErrInvalidEmployeeID
	}

	first, last := month.Bounds()
	rows, err := s.absences.FindByEmployeeAndRange(ctx, employeeID, first, last)
	if err != nil {
		return MonthlySummary{}, err
	}

	var sum MonthlySummary
	for _, row := range rows {
		days := row.Part.Days()
		sum.TotalDays += days
		if row.IsPermitted {
			sum.PermittedDays += days
		} else {
			sum.UnpermittedDay += days
		}
	}
	return sum, nil
}

func (s *service) EmployeeReport(ctx context.Context, employeeID string, month Month) (EmployeeReport, error) {
	sum, err := s.Summarize(ctx, employeeID, month)
	if err != nil {
		return EmployeeReport{}, err
	}

	return EmployeeReport{
		EmployeeID: employeeID,
		Month:      month.String(),
		Summary:    sum,
		Score:      Score(sum),
		Nav:        month.Nav(),
	}, nil
}

// MonthlyReport scores every employee the actor is allowed to see for the
// given month. HR_DEPARTMENT actors only see their own department.
func (s *service) MonthlyReport(ctx context.Context, actor authz.Subject, month Month, page int) (MonthlyReport, int64, error) {
	empls, total, err := s.employees.FindAll(ctx, authz.Scope(actor), employee.ListFilter{Page: page})
	if err != nil {
		return MonthlyReport{}, 0, err
	}

	report := MonthlyReport{
		Month: month.String(),
		Nav:   month.Nav(),
		Rows:  make([]ReportRow, 0, len(empls)),
	}

	for _, empl := range empls {
		sum, err := s.Summarize(ctx, empl.ID.String(), month)
		if err != nil {
			s.logger.Error("summarize failed for employee",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return MonthlyReport{}, 0, err
		}
		report.Rows = append(report.Rows, ReportRow{
			EmployeeID:   empl.ID.String(),
			EmployeeCode: empl.Code,
			Name:         empl.Name,
			Summary:      sum,
			Score:        Score(sum),
		})
	}

	return report, total, nil
}
