package domain

import "fmt"

// AbsencePart marks which part of the work day an absence covers.
type AbsencePart string

const (
	AbsenceFullDay AbsencePart = "FULL"
	AbsenceMorning AbsencePart = "AM"
	AbsenceEvening AbsencePart = "PM"
)

func ParseAbsencePart(s string) (AbsencePart, error) {
	switch AbsencePart(s) {
	case AbsenceFullDay, AbsenceMorning, AbsenceEvening:
		return AbsencePart(s), nil
	}
	return "", fmt.Errorf("unknown absence part: %q", s)
}

// Days is the day-fraction one absence row contributes to monthly totals.
func (p AbsencePart) Days() float64 {
	if p == AbsenceFullDay {
		return 1.0
	}
	return 0.5
}
