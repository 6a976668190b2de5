package kpi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clockAt(year int, month time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, 15, 9, 30, 0, 0, time.UTC)
	}
}

func TestParseMonth(t *testing.T) {
	now := clockAt(2025, time.March)

	tests := []struct {
		name      string
		input     string
		wantYear  int
		wantMonth time.Month
	}{
		{"primary MM-YYYY", "07-2024", 2024, time.July},
		{"fallback YYYY-MM", "2024-07", 2024, time.July},
		{"out of range month falls back to now", "13-2024", 2025, time.March},
		{"garbage falls back to now", "next-month", 2025, time.March},
		{"empty falls back to now", "", 2025, time.March},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ParseMonth(tt.input, now)
			assert.Equal(t, tt.wantYear, m.Year)
			assert.Equal(t, tt.wantMonth, m.Month)
		})
	}
}

func TestMonthBounds(t *testing.T) {
	m := Month{Year: 2024, Month: time.February}
	first, last := m.Bounds()
	assert.Equal(t, "2024-02-01", first.Format("2006-01-02"))
	// 2024 is a leap year.
	assert.Equal(t, "2024-02-29", last.Format("2006-01-02"))
}

func TestMonthNav_YearWrap(t *testing.T) {
	jan := Month{Year: 2024, Month: time.January}.Nav()
	assert.Equal(t, "12-2023", jan.Prev)
	assert.Equal(t, "02-2024", jan.Next)

	dec := Month{Year: 2024, Month: time.December}.Nav()
	assert.Equal(t, "11-2024", dec.Prev)
	assert.Equal(t, "01-2025", dec.Next)
}

func TestMonthString(t *testing.T) {
	assert.Equal(t, "07-2024", Month{Year: 2024, Month: time.July}.String())
}
