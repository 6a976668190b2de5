package kpi

type EmployeeReport struct {
	EmployeeID string         `json:"employee_id"`
	Month      string         `json:"month"`
	Summary    MonthlySummary `json:"summary"`
	Score      float64        `json:"kpi_score"`
	Nav        MonthNav       `json:"nav"`
}

type ReportRow struct {
	EmployeeID   string         `json:"employee_id"`
	EmployeeCode string         `json:"employee_code"`
	Name         string         `json:"name"`
	Summary      MonthlySummary `json:"summary"`
	Score        float64        `json:"kpi_score"`
}

type MonthlyReport struct {
	Month string      `json:"month"`
	Nav   MonthNav    `json:"nav"`
	Rows  []ReportRow `json:"rows"`
}
