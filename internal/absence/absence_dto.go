package absence

type CreateAbsenceRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	WorkDate    string `json:"work_date" binding:"required"`
	Part        string `json:"part" binding:"required,oneof=FULL AM PM"`
	IsPermitted bool   `json:"is_permitted"`
	Reason      string `json:"reason"`
}

type UpdateAbsenceRequest struct {
	WorkDate    string `json:"work_date" binding:"required"`
	Part        string `json:"part" binding:"required,oneof=FULL AM PM"`
	IsPermitted bool   `json:"is_permitted"`
	Reason      string `json:"reason"`
}

type AbsenceResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	WorkDate    string  `json:"work_date"`
	Part        string  `json:"part"`
	Days        float64 `json:"days"`
	IsPermitted bool    `json:"is_permitted"`
	Reason      string  `json:"reason,omitempty"`
}
