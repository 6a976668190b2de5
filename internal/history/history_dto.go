package history

import "time"

type HistoryResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EffectiveFrom string  `json:"effective_from"`
	EffectiveTo   *string `json:"effective_to,omitempty"`
	DepartmentID  string  `json:"department_id,omitempty"`
	Position      string  `json:"position"`
	OrgRole       string  `json:"org_role"`
	ChangeType    string  `json:"change_type"`
	Reason        string  `json:"reason,omitempty"`
	Source        string  `json:"source"`
	ChangedBy     string  `json:"changed_by"`
	CreatedAt     string  `json:"created_at"`
}

func mapToResponse(h EmployeeHistory) HistoryResponse {
	resp := HistoryResponse{
		ID:            h.ID.String(),
		EmployeeID:    h.EmployeeID.String(),
		EffectiveFrom: h.EffectiveFrom.Format("2006-01-02"),
		Position:      h.Position,
		OrgRole:       string(h.OrgRole),
		ChangeType:    h.ChangeType,
		Reason:        h.Reason,
		Source:        h.Source,
		ChangedBy:     h.ChangedBy,
		CreatedAt:     h.CreatedAt.Format(time.RFC3339),
	}
	if h.EffectiveTo != nil {
		v := h.EffectiveTo.Format("2006-01-02")
		resp.EffectiveTo = &v
	}
	if h.DepartmentID != nil {
		resp.DepartmentID = h.DepartmentID.String()
	}
	return resp
}
