package auth

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	SystemRole   string `json:"system_role"`
	EmployeeID   string `json:"employee_id,omitempty"`
	DepartmentID string `json:"department_id,omitempty"`
	OrgRole      string `json:"org_role,omitempty"`
}
