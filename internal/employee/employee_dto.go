package employee

type CreateEmployeeRequest struct {
	Name         string `json:"name" binding:"required"`
	YearOfBirth  string `json:"year_of_birth"`
	Position     string `json:"position" binding:"required"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone" binding:"max=15"`
	DepartmentID string `json:"department_id" binding:"omitempty,uuid"`
	OrgRole      string `json:"org_role" binding:"required,oneof=MEMBER TEAM_LEAD DEPT_HEAD"`
	Reason       string `json:"reason"`
}

// UpdateEmployeeRequest is the admin-console edit. Reason is mandatory
// only when department/position/org_role actually change; the history
// engine decides.
type UpdateEmployeeRequest struct {
	Name         string `json:"name" binding:"required"`
	YearOfBirth  string `json:"year_of_birth"`
	Position     string `json:"position" binding:"required"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone" binding:"max=15"`
	DepartmentID string `json:"department_id" binding:"omitempty,uuid"`
	OrgRole      string `json:"org_role" binding:"required,oneof=MEMBER TEAM_LEAD DEPT_HEAD"`
	Reason       string `json:"reason"`
}

// UpdateProfileRequest is the self-service edit: contact data only,
// never department/position/role.
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"max=15"`
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	YearOfBirth  string `json:"year_of_birth,omitempty"`
	Position     string `json:"position"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	AvatarPath   string `json:"avatar_path,omitempty"`
	DepartmentID string `json:"department_id,omitempty"`
	OrgRole      string `json:"org_role"`

	Department *EmployeeDepartmentResponse `json:"department,omitempty"`
}

type EmployeeDepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListFilter mirrors the employee listing page: keyword search on name,
// optional department filter, id-ascending pagination.
type ListFilter struct {
	Keyword      string
	DepartmentID string
	Page         int
	PageSize     int
}
