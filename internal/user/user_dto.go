package user

type CreateUserRequest struct {
	Username   string `json:"username" binding:"required,min=3,max=100"`
	Password   string `json:"password" binding:"required,min=8"`
	SystemRole string `json:"system_role" binding:"required,oneof=ADMIN HR_GENERAL HR_DEPARTMENT STAFF"`
	EmployeeID string `json:"employee_id" binding:"omitempty,uuid"`
}

type UpdateUserRequest struct {
	SystemRole string `json:"system_role" binding:"required,oneof=ADMIN HR_GENERAL HR_DEPARTMENT STAFF"`
	EmployeeID string `json:"employee_id" binding:"omitempty,uuid"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

type UserResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	SystemRole string `json:"system_role"`
	EmployeeID string `json:"employee_id,omitempty"`
}
