package authz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Leonguyenbk/QLCV/internal/domain"
	"github.com/Leonguyenbk/QLCV/internal/shared/response"
)

// SubjectFromContext rebuilds the acting subject from the claims the auth
// middleware stored on the gin context.
func SubjectFromContext(c *gin.Context) Subject {
	roleStr := c.GetString("system_role")
	role, err := domain.ParseSystemRole(roleStr)
	if err != nil {
		return Subject{}
	}

	sub := Subject{
		Authenticated: true,
		SystemRole:    role,
	}

	if empID := c.GetString("employee_id"); empID != "" {
		if id, err := uuid.Parse(empID); err == nil {
			sub.EmployeeID = &id
		}
	}
	if deptID := c.GetString("department_id"); deptID != "" {
		if id, err := uuid.Parse(deptID); err == nil {
			sub.DepartmentID = &id
		}
	}
	if orgRole, err := domain.ParseOrgRole(c.GetString("org_role")); err == nil {
		sub.OrgRole = orgRole
	}

	return sub
}

// Authorize gates a route on the static system-role policy. A denial says
// nothing about whether the record exists.
func Authorize(gate Gate, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub := SubjectFromContext(c)
		if !sub.Authenticated {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
			c.Abort()
			return
		}

		if !gate.Enforce(sub.SystemRole, resource, action) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have permission to access this resource", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireHR allows only the HR-visible tiers (ADMIN, HR_GENERAL,
// HR_DEPARTMENT) through.
func RequireHR(gate Gate) gin.HandlerFunc {
	return Authorize(gate, "hr", "view")
}
