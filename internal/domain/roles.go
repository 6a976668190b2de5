package domain

import "fmt"

// OrgRole is an employee's standing inside their department, independent
// of what their account may access.
type OrgRole string

const (
	OrgRoleMember   OrgRole = "MEMBER"
	OrgRoleTeamLead OrgRole = "TEAM_LEAD"
	OrgRoleDeptHead OrgRole = "DEPT_HEAD"
)

func ParseOrgRole(s string) (OrgRole, error) {
	switch OrgRole(s) {
	case OrgRoleMember, OrgRoleTeamLead, OrgRoleDeptHead:
		return OrgRole(s), nil
	}
	return "", fmt.Errorf("unknown org role: %q", s)
}

// SystemRole is an account's application-wide permission tier.
type SystemRole string

const (
	SystemRoleAdmin        SystemRole = "ADMIN"
	SystemRoleHRGeneral    SystemRole = "HR_GENERAL"
	SystemRoleHRDepartment SystemRole = "HR_DEPARTMENT"
	SystemRoleStaff        SystemRole = "STAFF"
)

func ParseSystemRole(s string) (SystemRole, error) {
	switch SystemRole(s) {
	case SystemRoleAdmin, SystemRoleHRGeneral, SystemRoleHRDepartment, SystemRoleStaff:
		return SystemRole(s), nil
	}
	return "", fmt.Errorf("unknown system role: %q", s)
}
