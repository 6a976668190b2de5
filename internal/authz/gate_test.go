package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Leonguyenbk/QLCV/internal/domain"
)

func newTestGate(t *testing.T) Gate {
	t.Helper()
	enforcer, err := NewEnforcer()
	assert.NoError(t, err)
	return NewGate(enforcer)
}

func TestGate_CanManage(t *testing.T) {
	gate := newTestGate(t)

	deptA := uuid.New()
	deptB := uuid.New()
	actorEmpl := uuid.New()
	targetEmpl := uuid.New()

	staff := func(dept *uuid.UUID, role domain.OrgRole) Subject {
		return Subject{
			Authenticated: true,
			SystemRole:    domain.SystemRoleStaff,
			EmployeeID:    &actorEmpl,
			DepartmentID:  dept,
			OrgRole:       role,
		}
	}

	tests := []struct {
		name   string
		actor  Subject
		target Target
		want   bool
	}{
		{
			name:   "unauthenticated",
			actor:  Subject{},
			target: Target{EmployeeID: targetEmpl},
			want:   false,
		},
		{
			name:   "admin manages anyone",
			actor:  Subject{Authenticated: true, SystemRole: domain.SystemRoleAdmin},
			target: Target{EmployeeID: targetEmpl},
			want:   true,
		},
		{
			name:   "account without employee record",
			actor:  Subject{Authenticated: true, SystemRole: domain.SystemRoleStaff},
			target: Target{EmployeeID: targetEmpl, DepartmentID: &deptA},
			want:   false,
		},
		{
			name:   "nobody manages themselves",
			actor:  staff(&deptA, domain.OrgRoleDeptHead),
			target: Target{EmployeeID: actorEmpl, DepartmentID: &deptA},
			want:   false,
		},
		{
			name:   "dept head in own department",
			actor:  staff(&deptA, domain.OrgRoleDeptHead),
			target: Target{EmployeeID: targetEmpl, DepartmentID: &deptA, OrgRole: domain.OrgRoleTeamLead},
			want:   true,
		},
		{
			name:   "dept head across departments",
			actor:  staff(&deptA, domain.OrgRoleDeptHead),
			target: Target{EmployeeID: targetEmpl, DepartmentID: &deptB},
			want:   false,
		},
		{
			name:   "team lead over member",
			actor:  staff(&deptA, domain.OrgRoleTeamLead),
			target: Target{EmployeeID: targetEmpl, DepartmentID: &deptA, OrgRole: domain.OrgRoleMember},
			want:   true,
		},
		{
			name:   "team lead over another team lead",
			actor:  staff(&deptA, domain.OrgRoleTeamLead),
			target: Target{EmployeeID: targetEmpl, DepartmentID: &deptA, OrgRole: domain.OrgRoleTeamLead},
			want:   false,
		},
		{
			name:   "team lead over dept head",
			actor:  staff(&deptA, domain.OrgRoleTeamLead),
			target: Target{EmployeeID: targetEmpl, DepartmentID: &deptA, OrgRole: domain.OrgRoleDeptHead},
			want:   false,
		},
		{
			name:   "member over member",
			actor:  staff(&deptA, domain.OrgRoleMember),
			target: Target{EmployeeID: targetEmpl, DepartmentID: &deptA, OrgRole: domain.OrgRoleMember},
			want:   false,
		},
		{
			name:   "target without department",
			actor:  staff(&deptA, domain.OrgRoleDeptHead),
			target: Target{EmployeeID: targetEmpl},
			want:   false,
		},
		{
			name:   "actor without department",
			actor:  staff(nil, domain.OrgRoleDeptHead),
			target: Target{EmployeeID: targetEmpl, DepartmentID: &deptA},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.CanManage(tt.actor, tt.target))
		})
	}
}

func TestGate_CanViewHR(t *testing.T) {
	gate := newTestGate(t)

	tests := []struct {
		role domain.SystemRole
		want bool
	}{
		{domain.SystemRoleAdmin, true},
		{domain.SystemRoleHRGeneral, true},
		{domain.SystemRoleHRDepartment, true},
		{domain.SystemRoleStaff, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			actor := Subject{Authenticated: true, SystemRole: tt.role}
			assert.Equal(t, tt.want, gate.CanViewHR(actor))
		})
	}

	assert.False(t, gate.CanViewHR(Subject{SystemRole: domain.SystemRoleAdmin}))
}

func TestGate_Enforce(t *testing.T) {
	gate := newTestGate(t)

	assert.True(t, gate.Enforce(domain.SystemRoleAdmin, "users", "manage"))
	assert.False(t, gate.Enforce(domain.SystemRoleHRGeneral, "users", "manage"))
	assert.True(t, gate.Enforce(domain.SystemRoleHRGeneral, "absences", "manage"))
	assert.False(t, gate.Enforce(domain.SystemRoleStaff, "absences", "manage"))
	assert.True(t, gate.Enforce(domain.SystemRoleAdmin, "admin", "access"))
	assert.False(t, gate.Enforce(domain.SystemRoleHRGeneral, "admin", "access"))
}
