package authz

import (
	"github.com/casbin/casbin/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Leonguyenbk/QLCV/internal/domain"
)

// Subject is the acting account plus its linked employee record, flattened
// so the gate never reaches back into storage.
type Subject struct {
	Authenticated bool
	SystemRole    domain.SystemRole
	EmployeeID    *uuid.UUID
	DepartmentID  *uuid.UUID
	OrgRole       domain.OrgRole
}

// Target is the employee a subject wants to act on.
type Target struct {
	EmployeeID   uuid.UUID
	DepartmentID *uuid.UUID
	OrgRole      domain.OrgRole
}

//go:generate mockgen -source=gate.go -destination=mock/gate_mock.go -package=mock
type Gate interface {
	CanManage(actor Subject, target Target) bool
	CanViewHR(actor Subject) bool
	Enforce(role domain.SystemRole, resource, action string) bool
}

type gate struct {
	enforcer *casbin.Enforcer
	logger   *zap.Logger
}

func NewGate(enforcer *casbin.Enforcer, logger ...*zap.Logger) Gate {
	l := zap.L().Named("authz.gate")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("authz.gate")
	}
	return &gate{enforcer: enforcer, logger: l}
}

// CanManage applies the management rules in order; the first rule that
// fires decides. Admins may manage anyone, nobody manages themselves, and
// department leads only reach into their own department.
func (g *gate) CanManage(actor Subject, target Target) bool {
	if !actor.Authenticated {
		return false
	}
	if actor.SystemRole == domain.SystemRoleAdmin {
		return true
	}
	if actor.EmployeeID == nil {
		return false
	}
	if *actor.EmployeeID == target.EmployeeID {
		return false
	}
	if actor.DepartmentID == nil || target.DepartmentID == nil {
		return false
	}
	if *actor.DepartmentID != *target.DepartmentID {
		return false
	}
	if actor.OrgRole == domain.OrgRoleDeptHead {
		return true
	}
	if actor.OrgRole == domain.OrgRoleTeamLead && target.OrgRole == domain.OrgRoleMember {
		return true
	}
	return false
}

func (g *gate) CanViewHR(actor Subject) bool {
	if !actor.Authenticated {
		return false
	}
	return g.Enforce(actor.SystemRole, "hr", "view")
}

func (g *gate) Enforce(role domain.SystemRole, resource, action string) bool {
	allowed, err := g.enforcer.Enforce(string(role), resource, action)
	if err != nil {
		g.logger.Error("enforce failed",
			zap.String("role", string(role)),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		return false
	}
	return allowed
}
