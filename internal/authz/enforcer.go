package authz

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// System roles are a fixed enum, so the policy is static and lives here
// instead of a database table.
var policy = [][]string{
	{"ADMIN", "hr", "view"},
	{"HR_GENERAL", "hr", "view"},
	{"HR_DEPARTMENT", "hr", "view"},

	{"ADMIN", "admin", "access"},

	{"ADMIN", "users", "manage"},
	{"ADMIN", "departments", "manage"},
	{"ADMIN", "absences", "manage"},
	{"HR_GENERAL", "absences", "manage"},
	{"HR_DEPARTMENT", "absences", "manage"},
	{"ADMIN", "assessments", "manage"},
	{"HR_GENERAL", "assessments", "manage"},
	{"HR_DEPARTMENT", "assessments", "manage"},
}

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policy {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return e, nil
}
