package authority

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Role names used as casbin subjects. Grouping policies link a username to
// the roles its user_access row grants.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// rolePolicies encodes the purely role-scoped rows of the access policy
// table. Rows that also depend on self/manager relations are evaluated in
// the services through ResolveRoles / IsSelf / IsManagerOf.
var rolePolicies = [][3]string{
	{RoleAdmin, "employee", "delete"},
	{RoleAdmin, "leave", "update"},
	{RoleAdmin, "leave", "delete"},
	{RoleAdmin, "leave", "list_all"},
	{RoleAdmin, "leave", "evaluate"},
	{RoleAdmin, "account", "update_password"},
	{RoleAdmin, "directory", "read"},
	{RoleSupervisor, "leave", "update"},
	{RoleSupervisor, "leave", "delete"},
	{RoleSupervisor, "leave", "list_team"},
	{RoleSupervisor, "team", "read"},
}

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}
	return casbin.NewEnforcer(m)
}
