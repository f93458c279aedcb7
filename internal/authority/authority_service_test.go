package authority

import (
	"context"
	"testing"

	authorityerrors "github.com/Muniya-64bit/Database-Backend/internal/authority/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	getAccountFn     func(ctx context.Context, username string) (*AccountLink, error)
	getAccessRoleFn  func(ctx context.Context, username string) (*AccessRole, error)
	isSupervisorOfFn func(ctx context.Context, supervisorID, employeeID string) (bool, error)
	listAdminsFn     func(ctx context.Context) ([]RoleMember, error)
	listSupsFn       func(ctx context.Context) ([]RoleMember, error)
	listTeamFn       func(ctx context.Context, supervisorID string) ([]RoleMember, error)
}

func (f *fakeRepo) GetAccount(ctx context.Context, username string) (*AccountLink, error) {
	return f.getAccountFn(ctx, username)
}
func (f *fakeRepo) GetAccessRole(ctx context.Context, username string) (*AccessRole, error) {
	return f.getAccessRoleFn(ctx, username)
}
func (f *fakeRepo) IsSupervisorOf(ctx context.Context, supervisorID, employeeID string) (bool, error) {
	return f.isSupervisorOfFn(ctx, supervisorID, employeeID)
}
func (f *fakeRepo) ListAdmins(ctx context.Context) ([]RoleMember, error) { return f.listAdminsFn(ctx) }
func (f *fakeRepo) ListSupervisors(ctx context.Context) ([]RoleMember, error) {
	return f.listSupsFn(ctx)
}
func (f *fakeRepo) ListTeam(ctx context.Context, supervisorID string) ([]RoleMember, error) {
	return f.listTeamFn(ctx, supervisorID)
}

func activeAccountRepo() *fakeRepo {
	return &fakeRepo{
		getAccountFn: func(ctx context.Context, username string) (*AccountLink, error) {
			return &AccountLink{Username: username, EmployeeID: "emp-1"}, nil
		},
	}
}

func newTestService(t *testing.T, repo Repository) Service {
	t.Helper()
	enforcer, err := NewEnforcer()
	assert.NoError(t, err)
	return NewService(repo, enforcer)
}

func TestResolveIdentity_DisabledAccount(t *testing.T) {
	repo := &fakeRepo{
		getAccountFn: func(ctx context.Context, username string) (*AccountLink, error) {
			return &AccountLink{Username: username, EmployeeID: "emp-1", Disabled: true}, nil
		},
	}
	svc := newTestService(t, repo)

	_, err := svc.ResolveIdentity(context.Background(), "alice")
	assert.ErrorIs(t, err, authorityerrors.ErrAccountDisabled)
}

func TestResolveIdentity_MissingEmployeeLink(t *testing.T) {
	repo := &fakeRepo{
		getAccountFn: func(ctx context.Context, username string) (*AccountLink, error) {
			return &AccountLink{Username: username}, nil
		},
	}
	svc := newTestService(t, repo)

	_, err := svc.ResolveIdentity(context.Background(), "alice")
	assert.ErrorIs(t, err, authorityerrors.ErrEmployeeLinkMissing)
}

func TestResolveIdentity_UnknownUser(t *testing.T) {
	repo := &fakeRepo{
		getAccountFn: func(ctx context.Context, username string) (*AccountLink, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newTestService(t, repo)

	_, err := svc.ResolveIdentity(context.Background(), "ghost")
	assert.ErrorIs(t, err, authorityerrors.ErrCurrentUserNotFound)
}

func TestResolveRoles_NoAccessRowMeansNoRoles(t *testing.T) {
	repo := activeAccountRepo()
	repo.getAccessRoleFn = func(ctx context.Context, username string) (*AccessRole, error) {
		return nil, gorm.ErrRecordNotFound
	}
	svc := newTestService(t, repo)

	roles, err := svc.ResolveRoles(context.Background(), "alice")
	assert.NoError(t, err)
	assert.False(t, roles.IsAdmin)
	assert.False(t, roles.IsSupervisor)
	assert.Equal(t, "emp-1", roles.EmployeeID)
}

func TestResolveRoles_FlagsComeFromStoredRow(t *testing.T) {
	repo := activeAccountRepo()
	repo.getAccessRoleFn = func(ctx context.Context, username string) (*AccessRole, error) {
		return &AccessRole{Username: username, IsAdmin: false, IsSupervisor: true}, nil
	}
	svc := newTestService(t, repo)

	roles, err := svc.ResolveRoles(context.Background(), "bob")
	assert.NoError(t, err)
	assert.False(t, roles.IsAdmin)
	assert.True(t, roles.IsSupervisor)
}

func TestIsSelf(t *testing.T) {
	svc := newTestService(t, &fakeRepo{})

	assert.True(t, svc.IsSelf(Roles{EmployeeID: "emp-1"}, "emp-1"))
	assert.False(t, svc.IsSelf(Roles{EmployeeID: "emp-1"}, "emp-2"))
	assert.False(t, svc.IsSelf(Roles{}, ""))
}

func TestIsManagerOf_ComputedOnDemand(t *testing.T) {
	calls := 0
	repo := &fakeRepo{
		isSupervisorOfFn: func(ctx context.Context, supervisorID, employeeID string) (bool, error) {
			calls++
			return supervisorID == "emp-sup" && employeeID == "emp-1", nil
		},
	}
	svc := newTestService(t, repo)

	ok, err := svc.IsManagerOf(context.Background(), Roles{EmployeeID: "emp-sup"}, "emp-1")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsManagerOf(context.Background(), Roles{EmployeeID: "emp-sup"}, "emp-9")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 2, calls)
}

func TestEnforce_PolicyTable(t *testing.T) {
	rolesByUser := map[string]*AccessRole{
		"admin":      {Username: "admin", IsAdmin: true},
		"supervisor": {Username: "supervisor", IsSupervisor: true},
		"plain":      {Username: "plain"},
	}
	repo := activeAccountRepo()
	repo.getAccessRoleFn = func(ctx context.Context, username string) (*AccessRole, error) {
		if role, ok := rolesByUser[username]; ok {
			return role, nil
		}
		return nil, gorm.ErrRecordNotFound
	}
	svc := newTestService(t, repo)
	ctx := context.Background()

	cases := []struct {
		user     string
		resource string
		action   string
		allowed  bool
	}{
		{"admin", "employee", "delete", true},
		{"admin", "leave", "list_all", true},
		{"admin", "leave", "evaluate", true},
		{"admin", "account", "update_password", true},
		{"supervisor", "leave", "update", true},
		{"supervisor", "leave", "list_team", true},
		{"supervisor", "leave", "list_all", false},
		{"supervisor", "leave", "evaluate", false},
		{"supervisor", "employee", "delete", false},
		{"plain", "leave", "update", false},
		{"plain", "team", "read", false},
	}

	for _, tc := range cases {
		allowed, err := svc.Enforce(ctx, tc.user, tc.resource, tc.action)
		assert.NoError(t, err)
		assert.Equal(t, tc.allowed, allowed, "%s %s:%s", tc.user, tc.resource, tc.action)
	}
}

func TestTeam_ScopedToCallerEmployeeID(t *testing.T) {
	repo := &fakeRepo{
		listTeamFn: func(ctx context.Context, supervisorID string) ([]RoleMember, error) {
			assert.Equal(t, "emp-sup", supervisorID)
			return []RoleMember{{EmployeeID: "emp-1"}, {EmployeeID: "emp-2"}}, nil
		},
	}
	svc := newTestService(t, repo)

	members, err := svc.Team(context.Background(), Roles{EmployeeID: "emp-sup"})
	assert.NoError(t, err)
	assert.Len(t, members, 2)
}
