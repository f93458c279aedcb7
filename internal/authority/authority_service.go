package authority

import (
	"context"
	"errors"
	"sync"

	authorityerrors "github.com/Muniya-64bit/Database-Backend/internal/authority/errors"
	"github.com/Muniya-64bit/Database-Backend/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service is the single role authority. Every handler and service resolves
// role state through it; nothing re-derives admin/supervisor flags inline.
//
//go:generate mockgen -source=authority_service.go -destination=mock/authority_service_mock.go -package=mock
type Service interface {
	// ResolveIdentity maps a token subject to its account and employee link,
	// rejecting disabled accounts.
	ResolveIdentity(ctx context.Context, username string) (domain.Identity, error)

	// ResolveRoles is a pure read of the stored flags: a role is held only if
	// a user_access row exists and its flag is true.
	ResolveRoles(ctx context.Context, username string) (Roles, error)

	IsSelf(roles Roles, targetEmployeeID string) bool
	IsManagerOf(ctx context.Context, roles Roles, targetEmployeeID string) (bool, error)

	// Enforce evaluates the role-scoped policy table for username.
	Enforce(ctx context.Context, username, resource, action string) (bool, error)

	ListAdmins(ctx context.Context) ([]RoleMember, error)
	ListSupervisors(ctx context.Context) ([]RoleMember, error)
	Team(ctx context.Context, roles Roles) ([]RoleMember, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("authority.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("authority.service")
	}
	return &service{repo: repo, enforcer: enforcer, logger: l}
}

func (s *service) ResolveIdentity(ctx context.Context, username string) (domain.Identity, error) {
	account, err := s.repo.GetAccount(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Identity{}, authorityerrors.ErrCurrentUserNotFound
		}
		return domain.Identity{}, err
	}
	if account.Disabled {
		return domain.Identity{}, authorityerrors.ErrAccountDisabled
	}
	if account.EmployeeID == "" {
		// Data-integrity condition: surfaced, never silently defaulted.
		return domain.Identity{}, authorityerrors.ErrEmployeeLinkMissing
	}
	return domain.Identity{Username: account.Username, EmployeeID: account.EmployeeID}, nil
}

func (s *service) ResolveRoles(ctx context.Context, username string) (Roles, error) {
	identity, err := s.ResolveIdentity(ctx, username)
	if err != nil {
		return Roles{}, err
	}

	roles := Roles{Username: identity.Username, EmployeeID: identity.EmployeeID}

	access, err := s.repo.GetAccessRole(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No row means no elevated roles, not an error.
			return roles, nil
		}
		return Roles{}, err
	}

	roles.IsAdmin = access.IsAdmin
	roles.IsSupervisor = access.IsSupervisor
	return roles, nil
}

func (s *service) IsSelf(roles Roles, targetEmployeeID string) bool {
	return roles.EmployeeID != "" && roles.EmployeeID == targetEmployeeID
}

func (s *service) IsManagerOf(ctx context.Context, roles Roles, targetEmployeeID string) (bool, error) {
	if roles.EmployeeID == "" {
		return false, nil
	}
	return s.repo.IsSupervisorOf(ctx, roles.EmployeeID, targetEmployeeID)
}

func (s *service) Enforce(ctx context.Context, username, resource, action string) (bool, error) {
	roles, err := s.ResolveRoles(ctx, username)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()
	for _, p := range rolePolicies {
		if _, err := s.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return false, err
		}
	}
	if roles.IsAdmin {
		if _, err := s.enforcer.AddGroupingPolicy(username, RoleAdmin); err != nil {
			return false, err
		}
	}
	if roles.IsSupervisor {
		if _, err := s.enforcer.AddGroupingPolicy(username, RoleSupervisor); err != nil {
			return false, err
		}
	}

	allowed, err := s.enforcer.Enforce(username, resource, action)
	if err != nil {
		s.logger.Error("enforce failed",
			zap.String("username", username),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("enforce result",
		zap.String("username", username),
		zap.String("resource", resource),
		zap.String("action", action),
		zap.Bool("allowed", allowed),
		zap.Bool("is_admin", roles.IsAdmin),
		zap.Bool("is_supervisor", roles.IsSupervisor),
	)
	return allowed, nil
}

func (s *service) ListAdmins(ctx context.Context) ([]RoleMember, error) {
	return s.repo.ListAdmins(ctx)
}

func (s *service) ListSupervisors(ctx context.Context) ([]RoleMember, error) {
	return s.repo.ListSupervisors(ctx)
}

func (s *service) Team(ctx context.Context, roles Roles) ([]RoleMember, error) {
	return s.repo.ListTeam(ctx, roles.EmployeeID)
}
