package account

import (
	"context"
	"database/sql"
	"time"

	accounterrors "github.com/Muniya-64bit/Database-Backend/internal/account/errors"
	"github.com/Muniya-64bit/Database-Backend/internal/authority"
	"github.com/Muniya-64bit/Database-Backend/internal/shared/apperror"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=account_service.go -destination=mock/account_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AccountResponse, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	UpdatePassword(ctx context.Context, actor, target string, req UpdatePasswordRequest) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	authority authority.Service
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, auth authority.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("account.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{db: db, repo: repo, authority: auth, logger: l}
}

// Register creates the credential row and its access role row in one
// transaction, so a user can never exist without a role record.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*AccountResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return nil, apperror.ErrInternal
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperror.ErrInternal
	}
	defer tx.Rollback()

	txRepo := s.repo.WithTx(tx)

	acct := &Account{
		Username:   req.Username,
		Password:   string(hash),
		EmployeeID: req.EmployeeID,
	}
	if err := txRepo.Create(ctx, acct); err != nil {
		return nil, mapRepositoryError(err)
	}

	role := &authority.AccessRole{
		Username:     req.Username,
		IsAdmin:      req.AccessLevel == AccessLevelAdmin,
		IsSupervisor: req.AccessLevel == AccessLevelSupervisor,
	}
	if err := txRepo.CreateAccessRole(ctx, role); err != nil {
		return nil, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, apperror.ErrInternal
	}

	created, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("account registered",
		zap.String("username", created.Username),
		zap.String("employee_id", created.EmployeeID),
		zap.String("access_level", req.AccessLevel),
	)
	return toResponse(created), nil
}

// Login verifies the credential and issues a token. Lookup failure and a
// wrong password collapse into the same error so callers cannot enumerate
// usernames.
func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	acct, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, accounterrors.ErrInvalidCredentials
	}
	if acct.Disabled {
		return nil, accounterrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.Password), []byte(req.Password)); err != nil {
		return nil, accounterrors.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	token, err := generateToken(acct.Username, now)
	if err != nil {
		s.logger.Error("token signing failed", zap.Error(err))
		return nil, accounterrors.ErrTokenGenerationFailed
	}

	if err := s.repo.UpdateLastLogin(ctx, acct.Username, now); err != nil {
		s.logger.Warn("failed to record last login", zap.String("username", acct.Username), zap.Error(err))
	}

	roles, err := s.authority.ResolveRoles(ctx, acct.Username)
	if err != nil {
		return nil, err
	}

	s.logger.Info("login succeeded", zap.String("username", acct.Username))
	return &LoginResponse{
		Username: acct.Username,
		Token:    token,
		Role:     roleLabel(roles),
	}, nil
}

// UpdatePassword replaces the stored hash for the target account. Admin only.
func (s *service) UpdatePassword(ctx context.Context, actor, target string, req UpdatePasswordRequest) error {
	roles, err := s.authority.ResolveRoles(ctx, actor)
	if err != nil {
		return err
	}
	if !roles.IsAdmin {
		return apperror.Forbidden("update user password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return apperror.ErrInternal
	}

	if err := s.repo.UpdatePassword(ctx, target, string(hash)); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("password updated",
		zap.String("actor", actor),
		zap.String("target", target),
	)
	return nil
}

func roleLabel(roles authority.Roles) string {
	switch {
	case roles.IsAdmin:
		return AccessLevelAdmin
	case roles.IsSupervisor:
		return AccessLevelSupervisor
	default:
		return AccessLevelEmployee
	}
}

func toResponse(a *Account) *AccountResponse {
	resp := &AccountResponse{
		Username:   a.Username,
		EmployeeID: a.EmployeeID,
		Disabled:   a.Disabled,
	}
	if a.LastLoginAt != nil {
		formatted := a.LastLoginAt.UTC().Format(time.RFC3339)
		resp.LastLoginAt = &formatted
	}
	return resp
}
