package account

import (
	"context"
	"database/sql"
	"time"

	"github.com/Muniya-64bit/Database-Backend/internal/authority"

	"gorm.io/gorm"
)

//go:generate mockgen -source=account_repo.go -destination=mock/account_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Account) error
	CreateAccessRole(ctx context.Context, role *authority.AccessRole) error
	FindByUsername(ctx context.Context, username string) (*Account, error)
	UpdateLastLogin(ctx context.Context, username string, at time.Time) error
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx binds a fresh session to the caller's transaction so the users and
// user_access inserts commit or roll back together.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true, Context: r.db.Statement.Context})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, a *Account) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) CreateAccessRole(ctx context.Context, role *authority.AccessRole) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*Account, error) {
	var a Account
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Take(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) UpdateLastLogin(ctx context.Context, username string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Account{}).
		Where("username = ?", username).
		Update("last_login_at", at).Error
}

func (r *repository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	res := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("username = ?", username).
		Update("password", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
