package authority

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=authority_repo.go -destination=mock/authority_repo_mock.go -package=mock
type Repository interface {
	GetAccount(ctx context.Context, username string) (*AccountLink, error)
	GetAccessRole(ctx context.Context, username string) (*AccessRole, error)
	IsSupervisorOf(ctx context.Context, supervisorID, employeeID string) (bool, error)
	ListAdmins(ctx context.Context) ([]RoleMember, error)
	ListSupervisors(ctx context.Context) ([]RoleMember, error)
	ListTeam(ctx context.Context, supervisorID string) ([]RoleMember, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAccount(ctx context.Context, username string) (*AccountLink, error) {
	var row AccountLink
	err := r.db.WithContext(ctx).
		Table("users").
		Select("username, employee_id, disabled").
		Where("username = ?", username).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) GetAccessRole(ctx context.Context, username string) (*AccessRole, error) {
	var role AccessRole
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Take(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// IsSupervisorOf reports whether employeeID reports to supervisorID. The team
// relation is computed on demand, never cached.
func (r *repository) IsSupervisorOf(ctx context.Context, supervisorID, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("employee_id = ?", employeeID).
		Where("supervisor_id = ?", supervisorID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ListAdmins(ctx context.Context) ([]RoleMember, error) {
	var members []RoleMember
	err := r.db.WithContext(ctx).
		Table("user_access").
		Select("employees.employee_id, employees.first_name, employees.last_name").
		Joins("JOIN users ON users.username = user_access.username").
		Joins("JOIN employees ON employees.employee_id = users.employee_id").
		Where("user_access.is_admin").
		Order("employees.employee_id ASC").
		Find(&members).Error
	return members, err
}

func (r *repository) ListSupervisors(ctx context.Context) ([]RoleMember, error) {
	var members []RoleMember
	err := r.db.WithContext(ctx).
		Table("user_access").
		Select("employees.employee_id, employees.first_name, employees.last_name").
		Joins("JOIN users ON users.username = user_access.username").
		Joins("JOIN employees ON employees.employee_id = users.employee_id").
		Where("user_access.is_supervisor").
		Order("employees.employee_id ASC").
		Find(&members).Error
	return members, err
}

func (r *repository) ListTeam(ctx context.Context, supervisorID string) ([]RoleMember, error) {
	var members []RoleMember
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("employee_id, first_name, last_name").
		Where("supervisor_id = ?", supervisorID).
		Order("employee_id ASC").
		Find(&members).Error
	return members, err
}
