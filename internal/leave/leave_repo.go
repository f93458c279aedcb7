package leave

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, req *LeaveRequest) error
	FindByID(ctx context.Context, id int64) (*LeaveRequest, error)
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	ListForTeam(ctx context.Context, supervisorID string, pendingOnly bool) ([]LeaveRequest, error)
	ListAll(ctx context.Context) ([]LeaveRequest, error)
	GetSupervisorID(ctx context.Context, employeeID string) (*string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx binds a fresh session to the caller's transaction so domain writes
// share its commit or rollback with the staged outbox event.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true, Context: r.db.Statement.Context})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, req *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*LeaveRequest, error) {
	var req LeaveRequest
	err := r.db.WithContext(ctx).
		First(&req, "leave_request_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// UpdateStatus overwrites request_status unconditionally. The lifecycle
// deliberately performs no current-state check, so a terminal request can be
// re-decided; callers that want stronger guarantees must add them.
func (r *repository) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("leave_request_id = ?", id).
		Update("request_status", status)
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Delete(&LeaveRequest{}, "leave_request_id = ?", id)
	return res.RowsAffected, res.Error
}

// ListForTeam scopes by the live employees table, not the snapshotted
// supervisor_id column, so team membership is always current.
func (r *repository) ListForTeam(ctx context.Context, supervisorID string, pendingOnly bool) ([]LeaveRequest, error) {
	q := r.db.WithContext(ctx).
		Where("employee_id IN (?)",
			r.db.Table("employees").
				Select("employee_id").
				Where("supervisor_id = ?", supervisorID),
		)
	if pendingOnly {
		q = q.Where("request_status = ?", StatusPending)
	}

	var reqs []LeaveRequest
	err := q.Order("request_date ASC, leave_request_id ASC").Find(&reqs).Error
	return reqs, err
}

func (r *repository) ListAll(ctx context.Context) ([]LeaveRequest, error) {
	var reqs []LeaveRequest
	err := r.db.WithContext(ctx).
		Order("request_date ASC, leave_request_id ASC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) GetSupervisorID(ctx context.Context, employeeID string) (*string, error) {
	var row struct {
		EmployeeID   string
		SupervisorID *string
	}
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("employee_id, supervisor_id").
		Where("employee_id = ?", employeeID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return row.SupervisorID, nil
}
