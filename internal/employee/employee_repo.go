package employee

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindByID(ctx context.Context, employeeID string) (*Employee, error)
	FindByUsername(ctx context.Context, username string) (*Employee, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, employeeID string) (int64, error)
	FewestAbsenceDays(ctx context.Context, from, to time.Time) (*MonthlyAbsence, error)
}

// MonthlyAbsence is the aggregation row behind the employee-of-month pick.
type MonthlyAbsence struct {
	EmployeeID  string
	FirstName   string
	LastName    string
	AbsenceDays int
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindByID(ctx context.Context, employeeID string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		First(&empl, "employee_id = ?", employeeID).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.employee_id = employees.employee_id").
		Where("users.username = ?", username).
		First(&empl).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, employeeID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Delete(&Employee{}, "employee_id = ?", employeeID)
	return res.RowsAffected, res.Error
}

// FewestAbsenceDays ranks employees by approved absence days inside the
// window, fewest first, ties broken by employee id.
func (r *repository) FewestAbsenceDays(ctx context.Context, from, to time.Time) (*MonthlyAbsence, error) {
	var row MonthlyAbsence
	err := r.db.WithContext(ctx).Raw(`
SELECT
	e.employee_id,
	e.first_name,
	e.last_name,
	COALESCE(SUM(l.period_of_absence), 0) AS absence_days
FROM employees e
LEFT JOIN leave_requests l
	ON l.employee_id = e.employee_id
	AND l.request_status = 'Approved'
	AND l.leave_start_date >= ?
	AND l.leave_start_date < ?
GROUP BY e.employee_id, e.first_name, e.last_name
ORDER BY absence_days ASC, e.employee_id ASC
LIMIT 1
`, from, to).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.EmployeeID == "" {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}
