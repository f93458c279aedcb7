package report

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	OnLeaveCount(ctx context.Context, day time.Time) (int64, error)
	GenderBreakdown(ctx context.Context) ([]GenderSlice, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// OnLeaveCount counts employees with an approved absence window covering the
// given day.
func (r *repository) OnLeaveCount(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
SELECT COUNT(DISTINCT employee_id)
FROM leave_requests
WHERE request_status = 'Approved'
	AND leave_start_date <= ?
	AND leave_start_date + make_interval(days => period_of_absence) > ?
`, day, day).Scan(&count).Error
	return count, err
}

func (r *repository) GenderBreakdown(ctx context.Context) ([]GenderSlice, error) {
	var slices []GenderSlice
	err := r.db.WithContext(ctx).Raw(`
SELECT
	gender,
	ROUND(COUNT(*) * 100.0 / SUM(COUNT(*)) OVER (), 2) AS percentage
FROM employees
GROUP BY gender
ORDER BY gender ASC
`).Scan(&slices).Error
	return slices, err
}
