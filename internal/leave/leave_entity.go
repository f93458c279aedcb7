package leave

import "time"

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// LeaveRequest snapshots the owner's supervisor at creation time. Team
// visibility is still derived from the live employees table, so a later
// supervisor change does not hide an open request from the new manager.
type LeaveRequest struct {
	LeaveRequestID   int64  `gorm:"primaryKey;autoIncrement;column:leave_request_id"`
	EmployeeID       string `gorm:"type:varchar(36);not null;index"`
	SupervisorID     *string
	RequestDate      time.Time `gorm:"not null"`
	LeaveStartDate   time.Time `gorm:"not null"`
	PeriodOfAbsence  int       `gorm:"not null"`
	ReasonForAbsence string    `gorm:"type:varchar(255);not null"`
	TypeOfLeave      string    `gorm:"type:varchar(50);not null"`
	RequestStatus    string    `gorm:"type:varchar(20);not null;default:'Pending'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (LeaveRequest) TableName() string { return "leave_requests" }
