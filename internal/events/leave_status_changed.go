package events

import "time"

const LeaveStatusChangedTopic = "hrms.leave.decision.v1"

type LeaveStatusChangedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	LeaveRequestID int64     `json:"leave_request_id"`
	EmployeeID     string    `json:"employee_id"`
	Status         string    `json:"status"`
	DecidedBy      string    `json:"decided_by"`
	OccurredAt     time.Time `json:"occurred_at"`
}
