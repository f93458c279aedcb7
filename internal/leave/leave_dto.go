package leave

type CreateLeaveRequest struct {
	EmployeeID       string `json:"employee_id" binding:"required"`
	LeaveStartDate   string `json:"leave_start_date" binding:"required"`
	PeriodOfAbsence  int    `json:"period_of_absence" binding:"required,min=1"`
	ReasonForAbsence string `json:"reason_for_absence" binding:"required"`
	TypeOfLeave      string `json:"type_of_leave" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"request_status" binding:"required,oneof=Approved Rejected"`
}

// EvaluateStatusRequest is the body of the admin-only status endpoint. The
// trailing underscore on status_ is part of the published contract.
type EvaluateStatusRequest struct {
	LeaveRequestID int64  `json:"leave_request_id" binding:"required"`
	Status         string `json:"status_" binding:"required,oneof=Approved Rejected"`
}

type LeaveRequestResponse struct {
	LeaveRequestID   int64   `json:"leave_request_id"`
	EmployeeID       string  `json:"employee_id"`
	SupervisorID     *string `json:"supervisor_id,omitempty"`
	RequestDate      string  `json:"request_date"`
	LeaveStartDate   string  `json:"leave_start_date"`
	PeriodOfAbsence  int     `json:"period_of_absence"`
	ReasonForAbsence string  `json:"reason_for_absence"`
	TypeOfLeave      string  `json:"type_of_leave"`
	RequestStatus    string  `json:"request_status"`
}
