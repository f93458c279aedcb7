package employee

type CreateEmployeeRequest struct {
	EmployeeID              string  `json:"employee_id" binding:"required"`
	FirstName               string  `json:"first_name" binding:"required"`
	LastName                string  `json:"last_name" binding:"required"`
	Birthday                string  `json:"birthday"`
	NIC                     string  `json:"nic" binding:"required"`
	Gender                  string  `json:"gender" binding:"required"`
	MaritalStatus           string  `json:"marital_status" binding:"required"`
	NumberOfDependents      int     `json:"number_of_dependents" binding:"min=0"`
	Address                 string  `json:"address" binding:"required"`
	ContactNumber           string  `json:"contact_number" binding:"required"`
	BusinessEmail           string  `json:"business_email" binding:"required,email"`
	JobTitle                string  `json:"job_title" binding:"required"`
	EmployeeStatus          string  `json:"employee_status" binding:"required"`
	DepartmentName          string  `json:"department_name" binding:"required"`
	BranchName              string  `json:"branch_name" binding:"required"`
	ProfilePhoto            *string `json:"profile_photo"`
	EmergencyContactName    *string `json:"emergency_contact_name"`
	EmergencyContactNIC     *string `json:"emergency_contact_nic"`
	EmergencyContactAddress *string `json:"emergency_contact_address"`
	EmergencyContactNumber  *string `json:"emergency_contact_number"`
	SupervisorID            *string `json:"supervisor_id"`
}

type UpdateEmployeeRequest struct {
	FirstName               string  `json:"first_name" binding:"required"`
	LastName                string  `json:"last_name" binding:"required"`
	Birthday                string  `json:"birthday"`
	NIC                     string  `json:"nic" binding:"required"`
	Gender                  string  `json:"gender" binding:"required"`
	MaritalStatus           string  `json:"marital_status" binding:"required"`
	NumberOfDependents      int     `json:"number_of_dependents" binding:"min=0"`
	Address                 string  `json:"address" binding:"required"`
	ContactNumber           string  `json:"contact_number" binding:"required"`
	BusinessEmail           string  `json:"business_email" binding:"required,email"`
	JobTitle                string  `json:"job_title" binding:"required"`
	EmployeeStatus          string  `json:"employee_status" binding:"required"`
	DepartmentName          string  `json:"department_name" binding:"required"`
	BranchName              string  `json:"branch_name" binding:"required"`
	ProfilePhoto            *string `json:"profile_photo"`
	EmergencyContactName    *string `json:"emergency_contact_name"`
	EmergencyContactNIC     *string `json:"emergency_contact_nic"`
	EmergencyContactAddress *string `json:"emergency_contact_address"`
	EmergencyContactNumber  *string `json:"emergency_contact_number"`
	SupervisorID            *string `json:"supervisor_id"`
}

// EmployeeResponse renames storage NIC to employee_nic on the wire. The
// rename is part of the published contract and must not drift.
type EmployeeResponse struct {
	EmployeeID              string  `json:"employee_id"`
	FirstName               string  `json:"first_name"`
	LastName                string  `json:"last_name"`
	Birthday                string  `json:"birthday,omitempty"`
	EmployeeNIC             string  `json:"employee_nic"`
	Gender                  string  `json:"gender"`
	MaritalStatus           string  `json:"marital_status"`
	NumberOfDependents      int     `json:"number_of_dependents"`
	Address                 string  `json:"address"`
	ContactNumber           string  `json:"contact_number"`
	BusinessEmail           string  `json:"business_email"`
	JobTitle                string  `json:"job_title"`
	EmployeeStatus          string  `json:"employee_status"`
	DepartmentName          string  `json:"department_name"`
	BranchName              string  `json:"branch_name"`
	ProfilePhoto            *string `json:"profile_photo,omitempty"`
	EmergencyContactName    *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactNIC     *string `json:"emergency_contact_nic,omitempty"`
	EmergencyContactAddress *string `json:"emergency_contact_address,omitempty"`
	EmergencyContactNumber  *string `json:"emergency_contact_number,omitempty"`
	SupervisorID            *string `json:"supervisor_id,omitempty"`
}

type EmployeeOfMonthResponse struct {
	EmployeeID  string `json:"employee_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	AbsenceDays int    `json:"absence_days"`
}
