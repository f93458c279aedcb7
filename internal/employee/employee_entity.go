package employee

import "time"

type Employee struct {
	EmployeeID              string `gorm:"primaryKey;column:employee_id;type:varchar(36)"`
	FirstName               string `gorm:"type:varchar(100);not null"`
	LastName                string `gorm:"type:varchar(100);not null"`
	Birthday                *time.Time
	NIC                     string `gorm:"column:nic;type:varchar(20);uniqueIndex;not null"`
	Gender                  string `gorm:"type:varchar(20)"`
	MaritalStatus           string `gorm:"type:varchar(20)"`
	NumberOfDependents      int
	Address                 string `gorm:"type:varchar(255)"`
	ContactNumber           string `gorm:"type:varchar(30)"`
	BusinessEmail           string `gorm:"type:varchar(120)"`
	JobTitle                string `gorm:"type:varchar(100)"`
	EmployeeStatus          string `gorm:"type:varchar(30)"`
	DepartmentName          string `gorm:"type:varchar(100)"`
	BranchName              string `gorm:"type:varchar(100)"`
	ProfilePhoto            *string
	EmergencyContactName    *string
	EmergencyContactNIC     *string `gorm:"column:emergency_contact_nic"`
	EmergencyContactAddress *string
	EmergencyContactNumber  *string
	// SupervisorID links the employee to its reporting manager. Team scope
	// is derived from this column on demand, never cached.
	SupervisorID *string `gorm:"type:varchar(36)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Employee) TableName() string { return "employees" }
