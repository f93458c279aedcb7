package authority

// AccessRole mirrors the user_access table. Rows are provisioned at
// registration time and read-only from this package's perspective.
type AccessRole struct {
	Username     string `gorm:"primaryKey;type:varchar(50)"`
	IsAdmin      bool   `gorm:"not null;default:false"`
	IsSupervisor bool   `gorm:"not null;default:false"`
}

func (AccessRole) TableName() string { return "user_access" }

// Roles is the resolved view of a caller's authority. A flag is true only if
// a user_access row exists and the stored flag is true.
type Roles struct {
	Username     string
	EmployeeID   string
	IsAdmin      bool
	IsSupervisor bool
}

// RoleMember is a directory entry returned by the admin/supervisor/team
// listings.
type RoleMember struct {
	EmployeeID string `json:"employee_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

// AccountLink is the slice of the users table the authority needs to resolve
// a caller: the employee linkage and the disabled flag.
type AccountLink struct {
	Username   string
	EmployeeID string
	Disabled   bool
}
