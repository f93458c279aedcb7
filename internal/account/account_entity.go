package account

import "time"

// Account is a login credential linked to exactly one employee. Accounts are
// never hard-deleted; lockout happens through the disabled flag.
type Account struct {
	Username    string `gorm:"primaryKey;type:varchar(50)"`
	Password    string `gorm:"type:varchar(255);not null"`
	EmployeeID  string `gorm:"type:varchar(36);uniqueIndex;not null"`
	Disabled    bool   `gorm:"not null;default:false"`
	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Account) TableName() string { return "users" }
