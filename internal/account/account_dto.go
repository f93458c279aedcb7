package account

const (
	AccessLevelAdmin      = "admin"
	AccessLevelSupervisor = "supervisor"
	AccessLevelEmployee   = "employee"
)

type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	EmployeeID  string `json:"employee_id" binding:"required"`
	AccessLevel string `json:"access_level" binding:"required,oneof=admin supervisor employee"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Username string `json:"username"`
	Token    string `json:"token"`
	Role     string `json:"role"`
}

type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

type AccountResponse struct {
	Username    string  `json:"username"`
	EmployeeID  string  `json:"employee_id"`
	Disabled    bool    `json:"disabled"`
	LastLoginAt *string `json:"last_login_at,omitempty"`
}
