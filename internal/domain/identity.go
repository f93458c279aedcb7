package domain

// Identity is the resolved link between a token subject and an employee.
// It lives here so the auth middleware and the authority service can share
// it without importing each other.
type Identity struct {
	Username   string
	EmployeeID string
}
