package domain

import "strings"

// Role controls which admin screens an account can access.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleAgent    Role = "agent"
	RoleCustomer Role = "customer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleAgent || r == RoleCustomer
}

// IsStaff reports whether the role grants access to the staff-only screens
// (publisher board, inventory manager). Staff accounts carry a department.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleAgent
}

// Display returns the label shown in the console header.
func (r Role) Display() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleAgent:
		return "E-commerce Agent"
	case RoleCustomer:
		return "Customer"
	default:
		return string(r)
	}
}

// User is an account in the locally persisted user list.
//
// Password is stored and compared in plaintext: this is a demo storefront
// without a real security layer, and login is an exact match on email and
// password. Department is set only when the role is a staff role.
type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       Role   `json:"role"`
	Department string `json:"department,omitempty"`
	Avatar     string `json:"avatar"`
}

// NewStaffUser builds an admin or agent account draft (no id yet).
// Returns ErrInvalidInput when the role is not a staff role or the
// department is missing.
func NewStaffUser(name, email, password string, role Role, department string) (User, error) {
	if !role.IsStaff() || department == "" {
		return User{}, ErrInvalidInput
	}
	return User{
		Name:       name,
		Email:      email,
		Password:   password,
		Role:       role,
		Department: department,
		Avatar:     Initials(name),
	}, nil
}

// NewCustomer builds a customer account draft. Customers never carry a
// department.
func NewCustomer(name, email, password string) User {
	return User{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     RoleCustomer,
		Avatar:   Initials(name),
	}
}

// Initials derives the avatar string from a display name ("John Agent" -> "JA").
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}
