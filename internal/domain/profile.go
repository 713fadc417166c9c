package domain

import "time"

// Role of an authenticated user
type Role string

const (
	RoleClient Role = "client"
	RoleStaff  Role = "staff"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// CanHoldAppointments reports whether users with this role have a calendar
func (r Role) CanHoldAppointments() bool {
	return r == RoleStaff || r == RoleAdmin
}

// Profile is the service-side record of an identity-provider user
type Profile struct {
	UserID    string
	Role      Role
	FirstName string
	LastName  string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// FullName joins first and last name
func (p *Profile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// Caller is the authenticated principal of a request
type Caller struct {
	UserID string
	Role   Role
}

// IsAdmin reports whether the caller is an administrator
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// IsStaff reports whether the caller is staff or admin
func (c Caller) IsStaff() bool {
	return c.Role == RoleStaff || c.Role == RoleAdmin
}
