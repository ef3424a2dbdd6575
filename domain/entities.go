package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of roles a user can hold. Values are opaque tags;
// privilege ordering is decided by the authorization layer, not here.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleExpert     Role = "expert"
	RoleEmployee   Role = "employee"
	RoleUser       Role = "user"
	RoleGuest      Role = "guest"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleExpert, RoleEmployee, RoleUser, RoleGuest:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// User represents a registered identity in the system
type User struct {
	ID                  uuid.UUID
	PhoneNumber         string
	Email               string
	Name                string
	Family              string
	HashedPassword      string
	Role                Role
	Position            string
	PersonalCode        string
	IsVerified          bool
	EmailVerified       bool
	PhoneNumberVerified bool
	LatestLogin         *time.Time
	// LoginRetries flags that a failed login happened, it does not count them.
	LoginRetries   bool
	LockExpireTime *time.Time
	IsLocked       bool
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewUser builds a user in its initial registration state: role fixed to
// RoleUser, every verification, lock and active flag false, a fresh id.
func NewUser(email, name, family, hashedPassword, position string) *User {
	return &User{
		ID:             uuid.New(),
		Email:          email,
		Name:           name,
		Family:         family,
		HashedPassword: hashedPassword,
		Position:       position,
		Role:           RoleUser,
	}
}

// DeliveryOutcome represents the result of a notification send attempt
type DeliveryOutcome struct {
	Delivered bool
	Reason    string
}
