package entity

import "time"

type Role string

const (
	RoleOwner    Role = "owner"
	RoleCaster   Role = "caster"
	RoleFiler    Role = "filer"
	RoleSetter   Role = "setter"
	RolePolisher Role = "polisher"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleCaster, RoleFiler, RoleSetter, RolePolisher:
		return true
	}
	return false
}

func (r Role) IsOwner() bool { return r == RoleOwner }

// User is read-only from this service's point of view; accounts are managed elsewhere.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   int64
	Role Role
}
