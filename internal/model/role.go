package model

// RoleID identifies one of the application roles stored in the `roles`
// table.  The numeric values are part of the seeded schema and drive the
// post-login redirect: administrators land on the dashboard, everyone else
// on the standard index.  Handlers must branch on these named constants,
// never on raw literals.
type RoleID uint8

const (
	RoleAdmin   RoleID = 1 // full access, administrative dashboard
	RoleManager RoleID = 2 // project managers, standard index
	RoleMember  RoleID = 3 // regular members, standard index
)

// Known reports whether the role is one of the seeded application roles.
// A user carrying any other role id must not be treated as authenticated
// into a landing page.
func (r RoleID) Known() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleMember:
		return true
	}
	return false
}

func (r RoleID) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleManager:
		return "manager"
	case RoleMember:
		return "member"
	}
	return "unknown"
}

// Role represents a row in the `roles` table.
type Role struct {
	ID       uint64 `json:"id"`
	RoleName string `json:"role_name"`
}
