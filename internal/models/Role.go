package models

// Role values recognized by the authorization gate. Admin passes every
// role-scoped check, so it never appears in route allow-lists.
const (
	RoleVolunteer = "volunteer"
	RoleDonor     = "donor"
	RoleManager   = "manager"
	RoleAdmin     = "admin"
)

// ValidRole reports whether role is one of the four known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleVolunteer, RoleDonor, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// SelfRegisterRole reports whether role may be chosen at registration.
// Admin accounts are only created by an existing admin changing a role.
func SelfRegisterRole(role string) bool {
	return ValidRole(role) && role != RoleAdmin
}
