package identity

import "strings"

const (
	RoleAdmin     = "admin"
	RoleSecretary = "secretaria"
	RoleTeacher   = "docente"
	RoleViewer    = "viewer"
)

var roleDescriptions = map[string]string{
	RoleAdmin:     "System administrator",
	RoleSecretary: "Secretary / administrative assistant",
	RoleTeacher:   "Teacher",
	RoleViewer:    "Viewer (read only)",
}

// RoleDescription returns a human-readable description, or role itself when it's unknown.
func RoleDescription(role string) string {
	if desc, ok := roleDescriptions[role]; ok {
		return desc
	}
	return role
}

// RequiresAdminPassword reports whether assigning role must be confirmed with an administrator password.
func RequiresAdminPassword(role string) bool {
	return role == RoleAdmin || role == RoleSecretary
}

func trimJoin(first, last string) string {
	return strings.TrimSpace(first) + " " + strings.TrimSpace(last)
}
