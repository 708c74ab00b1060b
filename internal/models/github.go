package models

import (
	"strings"
	"time"
)

// Member is an organization member. Logins are unique within an org.
type Member struct {
	Login string `json:"login"`
}

// Team is an organization team together with the permission it grants
// when attached to a repository.
type Team struct {
	Slug       string `json:"slug"`
	Permission string `json:"permission"`
}

// Repository holds the repository metadata carried into a report.
type Repository struct {
	Name      string    `json:"name"`
	Archived  bool      `json:"archived"`
	Disabled  bool      `json:"disabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CollaboratorGrant is one permission grant on a repository as returned
// by the collaborators listing, before membership and association are
// resolved.
type CollaboratorGrant struct {
	Login    string `json:"login"`
	RoleName string `json:"role_name"`
}

// RoleAdmin is the repository role granting full administration.
const RoleAdmin = "admin"

// writeRoles are repository roles with push-or-higher access. GitHub
// reports the same level as either "push" or "write" depending on the
// endpoint.
var writeRoles = map[string]struct{}{
	"push":     {},
	"write":    {},
	"maintain": {},
	RoleAdmin:  {},
}

// RoleAtLeastWrite reports whether role grants push-or-higher access.
func RoleAtLeastWrite(role string) bool {
	_, ok := writeRoles[strings.ToLower(role)]
	return ok
}

// IsAdminRole reports whether role is the admin role, case-insensitively
// like RoleAtLeastWrite.
func IsAdminRole(role string) bool {
	return strings.ToLower(role) == RoleAdmin
}

// LoginKey normalizes a login for set membership. GitHub logins are
// case-insensitive.
func LoginKey(login string) string {
	return strings.ToLower(login)
}
