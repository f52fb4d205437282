package models

import (
	"strings"

	"gorm.io/gorm"
)

type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

// NormalizeRole lowercases a role string so comparisons never depend on
// whatever casing the client sent.
func NormalizeRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

func (r Role) Is(other Role) bool {
	return strings.EqualFold(string(r), string(other))
}

// IsAdminTier reports whether the role may act on other accounts' files.
func (r Role) IsAdminTier() bool {
	return r.Is(RoleAdmin) || r.Is(RoleSuperAdmin)
}

// Account is a single identity record for every privilege tier. Emails are
// stored lowercased; uniqueness spans users and admins alike.
type Account struct {
	gorm.Model
	Name     string
	Email    string `gorm:"uniqueIndex"`
	Password string `json:"-"`
	Role     Role   `gorm:"type:varchar(20)"`
	Approved bool
}
