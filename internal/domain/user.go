package domain

import "time"

// AccessLevel enumerates profile roles. Naming follows the operator-facing
// labels used by the admin console.
type AccessLevel string

const (
	AccessLevelAnalista AccessLevel = "Analista"
	AccessLevelAdmin    AccessLevel = "Admin"
)

// ValidAccessLevel reports whether l is a known access level.
func ValidAccessLevel(l AccessLevel) bool {
	return l == AccessLevelAnalista || l == AccessLevelAdmin
}

// UserProfile models a technician or administrator account.
type UserProfile struct {
	ID                 string
	Username           string
	Name               string
	Nivel              AccessLevel
	MustChangePassword bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
