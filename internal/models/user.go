package models

import "gorm.io/gorm"

type Role string

const (
	RoleGuest  Role = "guest"
	RoleUser   Role = "user"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

// rank orders roles so that a higher role satisfies any lower requirement.
var rank = map[Role]int{RoleGuest: 0, RoleUser: 1, RoleEditor: 2, RoleAdmin: 3}

// AtLeast reports whether r grants everything required grants.
func (r Role) AtLeast(required Role) bool {
	have, ok := rank[r]
	if !ok {
		return false
	}
	return have >= rank[required]
}

// User represents a user in the system.
type User struct {
	gorm.Model
	Username     string `gorm:"size:255;unique;not null"`
	Email        string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         Role   `gorm:"size:50;not null;default:'user';index"`

	Progresses []*Progress `gorm:"foreignKey:UserID"`
}
