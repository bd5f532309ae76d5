package user

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is a buyer or an administrator. Users are created on their first login.
type User struct {
	id           uuid.UUID
	username     Username
	passwordHash string
	role         Role
	lastLogin    *time.Time
	createdAt    time.Time
}

func NewUser(username Username, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		username:     username,
		passwordHash: passwordHash,
		role:         role,
	}
}

func ReconstructUser(id uuid.UUID, username Username, passwordHash string, role Role, lastLogin *time.Time, createdAt time.Time) *User {
	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
	}
}

// RoleFor picks the role granted to username: admin when listed, buyer otherwise.
func RoleFor(username Username, adminUsernames []string) Role {
	if slices.Contains(adminUsernames, username.Value()) {
		return RoleAdmin
	}
	return RoleBuyer
}

func (u *User) IsAdmin() bool { return u.role == RoleAdmin }

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Username() Username    { return u.username }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
