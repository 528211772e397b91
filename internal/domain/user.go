package domain

import (
	"context"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// LoginMethodDemo marks users created through the shared demo credential.
const LoginMethodDemo = "demo"

// User represents a user in the system
type User struct {
	ID           int32     `json:"id"`
	OpenID       string    `json:"openId"`
	Name         *string   `json:"name"`
	Email        *string   `json:"email"`
	LoginMethod  *string   `json:"loginMethod"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	LastSignedIn time.Time `json:"lastSignedIn"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UpsertUserInput carries the fields written on login. Nil pointers leave the
// stored value untouched.
type UpsertUserInput struct {
	OpenID       string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         *Role
	LastSignedIn time.Time
}

// UserRepository defines the interface for user persistence operations
type UserRepository interface {
	GetByID(ctx context.Context, id int32) (*User, error)
	GetByOpenID(ctx context.Context, openID string) (*User, error)
	Upsert(ctx context.Context, input *UpsertUserInput) (*User, error)
}
