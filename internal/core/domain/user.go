package domain

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

var ErrTokenExpired = errors.New("token expired")
var ErrTokenMalformed = errors.New("token malformed")

// User models a registered shopper (or administrator).
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the set of profile fields embedded in an issued token. It is
// everything downstream handlers may know about the requester.
type Identity struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Identity projects the token-visible fields of a user.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin}
}
