package domain

import "errors"

// ErrUserNotFound is returned by UserRepository lookups for unknown
// usernames. Callers must not surface it verbatim to clients.
var ErrUserNotFound = errors.New("user not found")

// User is a dashboard account row. PasswordHash is a bcrypt hash.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
