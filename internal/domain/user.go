package domain

import "time"

// User is the domain entity for a registered account. Username is the
// identity key; there is no separate numeric ID.
type User struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
