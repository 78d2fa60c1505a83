package models

import "time"

// User represents an account entity used for authentication.
// The plain-text Password travels only inbound (signup/login bodies) and is
// never persisted; only the bcrypt PasswordHash reaches the database.
type User struct {
	// UserID is the store-assigned unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique user identifier used during authentication.
	// Stored case-sensitive, exactly as received.
	Email string `json:"email"`

	// Password holds the plain-text password from an inbound request body.
	// Cleared before the user is returned to the caller.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the password.
	// Never serialized; lives only between the store and the auth service.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
