package model

import "time"

// User represents a cafeteria customer account. Records are stored verbatim
// in the users collection, password included; use Sanitized before writing a
// user into any HTTP response.
type User struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FullName returns the display name snapshotted onto reservations.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Sanitized returns a copy with the password removed.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
