// Package models defines server-side data models persisted in the database.
package models

import "time"

// Account is an author of reviews. PasswordHash holds a bcrypt hash and
// never leaves the server.
type Account struct {
	ID           string
	Name         string
	Email        string
	Verified     bool
	PasswordHash string
	CreatedAt    time.Time
}
