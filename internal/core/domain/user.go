package domain

import "time"

// User models an account in the system.
//
// Admin grants both elevated read access (user listing) and elevated write
// access (editing other users, flipping admin on an account). Staff is kept
// in lockstep with Admin on every apply so list-access checks that look at
// either flag agree.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Admin        bool      `json:"admin"`
	Staff        bool      `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
