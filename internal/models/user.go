package models

// UserDB represents a user record in the database.
// PasswordHash is a bcrypt hash and is never serialized to JSON.
type UserDB struct {
	ID           int64  `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	FirstName    string `json:"firstName" db:"first_name"`
	LastName     string `json:"lastName" db:"last_name"`
}
