package models

// User represents a user row as stored in the database.
type User struct {
	UserID       string `db:"user_id"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Phone        string `db:"phone"`
	DocumentID   string `db:"document_id"`
	Address      string `db:"address"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}
