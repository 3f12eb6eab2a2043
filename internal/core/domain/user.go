package domain

// User represents a registered customer.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"` // Unique
	PasswordHash string `json:"-"`     // bcrypt hash, never serialized
	Phone        string `json:"phone"`
	DocumentID   string `json:"documentID"`
	Address      string `json:"address"`
	IsActive     bool   `json:"isActive"` // Soft delete flag
	AuditFields
}

// DisplayName returns the name used in notifications.
func (u User) DisplayName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
