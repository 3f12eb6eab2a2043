package dto

import (
	"time"

	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
)

// CreateUserRequest defines the data needed to register a new user.
type CreateUserRequest struct {
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Phone      string `json:"phone"`
	DocumentID string `json:"documentID"`
	Address    string `json:"address"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
}

// UserResponse defines the data returned for a user. The password hash is
// never included.
type UserResponse struct {
	UserID        string    `json:"userID"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	DocumentID    string    `json:"documentID"`
	Address       string    `json:"address"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:        u.UserID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		Phone:         u.Phone,
		DocumentID:    u.DocumentID,
		Address:       u.Address,
		IsActive:      u.IsActive,
		CreatedAt:     u.CreatedAt,
		LastUpdatedAt: u.LastUpdatedAt,
	}
}

// ToListUserResponse converts a slice of domain.User to a slice of UserResponse DTOs
func ToListUserResponse(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = ToUserResponse(&u)
	}
	return res
}
