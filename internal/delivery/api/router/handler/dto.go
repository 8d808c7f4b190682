package handler

import (
	"time"

	"ecobazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// UserResponse is the public view of an account. The password hash never leaves the server.
type UserResponse struct {
	ID        uuid.UUID   `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Role      entity.Role `json:"role"`
	EcoPoints int         `json:"ecoPoints"`
	IsActive  bool        `json:"isActive"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

func newUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		EcoPoints: user.EcoPoints,
		IsActive:  user.IsActive,
		Status:    user.ApprovalStatus(),
		CreatedAt: user.CreatedAt,
	}
}

func newUserResponses(users []*entity.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, newUserResponse(user))
	}

	return result
}

// CategoryResponse is a category without its derived counters.
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		IsActive:    category.IsActive,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

// MessageResponse acknowledges an action that returns no resource.
type MessageResponse struct {
	Message string `json:"message"`
}
