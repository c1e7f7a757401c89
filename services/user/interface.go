// File: services/user/interface.go
package user

import (
	"context"

	"glamora/database/repository/user"
	"glamora/models"
)

// RegisterInput carries the sign-up fields.
type RegisterInput struct {
	Email       string `json:"email" binding:"required"`
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password" binding:"required"`
	Role        string `json:"role"` // customer (default) or owner
}

// AuthResponse is returned on successful authentication.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// UserService manages marketplace accounts.
type UserService interface {
	RegisterUser(ctx context.Context, in RegisterInput) (*AuthResponse, error)
	AuthenticateUser(ctx context.Context, email, password string) (*AuthResponse, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	RevokeAuthToken(ctx context.Context, id string) error
	UpdateFCMToken(ctx context.Context, id, token string) error
	ListUsers(ctx context.Context, limit, offset int64) ([]models.User, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
