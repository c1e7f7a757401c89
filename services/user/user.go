// File: services/user/user.go
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"glamora/database/repository"
	"glamora/models"
	"glamora/utils"
)

const tokenTTL = 72 * time.Hour

var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken indicates an account already exists for the email.
	ErrEmailTaken = errors.New("an account with this email already exists")
	// ErrNotFound indicates the user does not exist.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidInput indicates a missing or malformed account field.
	ErrInvalidInput = errors.New("invalid user input")
)

func (s *DefaultUserService) RegisterUser(ctx context.Context, in RegisterInput) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: email is malformed", ErrInvalidInput)
	}
	if len(in.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}
	role := in.Role
	switch role {
	case "":
		role = models.RoleCustomer
	case models.RoleCustomer, models.RoleOwner:
	default:
		// Admin accounts are provisioned out of band, never via sign-up.
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, in.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Name:         in.Name,
		PhoneNumber:  in.PhoneNumber,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	utils.GetLogger().Info("user registered", zap.String("userId", user.ID), zap.String("role", role))
	return s.issueToken(ctx, user)
}

func (s *DefaultUserService) AuthenticateUser(ctx context.Context, email, password string) (*AuthResponse, error) {
	user, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(ctx, user)
}

// issueToken mints a JWT, stores its hash on the record and in the auth
// cache, and returns the sanitized user alongside it.
func (s *DefaultUserService) issueToken(ctx context.Context, user *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	update := bson.M{"$set": bson.M{"tokenHash": tokenHash, "updatedAt": time.Now()}}
	if err := s.Repo.UpdateWithDocument(ctx, user.ID, update); err != nil {
		return nil, fmt.Errorf("failed to persist token hash: %w", err)
	}
	if err := utils.GetAuthCacheClient().Set(ctx, utils.AuthCachePrefix+user.ID, tokenHash, tokenTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache token hash", zap.String("userId", user.ID), zap.Error(err))
	}

	user.PasswordHash = ""
	user.TokenHash = ""
	return &AuthResponse{Token: token, User: *user}, nil
}

func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	user.PasswordHash = ""
	user.TokenHash = ""
	return user, nil
}

// UpdateUser merges allowed updates and returns the updated record.
func (s *DefaultUserService) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*models.User, error) {
	updateFields := bson.M{}
	if v, ok := updates["name"].(string); ok && v != "" {
		updateFields["name"] = v
	}
	if v, ok := updates["phone_number"].(string); ok && v != "" {
		updateFields["phoneNumber"] = v
	}
	if v, ok := updates["password"].(string); ok && v != "" {
		if len(v) < 8 {
			return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(v), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updateFields["passwordHash"] = string(hash)
	}
	if len(updateFields) == 0 {
		return nil, fmt.Errorf("%w: no updatable fields supplied", ErrInvalidInput)
	}
	updateFields["updatedAt"] = time.Now()

	if err := s.Repo.UpdateWithDocument(ctx, id, bson.M{"$set": updateFields}); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.GetUserByID(ctx, id)
}

func (s *DefaultUserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+id)
	return nil
}

// RevokeAuthToken invalidates the user's current token everywhere.
func (s *DefaultUserService) RevokeAuthToken(ctx context.Context, id string) error {
	update := bson.M{"$unset": bson.M{"tokenHash": ""}}
	if err := s.Repo.UpdateWithDocument(ctx, id, update); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+id)
	return nil
}

func (s *DefaultUserService) UpdateFCMToken(ctx context.Context, id, token string) error {
	update := bson.M{"$set": bson.M{"fcmToken": token, "updatedAt": time.Now()}}
	if err := s.Repo.UpdateWithDocument(ctx, id, update); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update FCM token: %w", err)
	}
	return nil
}

func (s *DefaultUserService) ListUsers(ctx context.Context, limit, offset int64) ([]models.User, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	users, err := s.Repo.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	for i := range users {
		users[i].PasswordHash = ""
		users[i].TokenHash = ""
	}
	return users, nil
}
