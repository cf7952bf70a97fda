package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"expense-tracker-be/internal/entities"
	"expense-tracker-be/internal/models"
	"expense-tracker-be/internal/repository"
	"expense-tracker-be/internal/token"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*entities.User, string, error)
	Login(ctx context.Context, req *models.LoginRequest) (*entities.User, string, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *token.Service
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserRepository, tokens *token.Service) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
	}
}

// Signup creates a new user account and logs it in immediately.
func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*entities.User, string, error) {
	// Duplicate pre-check; the unique constraints on email and phone catch
	// concurrent submissions that race past it.
	existing, err := s.users.FindByEmailOrPhone(ctx, req.Email, req.Phone)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, "", ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &entities.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
		Profession:   req.Profession,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrUserExists
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	tokenStr, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	user.PasswordHash = ""
	return user, tokenStr, nil
}

// Login authenticates by email or phone. Unknown key and wrong password are
// deliberately indistinguishable.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*entities.User, string, error) {
	user, err := s.users.FindByKey(ctx, req.Key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	tokenStr, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	user.PasswordHash = ""
	return user, tokenStr, nil
}
