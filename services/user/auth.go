package user

import (
	"fmt"
	"time"

	"careconnect/models"
	"careconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 7 * 24 * time.Hour

// Register creates a new user account and issues a bearer token.
func (s *DefaultUserService) Register(input RegisterInput) (*AuthResponse, error) {
	logger := utils.GetLogger().Sugar()

	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, utils.AlreadyExistsErr("User with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Phone:        input.Phone,
		Role:         models.RoleUser,
		IsActive:     true,
		Address:      input.Address,
	}

	if err := s.Repo.Create(u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateToken(u.ID, u.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Infow("User registered", "userID", u.ID, "email", u.Email)
	return &AuthResponse{User: u, Token: token}, nil
}

// Login verifies credentials and issues a bearer token. Deactivated accounts
// are rejected.
func (s *DefaultUserService) Login(input LoginInput) (*AuthResponse, error) {
	u, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, utils.InvalidInputErr("Invalid email or password")
	}
	if !u.IsActive {
		return nil, utils.ForbiddenErr("Account has been deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return nil, utils.InvalidInputErr("Invalid email or password")
	}

	token, err := utils.GenerateToken(u.ID, u.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	utils.GetLogger().Info("User logged in", zap.String("userID", u.ID))
	return &AuthResponse{User: u, Token: token}, nil
}
