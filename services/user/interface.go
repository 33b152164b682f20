package user

import (
	userRepo "careconnect/database/repository/user"
	"careconnect/models"
)

// RegisterInput carries the signup payload.
type RegisterInput struct {
	Name     string         `json:"name" binding:"required"`
	Email    string         `json:"email" binding:"required,email"`
	Password string         `json:"password" binding:"required,min=6"`
	Phone    string         `json:"phone"`
	Address  models.Address `json:"address"`
}

// LoginInput carries the credentials payload.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by Register and Login: the account plus a signed
// bearer token.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService handles account signup, login and admin-side user management.
type UserService interface {
	Register(input RegisterInput) (*AuthResponse, error)
	Login(input LoginInput) (*AuthResponse, error)

	GetUserByID(id string) (*models.User, error)
	UpdateUser(id string, apply func(*models.User)) (*models.User, error)

	GetAllUsers(search string, page, limit int64) ([]models.User, int64, error)
	DeactivateUser(id string) (*models.User, error)
	ActivateUser(id string) (*models.User, error)
}

// DefaultUserService is the production implementation backed by the user
// repository.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
