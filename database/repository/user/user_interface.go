package userRepo

import "careconnect/models"

// UserRepository defines persistence operations for user accounts.
// Lookups return (nil, nil) when no document matches.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List(search string, skip, limit int64) ([]models.User, error)
	Count(search string) (int64, error)
	CountByRole(role string) (int64, error)
}
