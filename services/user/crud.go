package user

import (
	"fmt"

	"careconnect/models"
	"careconnect/utils"
)

// GetUserByID fetches a single user account.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, utils.NotFoundErr("User not found")
	}
	return u, nil
}

// UpdateUser applies an in-place mutation to a user account.
func (s *DefaultUserService) UpdateUser(id string, apply func(*models.User)) (*models.User, error) {
	u, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	apply(u)

	if err := s.Repo.Update(u); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return u, nil
}

// GetAllUsers pages through non-admin accounts for the admin console, with an
// optional name/email search.
func (s *DefaultUserService) GetAllUsers(search string, page, limit int64) ([]models.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	skip := (page - 1) * limit

	users, err := s.Repo.List(search, skip, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	total, err := s.Repo.Count(search)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}
	return users, total, nil
}

// DeactivateUser disables an account. In-flight sessions end at the next
// authenticated request. Admin accounts cannot be deactivated.
func (s *DefaultUserService) DeactivateUser(id string) (*models.User, error) {
	u, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if u.Role == models.RoleAdmin {
		return nil, utils.InvalidStateErr("Cannot deactivate admin users")
	}

	u.IsActive = false
	if err := s.Repo.Update(u); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return u, nil
}

// ActivateUser re-enables a deactivated account.
func (s *DefaultUserService) ActivateUser(id string) (*models.User, error) {
	return s.UpdateUser(id, func(u *models.User) {
		u.IsActive = true
	})
}
