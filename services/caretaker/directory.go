package caretaker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	caretakerRepo "careconnect/database/repository/caretaker"
	"careconnect/models"
	"careconnect/utils"

	"go.uber.org/zap"
)

const directoryCacheTTL = 2 * time.Minute

type directoryPage struct {
	Caretakers []models.Caretaker `json:"caretakers"`
	Total      int64              `json:"total"`
}

func directoryCacheKey(q DirectoryQuery) string {
	return fmt.Sprintf("directory:%s:%s:%s:%s:%.1f:%d:%d",
		q.Specialization, q.Availability, q.City, q.Search, q.MinRating, q.Page, q.Limit)
}

// ListCaretakers serves the public directory: verified, active caretakers
// matching the query, best rated first. Pages are cached briefly in Redis.
func (s *DefaultCaretakerService) ListCaretakers(q DirectoryQuery) ([]models.Caretaker, int64, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}

	ctx := context.Background()
	key := directoryCacheKey(q)
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var page directoryPage
			if err := json.Unmarshal([]byte(data), &page); err == nil {
				return page.Caretakers, page.Total, nil
			}
		}
	}

	verified := true
	filter := caretakerRepo.CaretakerFilter{
		Specialization: q.Specialization,
		Availability:   q.Availability,
		City:           q.City,
		Search:         q.Search,
		MinRating:      q.MinRating,
		Verified:       &verified,
		ActiveOnly:     true,
	}
	skip := (q.Page - 1) * q.Limit

	caretakers, err := s.Repo.List(filter, skip, q.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list caretakers: %w", err)
	}
	total, err := s.Repo.Count(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count caretakers: %w", err)
	}

	if s.Cache != nil {
		if data, err := json.Marshal(directoryPage{Caretakers: caretakers, Total: total}); err == nil {
			if err := s.Cache.Set(ctx, key, data, directoryCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache directory page", zap.Error(err))
			}
		}
	}

	return caretakers, total, nil
}

// GetCaretaker returns a caretaker with its most recent visible feedback.
func (s *DefaultCaretakerService) GetCaretaker(id string) (*models.Caretaker, []models.Feedback, error) {
	caretaker, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch caretaker: %w", err)
	}
	if caretaker == nil {
		return nil, nil, utils.NotFoundErr("Caretaker not found")
	}

	feedbacks, err := s.FeedbackRepo.ListByCaretaker(id, true, 0, 10)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return caretaker, feedbacks, nil
}
