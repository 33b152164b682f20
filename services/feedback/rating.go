package feedback

import "careconnect/models"

// Recompute derives a caretaker's aggregate rating from its full feedback
// set. An empty set resets the aggregate to zero. Pure; callers persist the
// result as an explicit, separate write.
func Recompute(feedbacks []models.Feedback) (rating float64, totalReviews int) {
	if len(feedbacks) == 0 {
		return 0, 0
	}
	var sum float64
	for _, f := range feedbacks {
		sum += f.Rating
	}
	return sum / float64(len(feedbacks)), len(feedbacks)
}

// IncrementalRating folds one new rating into an existing aggregate without
// refetching the set. Converges to the same steady state as Recompute for a
// given feedback set.
func IncrementalRating(oldRating float64, oldCount int, newRating float64) (float64, int) {
	total := oldRating*float64(oldCount) + newRating
	count := oldCount + 1
	return total / float64(count), count
}
