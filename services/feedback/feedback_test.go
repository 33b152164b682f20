package feedback

import (
	bookingRepo "careconnect/database/repository/booking"
	caretakerRepo "careconnect/database/repository/caretaker"
	"careconnect/models"
	"careconnect/utils"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeFeedbackRepo struct {
	feedbacks map[string]*models.Feedback
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{feedbacks: make(map[string]*models.Feedback)}
}

func (r *fakeFeedbackRepo) Create(f *models.Feedback) error {
	cp := *f
	r.feedbacks[f.ID] = &cp
	return nil
}

func (r *fakeFeedbackRepo) Update(f *models.Feedback) error {
	cp := *f
	r.feedbacks[f.ID] = &cp
	return nil
}

func (r *fakeFeedbackRepo) Delete(id string) error {
	delete(r.feedbacks, id)
	return nil
}

func (r *fakeFeedbackRepo) GetByID(id string) (*models.Feedback, error) {
	f, ok := r.feedbacks[id]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (r *fakeFeedbackRepo) GetByBooking(bookingID string) (*models.Feedback, error) {
	for _, f := range r.feedbacks {
		if f.BookingID == bookingID {
			cp := *f
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeFeedbackRepo) ListByCaretaker(caretakerID string, visibleOnly bool, skip, limit int64) ([]models.Feedback, error) {
	var out []models.Feedback
	for _, f := range r.feedbacks {
		if f.CaretakerID != caretakerID {
			continue
		}
		if visibleOnly && !f.IsVisible {
			continue
		}
		out = append(out, *f)
	}
	return out, nil
}

func (r *fakeFeedbackRepo) CountByCaretaker(caretakerID string, visibleOnly bool) (int64, error) {
	list, _ := r.ListByCaretaker(caretakerID, visibleOnly, 0, 0)
	return int64(len(list)), nil
}

func (r *fakeFeedbackRepo) ListByUser(userID string) ([]models.Feedback, error) {
	var out []models.Feedback
	for _, f := range r.feedbacks {
		if f.UserID == userID {
			out = append(out, *f)
		}
	}
	return out, nil
}

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) Update(b *models.Booking) error {
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) List(filter bookingRepo.BookingFilter, skip, limit int64) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) Count(filter bookingRepo.BookingFilter) (int64, error) {
	return int64(len(r.bookings)), nil
}

type fakeCaretakerRepo struct {
	caretakers map[string]*models.Caretaker
}

func newFakeCaretakerRepo() *fakeCaretakerRepo {
	return &fakeCaretakerRepo{caretakers: make(map[string]*models.Caretaker)}
}

func (r *fakeCaretakerRepo) Create(c *models.Caretaker) error {
	cp := *c
	r.caretakers[c.ID] = &cp
	return nil
}

func (r *fakeCaretakerRepo) Update(c *models.Caretaker) error {
	cp := *c
	r.caretakers[c.ID] = &cp
	return nil
}

func (r *fakeCaretakerRepo) GetByID(id string) (*models.Caretaker, error) {
	c, ok := r.caretakers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCaretakerRepo) GetByEmail(email string) (*models.Caretaker, error) {
	return nil, nil
}

func (r *fakeCaretakerRepo) List(filter caretakerRepo.CaretakerFilter, skip, limit int64) ([]models.Caretaker, error) {
	return nil, nil
}

func (r *fakeCaretakerRepo) Count(filter caretakerRepo.CaretakerFilter) (int64, error) {
	return int64(len(r.caretakers)), nil
}

func newFeedbackService() (*DefaultFeedbackService, *fakeFeedbackRepo, *fakeBookingRepo, *fakeCaretakerRepo) {
	feedbacks := newFakeFeedbackRepo()
	bookings := newFakeBookingRepo()
	caretakers := newFakeCaretakerRepo()
	svc := &DefaultFeedbackService{
		Repo:          feedbacks,
		BookingRepo:   bookings,
		CaretakerRepo: caretakers,
	}
	return svc, feedbacks, bookings, caretakers
}

func completedBooking(id, userID, caretakerID string) *models.Booking {
	return &models.Booking{
		ID:          id,
		UserID:      userID,
		CaretakerID: caretakerID,
		Status:      models.BookingCompleted,
	}
}

func TestSubmitFeedbackUpdatesAggregateIncrementally(t *testing.T) {
	svc, _, bookings, caretakers := newFeedbackService()
	require.NoError(t, caretakers.Create(&models.Caretaker{ID: "ct1"}))
	require.NoError(t, bookings.Create(completedBooking("b1", "u1", "ct1")))
	require.NoError(t, bookings.Create(completedBooking("b2", "u2", "ct1")))

	_, err := svc.SubmitFeedback(models.Principal{ID: "u1", Role: models.RoleUser}, FeedbackInput{BookingID: "b1", Rating: 5})
	require.NoError(t, err)

	ct, err := caretakers.GetByID("ct1")
	require.NoError(t, err)
	require.Equal(t, 5.0, ct.Rating)
	require.Equal(t, 1, ct.TotalReviews)

	_, err = svc.SubmitFeedback(models.Principal{ID: "u2", Role: models.RoleUser}, FeedbackInput{BookingID: "b2", Rating: 3})
	require.NoError(t, err)

	ct, err = caretakers.GetByID("ct1")
	require.NoError(t, err)
	require.Equal(t, 4.0, ct.Rating)
	require.Equal(t, 2, ct.TotalReviews)
}

func TestSubmitFeedbackRejectsIncompleteBooking(t *testing.T) {
	svc, _, bookings, caretakers := newFeedbackService()
	require.NoError(t, caretakers.Create(&models.Caretaker{ID: "ct1"}))
	b := completedBooking("b1", "u1", "ct1")
	b.Status = models.BookingInProgress
	require.NoError(t, bookings.Create(b))

	_, err := svc.SubmitFeedback(models.Principal{ID: "u1", Role: models.RoleUser}, FeedbackInput{BookingID: "b1", Rating: 5})
	require.Error(t, err)
	require.Equal(t, utils.CodeInvalidState, utils.ErrorCode(err))
}

func TestSubmitFeedbackRejectsDuplicate(t *testing.T) {
	svc, _, bookings, caretakers := newFeedbackService()
	require.NoError(t, caretakers.Create(&models.Caretaker{ID: "ct1"}))
	require.NoError(t, bookings.Create(completedBooking("b1", "u1", "ct1")))

	actor := models.Principal{ID: "u1", Role: models.RoleUser}
	_, err := svc.SubmitFeedback(actor, FeedbackInput{BookingID: "b1", Rating: 5})
	require.NoError(t, err)

	_, err = svc.SubmitFeedback(actor, FeedbackInput{BookingID: "b1", Rating: 4})
	require.Error(t, err)
	require.Equal(t, utils.CodeAlreadyExists, utils.ErrorCode(err))

	// The aggregate still reflects only the first submission.
	ct, err := caretakers.GetByID("ct1")
	require.NoError(t, err)
	require.Equal(t, 5.0, ct.Rating)
	require.Equal(t, 1, ct.TotalReviews)
}

func TestSubmitFeedbackForbidsNonOwner(t *testing.T) {
	svc, _, bookings, caretakers := newFeedbackService()
	require.NoError(t, caretakers.Create(&models.Caretaker{ID: "ct1"}))
	require.NoError(t, bookings.Create(completedBooking("b1", "u1", "ct1")))

	_, err := svc.SubmitFeedback(models.Principal{ID: "u2", Role: models.RoleUser}, FeedbackInput{BookingID: "b1", Rating: 5})
	require.Error(t, err)
	require.Equal(t, utils.CodeForbidden, utils.ErrorCode(err))
}

func TestUpdateFeedbackRecomputesAggregate(t *testing.T) {
	svc, _, bookings, caretakers := newFeedbackService()
	require.NoError(t, caretakers.Create(&models.Caretaker{ID: "ct1"}))
	require.NoError(t, bookings.Create(completedBooking("b1", "u1", "ct1")))
	require.NoError(t, bookings.Create(completedBooking("b2", "u2", "ct1")))

	fb, err := svc.SubmitFeedback(models.Principal{ID: "u1", Role: models.RoleUser}, FeedbackInput{BookingID: "b1", Rating: 5})
	require.NoError(t, err)
	_, err = svc.SubmitFeedback(models.Principal{ID: "u2", Role: models.RoleUser}, FeedbackInput{BookingID: "b2", Rating: 3})
	require.NoError(t, err)

	newRating := 1.0
	_, err = svc.UpdateFeedback(models.Principal{ID: "u1", Role: models.RoleUser}, fb.ID, FeedbackUpdate{Rating: &newRating})
	require.NoError(t, err)

	ct, err := caretakers.GetByID("ct1")
	require.NoError(t, err)
	require.Equal(t, 2.0, ct.Rating)
	require.Equal(t, 2, ct.TotalReviews)
}

func TestDeleteFeedbackRecomputesAggregate(t *testing.T) {
	svc, _, bookings, caretakers := newFeedbackService()
	require.NoError(t, caretakers.Create(&models.Caretaker{ID: "ct1"}))
	require.NoError(t, bookings.Create(completedBooking("b1", "u1", "ct1")))
	require.NoError(t, bookings.Create(completedBooking("b2", "u2", "ct1")))

	_, err := svc.SubmitFeedback(models.Principal{ID: "u1", Role: models.RoleUser}, FeedbackInput{BookingID: "b1", Rating: 5})
	require.NoError(t, err)
	fb, err := svc.SubmitFeedback(models.Principal{ID: "u2", Role: models.RoleUser}, FeedbackInput{BookingID: "b2", Rating: 3})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteFeedback(models.Principal{ID: "u2", Role: models.RoleUser}, fb.ID))

	ct, err := caretakers.GetByID("ct1")
	require.NoError(t, err)
	require.Equal(t, 5.0, ct.Rating)
	require.Equal(t, 1, ct.TotalReviews)
}

func TestDeleteLastFeedbackResetsAggregate(t *testing.T) {
	svc, _, bookings, caretakers := newFeedbackService()
	require.NoError(t, caretakers.Create(&models.Caretaker{ID: "ct1"}))
	require.NoError(t, bookings.Create(completedBooking("b1", "u1", "ct1")))

	fb, err := svc.SubmitFeedback(models.Principal{ID: "u1", Role: models.RoleUser}, FeedbackInput{BookingID: "b1", Rating: 5})
	require.NoError(t, err)

	// Admins may remove any feedback.
	require.NoError(t, svc.DeleteFeedback(models.Principal{ID: "a1", Role: models.RoleAdmin}, fb.ID))

	ct, err := caretakers.GetByID("ct1")
	require.NoError(t, err)
	require.Zero(t, ct.Rating)
	require.Zero(t, ct.TotalReviews)
}

func TestCaretakerFeedbackAveragesVisibleSet(t *testing.T) {
	svc, feedbacks, _, caretakers := newFeedbackService()
	require.NoError(t, caretakers.Create(&models.Caretaker{ID: "ct1"}))

	require.NoError(t, feedbacks.Create(&models.Feedback{
		ID: "f1", UserID: "u1", CaretakerID: "ct1", BookingID: "b1",
		Rating: 5, IsVisible: true,
		Categories: models.FeedbackCategories{Professionalism: 5, Punctuality: 4},
	}))
	require.NoError(t, feedbacks.Create(&models.Feedback{
		ID: "f2", UserID: "u2", CaretakerID: "ct1", BookingID: "b2",
		Rating: 3, IsVisible: true,
		Categories: models.FeedbackCategories{Professionalism: 3, Punctuality: 2},
	}))
	require.NoError(t, feedbacks.Create(&models.Feedback{
		ID: "f3", UserID: "u3", CaretakerID: "ct1", BookingID: "b3",
		Rating: 1, IsVisible: false,
	}))

	page, err := svc.CaretakerFeedback("ct1", 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(2), page.Total)
	require.Len(t, page.Feedbacks, 2)
	require.Equal(t, 4.0, page.AvgRating)
	require.Equal(t, 4.0, page.AvgCategories.Professionalism)
	require.Equal(t, 3.0, page.AvgCategories.Punctuality)
}
