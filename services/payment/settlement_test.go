package payment

import (
	"testing"

	bookingRepo "careconnect/database/repository/booking"
	paymentRepo "careconnect/database/repository/payment"
	"careconnect/models"
	"careconnect/utils"

	"github.com/stretchr/testify/require"
)

type fakePaymentRepo struct {
	payments map[string]*models.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*models.Payment)}
}

func (r *fakePaymentRepo) Create(p *models.Payment) error {
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) Update(p *models.Payment) error {
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) GetByID(id string) (*models.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) GetByBooking(bookingID string) (*models.Payment, error) {
	for _, p := range r.payments {
		if p.BookingID == bookingID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) List(filter paymentRepo.PaymentFilter, skip, limit int64) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range r.payments {
		if filter.UserID != "" && p.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePaymentRepo) Count(filter paymentRepo.PaymentFilter) (int64, error) {
	list, _ := r.List(filter, 0, 0)
	return int64(len(list)), nil
}

func (r *fakePaymentRepo) SumAmount(filter paymentRepo.PaymentFilter) (float64, error) {
	list, _ := r.List(filter, 0, 0)
	var sum float64
	for _, p := range list {
		sum += p.Amount
	}
	return sum, nil
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
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBookingRepo) Count(filter bookingRepo.BookingFilter) (int64, error) {
	return int64(len(r.bookings)), nil
}

type recordingScheduler struct {
	scheduled []string
}

func (s *recordingScheduler) ScheduleBookingReminder(b *models.Booking) error {
	s.scheduled = append(s.scheduled, b.ID)
	return nil
}

type fakeGateway struct {
	calls int
}

func (g *fakeGateway) CreateIntent(amount float64, currency, bookingID string) (string, error) {
	g.calls++
	return "pi_test_123", nil
}

func newPaymentService() (*DefaultPaymentService, *fakePaymentRepo, *fakeBookingRepo, *recordingScheduler) {
	payments := newFakePaymentRepo()
	bookings := newFakeBookingRepo()
	scheduler := &recordingScheduler{}
	svc := &DefaultPaymentService{
		Repo:        payments,
		BookingRepo: bookings,
		Gateway:     &fakeGateway{},
		Reminders:   scheduler,
	}
	return svc, payments, bookings, scheduler
}

func pendingBooking(id, userID string) *models.Booking {
	return &models.Booking{
		ID:            id,
		UserID:        userID,
		CaretakerID:   "ct1",
		TotalAmount:   2000,
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentStatusPending,
	}
}

func TestCreatePaymentCopiesBookingAmount(t *testing.T) {
	svc, _, bookings, _ := newPaymentService()
	require.NoError(t, bookings.Create(pendingBooking("b1", "u1")))

	actor := models.Principal{ID: "u1", Role: models.RoleUser}
	payment, err := svc.CreatePayment(actor, CreatePaymentInput{BookingID: "b1", PaymentMethod: models.MethodUPI})
	require.NoError(t, err)
	require.Equal(t, float64(2000), payment.Amount)
	require.Equal(t, "INR", payment.Currency)
	require.Equal(t, models.PaymentPending, payment.Status)
	require.Equal(t, "manual", payment.PaymentGateway)
}

func TestCreatePaymentCardOpensGatewayIntent(t *testing.T) {
	svc, _, bookings, _ := newPaymentService()
	require.NoError(t, bookings.Create(pendingBooking("b1", "u1")))

	actor := models.Principal{ID: "u1", Role: models.RoleUser}
	payment, err := svc.CreatePayment(actor, CreatePaymentInput{BookingID: "b1", PaymentMethod: models.MethodCard})
	require.NoError(t, err)
	require.Equal(t, "stripe", payment.PaymentGateway)
	require.Equal(t, "pi_test_123", payment.GatewayPaymentID)
}

func TestCreatePaymentRejectsPaidBooking(t *testing.T) {
	svc, _, bookings, _ := newPaymentService()
	b := pendingBooking("b1", "u1")
	b.PaymentStatus = models.PaymentStatusPaid
	require.NoError(t, bookings.Create(b))

	actor := models.Principal{ID: "u1", Role: models.RoleUser}
	_, err := svc.CreatePayment(actor, CreatePaymentInput{BookingID: "b1", PaymentMethod: models.MethodUPI})
	require.Error(t, err)
	require.Equal(t, utils.CodeInvalidState, utils.ErrorCode(err))
}

func TestCreatePaymentRejectsSecondCompletedPayment(t *testing.T) {
	svc, payments, bookings, _ := newPaymentService()
	require.NoError(t, bookings.Create(pendingBooking("b1", "u1")))
	require.NoError(t, payments.Create(&models.Payment{
		ID:        "p1",
		UserID:    "u1",
		BookingID: "b1",
		Amount:    2000,
		Status:    models.PaymentCompleted,
	}))

	actor := models.Principal{ID: "u1", Role: models.RoleUser}
	_, err := svc.CreatePayment(actor, CreatePaymentInput{BookingID: "b1", PaymentMethod: models.MethodUPI})
	require.Error(t, err)
	require.Equal(t, utils.CodeInvalidState, utils.ErrorCode(err))
}

func TestCreatePaymentForbidsNonOwner(t *testing.T) {
	svc, _, bookings, _ := newPaymentService()
	require.NoError(t, bookings.Create(pendingBooking("b1", "u1")))

	stranger := models.Principal{ID: "u2", Role: models.RoleUser}
	_, err := svc.CreatePayment(stranger, CreatePaymentInput{BookingID: "b1", PaymentMethod: models.MethodUPI})
	require.Error(t, err)
	require.Equal(t, utils.CodeForbidden, utils.ErrorCode(err))
}

func TestProcessPaymentCascadesOntoBooking(t *testing.T) {
	svc, payments, bookings, scheduler := newPaymentService()
	require.NoError(t, bookings.Create(pendingBooking("b1", "u1")))

	actor := models.Principal{ID: "u1", Role: models.RoleUser}
	payment, err := svc.CreatePayment(actor, CreatePaymentInput{BookingID: "b1", PaymentMethod: models.MethodUPI})
	require.NoError(t, err)

	processed, err := svc.ProcessPayment(actor, payment.ID, "", "")
	require.NoError(t, err)
	require.Equal(t, models.PaymentCompleted, processed.Status)
	require.NotEmpty(t, processed.TransactionID)
	require.NotEmpty(t, processed.GatewayPaymentID)
	require.NotNil(t, processed.PaidAt)

	booking, err := bookings.GetByID("b1")
	require.NoError(t, err)
	require.Equal(t, models.PaymentStatusPaid, booking.PaymentStatus)
	require.Equal(t, models.BookingConfirmed, booking.Status)

	require.Equal(t, []string{"b1"}, scheduler.scheduled)

	stored, err := payments.GetByID(payment.ID)
	require.NoError(t, err)
	require.Equal(t, models.PaymentCompleted, stored.Status)
}

func TestProcessPaymentRejectsDoubleSettlement(t *testing.T) {
	svc, _, bookings, _ := newPaymentService()
	require.NoError(t, bookings.Create(pendingBooking("b1", "u1")))

	actor := models.Principal{ID: "u1", Role: models.RoleUser}
	payment, err := svc.CreatePayment(actor, CreatePaymentInput{BookingID: "b1", PaymentMethod: models.MethodUPI})
	require.NoError(t, err)

	_, err = svc.ProcessPayment(actor, payment.ID, "", "")
	require.NoError(t, err)

	_, err = svc.ProcessPayment(actor, payment.ID, "", "")
	require.Error(t, err)
	require.Equal(t, utils.CodeInvalidState, utils.ErrorCode(err))
}

func TestRefundPaymentIsAdminOnly(t *testing.T) {
	svc, payments, _, _ := newPaymentService()
	require.NoError(t, payments.Create(&models.Payment{
		ID:     "p1",
		UserID: "u1",
		Amount: 2000,
		Status: models.PaymentCompleted,
	}))

	owner := models.Principal{ID: "u1", Role: models.RoleUser}
	_, err := svc.RefundPayment(owner, "p1", 0, "")
	require.Error(t, err)
	require.Equal(t, utils.CodeForbidden, utils.ErrorCode(err))
}

func TestRefundPaymentDefaultsToFullAmount(t *testing.T) {
	svc, _, bookings, _ := newPaymentService()
	require.NoError(t, bookings.Create(pendingBooking("b1", "u1")))

	actor := models.Principal{ID: "u1", Role: models.RoleUser}
	payment, err := svc.CreatePayment(actor, CreatePaymentInput{BookingID: "b1", PaymentMethod: models.MethodUPI})
	require.NoError(t, err)
	_, err = svc.ProcessPayment(actor, payment.ID, "", "")
	require.NoError(t, err)

	admin := models.Principal{ID: "a1", Role: models.RoleAdmin}
	refunded, err := svc.RefundPayment(admin, payment.ID, 0, "service not delivered")
	require.NoError(t, err)
	require.Equal(t, models.PaymentRefunded, refunded.Status)
	require.Equal(t, float64(2000), refunded.RefundAmount)
	require.NotNil(t, refunded.RefundedAt)

	booking, err := bookings.GetByID("b1")
	require.NoError(t, err)
	require.Equal(t, models.PaymentStatusRefunded, booking.PaymentStatus)
}

func TestRefundPaymentRejectsExcessAmount(t *testing.T) {
	svc, payments, _, _ := newPaymentService()
	require.NoError(t, payments.Create(&models.Payment{
		ID:     "p1",
		UserID: "u1",
		Amount: 2000,
		Status: models.PaymentCompleted,
	}))

	admin := models.Principal{ID: "a1", Role: models.RoleAdmin}
	_, err := svc.RefundPayment(admin, "p1", 2500, "")
	require.Error(t, err)
	require.Equal(t, utils.CodeAmountExceeded, utils.ErrorCode(err))

	// The payment stays settled and unrefunded.
	stored, err := payments.GetByID("p1")
	require.NoError(t, err)
	require.Equal(t, models.PaymentCompleted, stored.Status)
	require.Zero(t, stored.RefundAmount)
}

func TestListPaymentsIsAdminOnly(t *testing.T) {
	svc, payments, _, _ := newPaymentService()
	require.NoError(t, payments.Create(&models.Payment{ID: "p1", UserID: "u1", Status: models.PaymentCompleted}))
	require.NoError(t, payments.Create(&models.Payment{ID: "p2", UserID: "u2", Status: models.PaymentPending}))

	user := models.Principal{ID: "u1", Role: models.RoleUser}
	_, _, err := svc.ListPayments(user, "", 1, 10)
	require.Error(t, err)
	require.Equal(t, utils.CodeForbidden, utils.ErrorCode(err))

	admin := models.Principal{ID: "a1", Role: models.RoleAdmin}
	list, total, err := svc.ListPayments(admin, models.PaymentCompleted, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, list, 1)
}

func TestRefundPaymentRejectsPendingPayment(t *testing.T) {
	svc, payments, _, _ := newPaymentService()
	require.NoError(t, payments.Create(&models.Payment{
		ID:     "p1",
		UserID: "u1",
		Amount: 2000,
		Status: models.PaymentPending,
	}))

	admin := models.Principal{ID: "a1", Role: models.RoleAdmin}
	_, err := svc.RefundPayment(admin, "p1", 0, "")
	require.Error(t, err)
	require.Equal(t, utils.CodeInvalidState, utils.ErrorCode(err))
}
