package admin

import (
	bookingRepo "careconnect/database/repository/booking"
	caretakerRepo "careconnect/database/repository/caretaker"
	paymentRepo "careconnect/database/repository/payment"
	userRepo "careconnect/database/repository/user"
	"careconnect/models"
)

// DashboardStats aggregates the platform counters shown on the admin
// dashboard.
type DashboardStats struct {
	TotalUsers         int64            `json:"totalUsers"`
	TotalCaretakers    int64            `json:"totalCaretakers"`
	VerifiedCaretakers int64            `json:"verifiedCaretakers"`
	PendingCaretakers  int64            `json:"pendingCaretakers"`
	TotalBookings      int64            `json:"totalBookings"`
	ActiveBookings     int64            `json:"activeBookings"`
	CompletedBookings  int64            `json:"completedBookings"`
	TotalRevenue       float64          `json:"totalRevenue"`
	RecentBookings     []models.Booking `json:"recentBookings"`
}

// AdminService serves cross-entity admin reporting.
type AdminService interface {
	GetDashboardStats() (*DashboardStats, error)
}

// DefaultAdminService is the production implementation; it reads across all
// four stores.
type DefaultAdminService struct {
	Users      userRepo.UserRepository
	Caretakers caretakerRepo.CaretakerRepository
	Bookings   bookingRepo.BookingRepository
	Payments   paymentRepo.PaymentRepository
}
