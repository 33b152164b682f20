package handlers

import (
	userRepoPkg "careconnect/database/repository/user"
)

// HandlerBundle groups all endpoint handlers plus the repository the auth
// middleware needs.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Auth      *AuthHandler
	Caretaker *CaretakerHandler
	Booking   *BookingHandler
	Payment   *PaymentHandler
	Feedback  *FeedbackHandler
	Admin     *AdminHandler
}
