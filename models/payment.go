package models

import "time"

// Payment statuses.
const (
	PaymentPending    = "pending"
	PaymentProcessing = "processing"
	PaymentCompleted  = "completed"
	PaymentFailed     = "failed"
	PaymentRefunded   = "refunded"
)

// Payment methods.
const (
	MethodCard       = "card"
	MethodUPI        = "upi"
	MethodNetBanking = "netbanking"
	MethodWallet     = "wallet"
	MethodCash       = "cash"
)

// ValidPaymentMethod reports whether m is a supported payment method.
func ValidPaymentMethod(m string) bool {
	switch m {
	case MethodCard, MethodUPI, MethodNetBanking, MethodWallet, MethodCash:
		return true
	}
	return false
}

// Payment is a settlement record against a booking. Amount is copied from the
// booking's total at creation. At most one payment per booking may reach
// "completed".
type Payment struct {
	ID               string     `bson:"id" json:"id"`
	UserID           string     `bson:"userId" json:"userId"`
	BookingID        string     `bson:"bookingId" json:"bookingId"`
	CaretakerID      string     `bson:"caretakerId" json:"caretakerId"`
	Amount           float64    `bson:"amount" json:"amount"`
	Currency         string     `bson:"currency" json:"currency"`
	PaymentMethod    string     `bson:"paymentMethod" json:"paymentMethod"`
	Status           string     `bson:"status" json:"status"`
	TransactionID    string     `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	PaymentGateway   string     `bson:"paymentGateway,omitempty" json:"paymentGateway,omitempty"`
	GatewayPaymentID string     `bson:"gatewayPaymentId,omitempty" json:"gatewayPaymentId,omitempty"`
	GatewaySignature string     `bson:"gatewaySignature,omitempty" json:"gatewaySignature,omitempty"`
	PaidAt           *time.Time `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	RefundAmount     float64    `bson:"refundAmount,omitempty" json:"refundAmount,omitempty"`
	RefundReason     string     `bson:"refundReason,omitempty" json:"refundReason,omitempty"`
	RefundedAt       *time.Time `bson:"refundedAt,omitempty" json:"refundedAt,omitempty"`
	CreatedAt        time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time  `bson:"updatedAt" json:"updatedAt"`
}
