package models

// PaymentRequest is the POST /api/initiate-stk-push payload. Phone must be
// an M-Pesa number in international form without the plus, e.g. 254712345678.
type PaymentRequest struct {
	Phone         string  `json:"phone" validate:"required,min=12,startswith=254,numeric"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	AppointmentID string  `json:"appointment_id" validate:"required"`
}

// Payment state values reported by GET /api/payment-status/{checkout_id}.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// PaymentStatus is a snapshot of an initiated STK push.
type PaymentStatus struct {
	CheckoutRequestID string `json:"checkout_request_id"`
	Status            string `json:"status"`
	Message           string `json:"message"`
}

// Final reports whether the payment reached a terminal state.
func (p PaymentStatus) Final() bool {
	return p.Status == PaymentCompleted || p.Status == PaymentFailed
}
