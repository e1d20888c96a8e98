package models

// BookingReceipt is returned to the client after a successful creation.
// PaymentLink is only set for the online payment method.
type BookingReceipt struct {
	BookingID       string  `json:"bookingId"`
	TotalAmount     float64 `json:"totalAmount"`
	PaymentRequired bool    `json:"paymentRequired"`
	PaymentLink     string  `json:"paymentLink,omitempty"`
}
