package notification

import "quickscan/models"

// Dispatcher accepts a booking confirmation for delivery. Dispatch is
// best-effort with no delivery guarantee: the booking flow submits the task
// and moves on, and a failed submission or delivery never affects the
// booking outcome.
type Dispatcher interface {
	DispatchBookingConfirmation(b *models.Booking) error
}
