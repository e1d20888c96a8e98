package bookingRepo

import "quickscan/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(b *models.Booking) error
	// GetByBookingID retrieves a booking by its human-readable identifier.
	// Returns nil without error when no such booking exists.
	GetByBookingID(bookingID string) (*models.Booking, error)
	// GetByUser retrieves a user's bookings, newest first, capped at limit.
	GetByUser(userID string, limit int64) ([]models.Booking, error)
	// Cancel atomically transitions a booking to cancelled, but only while its
	// status is pending or confirmed. Returns the updated record, or nil when
	// the booking is absent or not cancellable.
	Cancel(bookingID, reason string) (*models.Booking, error)
}
