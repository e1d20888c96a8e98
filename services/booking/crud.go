package booking

import (
	"fmt"

	"quickscan/models"
)

// DefaultBookingLimit caps a booking listing when the caller supplies none.
const DefaultBookingLimit = 10

// GetBooking fetches a single booking by its identifier. Any caller holding
// the identifier may read it.
func (svc *DefaultBookingService) GetBooking(bookingID string) (*models.Booking, error) {
	b, err := svc.Repo.GetByBookingID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

// ListUserBookings returns the user's bookings ordered newest-first.
func (svc *DefaultBookingService) ListUserBookings(userID string, limit int64) ([]models.Booking, error) {
	if limit <= 0 {
		limit = DefaultBookingLimit
	}
	bookings, err := svc.Repo.GetByUser(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// CancelBooking transitions a booking to cancelled if it is still pending or
// confirmed. The underlying update is a single atomic conditional operation,
// so exactly one of several concurrent cancel attempts can succeed.
func (svc *DefaultBookingService) CancelBooking(bookingID string) (*models.Booking, error) {
	updated, err := svc.Repo.Cancel(bookingID, CancellationReason)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	if updated == nil {
		return nil, ErrBookingNotCancellable
	}
	return updated, nil
}
