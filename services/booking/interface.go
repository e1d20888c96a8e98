package booking

import (
	bookingRepo "quickscan/database/repository/booking"
	labRepo "quickscan/database/repository/lab"
	serviceRepo "quickscan/database/repository/service"
	"quickscan/models"
	"quickscan/services/notification"
)

// BookingService defines the interface for the booking lifecycle: creation,
// cancellation and reads.
type BookingService interface {
	CreateBooking(userID string, input models.BookingInput) (*models.BookingReceipt, error)
	GetBooking(bookingID string) (*models.Booking, error)
	ListUserBookings(userID string, limit int64) ([]models.Booking, error)
	CancelBooking(bookingID string) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	ServiceRepo serviceRepo.ServiceRepository
	LabRepo     labRepo.LabRepository
	Notifier    notification.Dispatcher
}
