package booking

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"quickscan/models"
	"quickscan/utils"

	"go.uber.org/zap"
)

// CancellationReason is recorded on every user-initiated cancellation.
const CancellationReason = "User cancelled"

// CreateBooking validates a submission, resolves the referenced service and
// lab, computes pricing, persists the composed booking and dispatches a
// confirmation email. The dispatch is best-effort: its failure is logged and
// never affects the booking outcome.
func (svc *DefaultBookingService) CreateBooking(userID string, input models.BookingInput) (*models.BookingReceipt, error) {
	if err := validateSubmission(input); err != nil {
		return nil, err
	}

	appointmentDate, err := parseAppointmentDate(input.AppointmentDate)
	if err != nil {
		return nil, err
	}

	service, err := svc.resolveService(input.ServiceID)
	if err != nil {
		return nil, err
	}
	lab, err := svc.resolveLab(input.LabID)
	if err != nil {
		return nil, err
	}

	appointmentType := input.AppointmentType
	if appointmentType == "" {
		appointmentType = models.AppointmentLabVisit
	}
	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentMethodCash
	}

	quote := ComputeQuote(service.EffectivePrice(), appointmentType, input.CouponCode)

	serviceType := service.Category
	if serviceType == "" {
		serviceType = "mri"
	}

	now := time.Now()
	b := &models.Booking{
		BookingID: generateBookingID(),
		UserID:    userID,

		PatientName:   strings.TrimSpace(input.PatientName),
		PatientAge:    input.PatientAge,
		PatientGender: input.PatientGender,
		PatientEmail:  strings.TrimSpace(input.PatientEmail),
		PatientPhone:  strings.TrimSpace(input.PatientPhone),

		ServiceID:   service.ID,
		ServiceName: service.Name,
		ServiceType: serviceType,

		LabID:      lab.ID,
		LabName:    lab.Name,
		LabAddress: lab.Address,
		LabCity:    lab.City,
		LabPhone:   lab.Phone,

		AppointmentDate:    appointmentDate,
		TimeSlot:           input.TimeSlot,
		AppointmentType:    appointmentType,
		HomeServiceAddress: input.HomeServiceAddress,
		HomeServicePincode: input.HomeServicePincode,

		DoctorReferral:  input.DoctorReferral,
		DoctorName:      input.DoctorName,
		Symptoms:        input.Symptoms,
		PreviousReports: input.PreviousReports,

		BaseAmount:        quote.BaseAmount,
		HomeServiceCharge: quote.HomeServiceCharge,
		Discount:          quote.Discount,
		TaxAmount:         quote.TaxAmount,
		TotalAmount:       quote.TotalAmount,

		PaymentMethod: paymentMethod,
		PaymentStatus: models.PaymentStatusPending,
		Status:        models.BookingStatusPending,

		SpecialInstructions: input.SpecialInstructions,
		Notes:               input.Notes,
		CouponCode:          input.CouponCode,

		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := svc.Repo.Create(b); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if svc.Notifier != nil {
		if err := svc.Notifier.DispatchBookingConfirmation(b); err != nil {
			utils.GetLogger().Warn("booking confirmation dispatch failed",
				zap.String("bookingId", b.BookingID), zap.Error(err))
		}
	}

	receipt := &models.BookingReceipt{
		BookingID:       b.BookingID,
		TotalAmount:     b.TotalAmount,
		PaymentRequired: paymentMethod == models.PaymentMethodOnline,
	}
	if receipt.PaymentRequired {
		receipt.PaymentLink = "/api/payment/create?bookingId=" + b.BookingID
	}
	return receipt, nil
}

// requiredFields lists the submission fields that must be present, in the
// order they are reported back.
var requiredFields = []string{
	"serviceId",
	"patientName",
	"patientEmail",
	"patientPhone",
	"appointmentDate",
	"timeSlot",
	"labId",
}

func validateSubmission(input models.BookingInput) error {
	values := map[string]string{
		"serviceId":       input.ServiceID,
		"patientName":     input.PatientName,
		"patientEmail":    input.PatientEmail,
		"patientPhone":    input.PatientPhone,
		"appointmentDate": input.AppointmentDate,
		"timeSlot":        input.TimeSlot,
		"labId":           input.LabID,
	}

	var missing []string
	for _, field := range requiredFields {
		if strings.TrimSpace(values[field]) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

func parseAppointmentDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, &ValidationError{Fields: []string{"appointmentDate"}}
}

// generateBookingID builds a scheme-prefixed identifier from the submission
// timestamp and a small random suffix. Collisions are possible by
// construction; the unique index on bookingId is the actual guarantee.
func generateBookingID() string {
	return fmt.Sprintf("QS%d%d", time.Now().UnixMilli(), rand.Intn(1000))
}
