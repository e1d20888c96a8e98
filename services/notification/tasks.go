package notification

import (
	"encoding/json"
	"fmt"
	"time"

	"quickscan/models"

	"github.com/hibiken/asynq"
)

const TypeEmailSend = "email:send"

// NewEmailTask wraps an email payload as a queue task. MaxRetry(0) keeps the
// at-most-once contract: a failed delivery is logged by the worker and
// dropped, never retried.
func NewEmailTask(payload models.EmailPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeEmailSend, b)
	opts := []asynq.Option{asynq.MaxRetry(0), asynq.Timeout(30 * time.Second)}

	return task, opts, nil
}

// QueueDispatcher submits email tasks to the shared queue.
type QueueDispatcher struct {
	Client *asynq.Client
}

func NewQueueDispatcher(client *asynq.Client) *QueueDispatcher {
	return &QueueDispatcher{Client: client}
}

func (d *QueueDispatcher) DispatchBookingConfirmation(b *models.Booking) error {
	task, opts, err := NewEmailTask(buildConfirmationPayload(b))
	if err != nil {
		return fmt.Errorf("failed to build confirmation task: %w", err)
	}
	if _, err := d.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue confirmation task: %w", err)
	}
	return nil
}

// buildConfirmationPayload assembles the template data for the
// booking-confirmation email.
func buildConfirmationPayload(b *models.Booking) models.EmailPayload {
	labPhone := b.LabPhone
	if labPhone == "" {
		labPhone = "1800-123-4567"
	}

	return models.EmailPayload{
		To:       b.PatientEmail,
		Subject:  fmt.Sprintf("QuickScan Medical - Appointment Confirmed (%s)", b.BookingID),
		Template: "booking-confirmation",
		Data: map[string]any{
			"patientName":     b.PatientName,
			"bookingId":       b.BookingID,
			"serviceName":     b.ServiceName,
			"appointmentDate": b.AppointmentDate.Format("Mon, 2 Jan 2006"),
			"timeSlot":        b.TimeSlot,
			"labName":         b.LabName,
			"labAddress":      fmt.Sprintf("%s, %s", b.LabAddress, b.LabCity),
			"labPhone":        labPhone,
			"amount":          b.TotalAmount,
			"paymentStatus":   b.PaymentStatus,
			"instructions": []string{
				"Please arrive 15 minutes before your scheduled time",
				"Bring a valid photo ID proof (Aadhar, Driving License, etc.)",
				"Carry any previous medical reports",
				"Fast for 8-10 hours if required for your test",
				"Bring doctor's prescription if applicable",
			},
		},
	}
}
