package booking

import (
	"errors"
	"strings"
	"testing"

	"quickscan/models"
)

func validInput() models.BookingInput {
	return models.BookingInput{
		ServiceID:       "x-ray",
		LabID:           "unknown-lab",
		PatientName:     "A",
		PatientEmail:    "a@b.com",
		PatientPhone:    "9999999999",
		AppointmentDate: "2025-01-01",
		TimeSlot:        "10:00",
	}
}

func TestCreateBookingMissingFields(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	input := models.BookingInput{
		PatientName:     "A",
		AppointmentDate: "2025-01-01",
	}

	_, err := svc.CreateBooking("user-1", input)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	want := []string{"serviceId", "patientEmail", "patientPhone", "timeSlot", "labId"}
	if len(verr.Fields) != len(want) {
		t.Fatalf("missing fields = %v, want %v", verr.Fields, want)
	}
	for i, f := range want {
		if verr.Fields[i] != f {
			t.Fatalf("missing fields = %v, want %v", verr.Fields, want)
		}
	}
}

func TestCreateBookingUnknownServiceAndLab(t *testing.T) {
	svc, repo, _, _, dispatcher := newTestService()

	receipt, err := svc.CreateBooking("user-1", validInput())
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if !strings.HasPrefix(receipt.BookingID, "QS") {
		t.Errorf("bookingId %q should carry the QS prefix", receipt.BookingID)
	}
	if receipt.PaymentRequired || receipt.PaymentLink != "" {
		t.Errorf("cash booking should not require payment: %+v", receipt)
	}

	stored, _ := repo.GetByBookingID(receipt.BookingID)
	if stored == nil {
		t.Fatal("booking was not persisted")
	}
	if stored.BaseAmount != 500 || stored.HomeServiceCharge != 0 ||
		stored.TaxAmount != 90 || stored.TotalAmount != 590 {
		t.Errorf("unexpected amounts: base=%v home=%v tax=%v total=%v",
			stored.BaseAmount, stored.HomeServiceCharge, stored.TaxAmount, stored.TotalAmount)
	}
	if stored.Status != models.BookingStatusPending || stored.PaymentStatus != models.PaymentStatusPending {
		t.Errorf("new booking should be pending/pending, got %s/%s", stored.Status, stored.PaymentStatus)
	}
	if stored.ServiceName != "X Ray" {
		t.Errorf("serviceName = %q, want placeholder name", stored.ServiceName)
	}
	if stored.LabName != placeholderLabName {
		t.Errorf("labName = %q, want placeholder lab", stored.LabName)
	}
	if stored.LabPhone != placeholderLabPhone {
		t.Errorf("labPhone = %q, want %q", stored.LabPhone, placeholderLabPhone)
	}

	if len(dispatcher.dispatched) != 1 || dispatcher.dispatched[0] != receipt.BookingID {
		t.Errorf("expected one confirmation dispatch, got %v", dispatcher.dispatched)
	}
}

func TestCreateBookingOnlinePaymentLink(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	input := validInput()
	input.PaymentMethod = models.PaymentMethodOnline

	receipt, err := svc.CreateBooking("user-1", input)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if !receipt.PaymentRequired {
		t.Error("online booking should require payment")
	}
	want := "/api/payment/create?bookingId=" + receipt.BookingID
	if receipt.PaymentLink != want {
		t.Errorf("paymentLink = %q, want %q", receipt.PaymentLink, want)
	}
}

func TestCreateBookingDispatchFailureIgnored(t *testing.T) {
	svc, repo, _, _, dispatcher := newTestService()
	dispatcher.err = errors.New("email API down")

	receipt, err := svc.CreateBooking("user-1", validInput())
	if err != nil {
		t.Fatalf("dispatch failure must not fail the booking: %v", err)
	}
	if stored, _ := repo.GetByBookingID(receipt.BookingID); stored == nil {
		t.Fatal("booking was not persisted")
	}
}

func TestCreateBookingPersistenceFailure(t *testing.T) {
	svc, repo, _, _, dispatcher := newTestService()
	repo.createErr = errors.New("write failed")

	if _, err := svc.CreateBooking("user-1", validInput()); err == nil {
		t.Fatal("expected error when persistence fails")
	}
	if len(dispatcher.dispatched) != 0 {
		t.Error("no confirmation should be dispatched when persistence fails")
	}
}

func TestCreateBookingServiceTypeFallback(t *testing.T) {
	svc, repo, svcRepo, _, _ := newTestService()
	svcRepo.bySlug["x-ray"] = &models.Service{Name: "X-Ray", Slug: "x-ray", Price: 500}

	receipt, err := svc.CreateBooking("user-1", validInput())
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	stored, _ := repo.GetByBookingID(receipt.BookingID)
	if stored.ServiceType != "mri" {
		t.Errorf("serviceType = %q, want default when the catalog record has no category", stored.ServiceType)
	}
}

func TestCreateBookingMalformedDate(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	input := validInput()
	input.AppointmentDate = "tomorrow"

	_, err := svc.CreateBooking("user-1", input)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for malformed date, got %v", err)
	}
}
