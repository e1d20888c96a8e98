package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quickscan/models"
	"quickscan/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type fakeBookingService struct {
	createReceipt *models.BookingReceipt
	createErr     error
	bookings      map[string]*models.Booking
}

func (f *fakeBookingService) CreateBooking(userID string, input models.BookingInput) (*models.BookingReceipt, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createReceipt, nil
}

func (f *fakeBookingService) GetBooking(bookingID string) (*models.Booking, error) {
	if b, ok := f.bookings[bookingID]; ok {
		return b, nil
	}
	return nil, booking.ErrBookingNotFound
}

func (f *fakeBookingService) ListUserBookings(userID string, limit int64) ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingService) CancelBooking(bookingID string) (*models.Booking, error) {
	if b, ok := f.bookings[bookingID]; ok && b.Status == models.BookingStatusPending {
		b.Status = models.BookingStatusCancelled
		return b, nil
	}
	return nil, booking.ErrBookingNotCancellable
}

func newTestRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, zap.NewNop())

	r := gin.New()
	authed := func(c *gin.Context) { c.Set("userID", "user-1") }
	r.POST("/api/bookings", authed, h.CreateBooking)
	r.GET("/api/bookings", authed, h.ListBookings)
	r.GET("/api/bookings/:bookingId", authed, h.GetBooking)
	r.DELETE("/api/bookings/:bookingId", authed, h.CancelBooking)
	return r
}

func TestCreateBookingHandlerValidationError(t *testing.T) {
	svc := &fakeBookingService{
		createErr: &booking.ValidationError{Fields: []string{"serviceId", "labId"}},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["success"] != false {
		t.Error("success should be false")
	}
	if body["message"] != "Missing required fields: serviceId, labId" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestCreateBookingHandlerSuccess(t *testing.T) {
	svc := &fakeBookingService{
		createReceipt: &models.BookingReceipt{
			BookingID:       "QS1735689600000123",
			TotalAmount:     590,
			PaymentRequired: false,
		},
	}
	r := newTestRouter(svc)

	payload := `{"serviceId":"x-ray","patientName":"A","patientEmail":"a@b.com",` +
		`"patientPhone":"9999999999","appointmentDate":"2025-01-01","timeSlot":"10:00","labId":"l1"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}

	var body struct {
		Success   bool                  `json:"success"`
		BookingID string                `json:"bookingId"`
		Message   string                `json:"message"`
		Data      models.BookingReceipt `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !body.Success || body.BookingID != "QS1735689600000123" {
		t.Fatalf("unexpected body %+v", body)
	}
	if body.Data.TotalAmount != 590 {
		t.Errorf("totalAmount = %v, want 590", body.Data.TotalAmount)
	}
}

func TestCancelBookingHandler(t *testing.T) {
	svc := &fakeBookingService{
		bookings: map[string]*models.Booking{
			"QS1": {BookingID: "QS1", UserID: "user-1", Status: models.BookingStatusPending},
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/bookings/QS1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	// Cancelling again reports not-found, same as an unknown id.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/bookings/QS1", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("second cancel status = %d, want 404", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/bookings/QS-missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown id status = %d, want 404", w.Code)
	}
}

func TestGetBookingHandlerNotFound(t *testing.T) {
	svc := &fakeBookingService{bookings: map[string]*models.Booking{}}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/QS-missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestListBookingsHandler(t *testing.T) {
	svc := &fakeBookingService{
		bookings: map[string]*models.Booking{
			"QS1": {BookingID: "QS1", UserID: "user-1"},
			"QS2": {BookingID: "QS2", UserID: "someone-else"},
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings?limit=5", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Success bool             `json:"success"`
		Data    []models.Booking `json:"data"`
		Count   int              `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body.Count != 1 || len(body.Data) != 1 {
		t.Fatalf("expected only the caller's bookings, got %+v", body)
	}
}
