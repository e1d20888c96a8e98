package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"quickscan/models"
)

func TestMailerSend(t *testing.T) {
	var received models.EmailPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/email/send" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode: %v", err)
		}
		json.NewEncoder(w).Encode(models.EmailResult{Success: true, Message: "sent"})
	}))
	defer srv.Close()

	m := NewMailer(srv.URL)
	payload := models.EmailPayload{To: "a@b.com", Subject: "s", Template: "booking-confirmation"}
	if err := m.Send(context.Background(), payload); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if received.To != "a@b.com" {
		t.Fatalf("server received %+v", received)
	}
}

func TestMailerSendAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.EmailResult{Success: false, Message: "template unknown"})
	}))
	defer srv.Close()

	m := NewMailer(srv.URL)
	if err := m.Send(context.Background(), models.EmailPayload{To: "a@b.com"}); err == nil {
		t.Fatal("expected error when the API reports failure")
	}
}

func TestMailerSendUnreachable(t *testing.T) {
	m := NewMailer("http://127.0.0.1:1")
	if err := m.Send(context.Background(), models.EmailPayload{To: "a@b.com"}); err == nil {
		t.Fatal("expected error when the API is unreachable")
	}
}
