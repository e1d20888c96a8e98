package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"quickscan/models"
)

// Mailer delivers email payloads over the internal email API.
type Mailer struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewMailer(baseURL string) *Mailer {
	return &Mailer{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Send posts the payload to the email API and checks its response envelope.
func (m *Mailer) Send(ctx context.Context, payload models.EmailPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.BaseURL+"/api/email/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("email API call failed: %w", err)
	}
	defer resp.Body.Close()

	var result models.EmailResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode email API response: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("email API returned error: %s", result.Message)
	}
	return nil
}
