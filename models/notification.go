package models

// EmailPayload is the structured payload accepted by the internal email
// delivery API.
type EmailPayload struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject"`
	Template string         `json:"template"`
	Data     map[string]any `json:"data"`
}

// EmailResult is the delivery API's response envelope.
type EmailResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
