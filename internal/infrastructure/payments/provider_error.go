package payments

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ProviderError is the structured error body Mercado Pago returns on failed
// calls. All fields are optional on the wire; zero values mean "absent".
type ProviderError struct {
	Message   string               `json:"message,omitempty"`
	ErrorName string               `json:"error,omitempty"`
	Status    int                  `json:"status,omitempty"`
	Cause     []ProviderErrorCause `json:"cause,omitempty"`
}

type ProviderErrorCause struct {
	Code        json.Number `json:"code,omitempty"`
	Description string      `json:"description,omitempty"`
}

func (e *ProviderError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("mercado pago api error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("mercado pago api error: %s", e.Message)
}

// ComposedMessage joins the provider message with the first cause description,
// falling back to a generic hint when the provider sent no text.
func (e *ProviderError) ComposedMessage() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = "Check the provided payment data"
	}
	for _, c := range e.Cause {
		if d := strings.TrimSpace(c.Description); d != "" {
			return msg + ": " + d
		}
	}
	return msg
}

// AsProviderError reports whether err carries a structured provider error
// body, either as a typed value or embedded as JSON in the error text (the
// SDK surfaces non-2xx bodies through the error message).
func AsProviderError(err error) (*ProviderError, bool) {
	if err == nil {
		return nil, false
	}

	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}

	msg := err.Error()
	start := strings.Index(msg, "{")
	end := strings.LastIndex(msg, "}")
	if start < 0 || end <= start {
		return nil, false
	}

	var parsed ProviderError
	if jsonErr := json.Unmarshal([]byte(msg[start:end+1]), &parsed); jsonErr != nil {
		return nil, false
	}
	if parsed.Message == "" && parsed.ErrorName == "" && parsed.Status == 0 && len(parsed.Cause) == 0 {
		return nil, false
	}
	return &parsed, true
}

// IsNotFound reports whether err signals that the provider does not know the
// requested payment, via explicit 404 status/name or message text.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if pe, ok := AsProviderError(err); ok {
		if pe.Status == 404 || pe.ErrorName == "not_found" {
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "not found")
}
