package models

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	ErrorCode string      `json:"error_code,omitempty"`
	Details   interface{} `json:"details,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// NewErrorResponse shapes an error body. code and details may be empty.
func NewErrorResponse(message, code string, details interface{}) ErrorResponse {
	return ErrorResponse{
		Success:   false,
		Message:   message,
		ErrorCode: code,
		Details:   details,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	AuthToken string `json:"auth_token"`
	User      User   `json:"user"`
}

// MessageResponse is a generic success message body.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the health probe body.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ValidationDetails flattens a binding error into per-field messages so a
// client sees every violated constraint, not just the first.
func ValidationDetails(err error) interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"error": err.Error()}
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg := "failed " + fe.Tag() + " validation"
		if fe.Param() != "" {
			msg += " (" + fe.Param() + ")"
		}
		details[fe.Field()] = msg
	}
	return details
}
