// Package common holds the JSON envelope shared by every /api endpoint.
package common

// ErrorCode is the machine-readable reason carried by a failed response.
type ErrorCode string

const (
	ErrCodeBadRequest      ErrorCode = "BAD_REQUEST"
	ErrCodeValidation      ErrorCode = "VALIDATION_ERROR"
	ErrCodeVerification    ErrorCode = "VERIFICATION_ERROR"
	ErrCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrCodeConflict        ErrorCode = "CONFLICT"
	ErrCodeTooManyRequests ErrorCode = "TOO_MANY_REQUESTS"
	ErrCodeDelivery        ErrorCode = "DELIVERY_FAILED"
	ErrCodeInternalServer  ErrorCode = "INTERNAL_SERVER_ERROR"
)

// APIResponse wraps data on success and an ErrorResponse otherwise.
type APIResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Details is a []ValidationError for validation failures and a plain
	// string for internal errors outside release mode.
	Details any `json:"details,omitempty"`
}

// ValidationError describes one rejected input field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

func NewSuccessResponse(data any) APIResponse {
	return APIResponse{Success: true, Data: data}
}

func NewErrorResponse(code ErrorCode, message string, details any) APIResponse {
	return APIResponse{
		Error: &ErrorResponse{Code: string(code), Message: message, Details: details},
	}
}
