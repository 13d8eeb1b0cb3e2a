package dto

// Symbolic error codes carried in every response envelope.
const (
	CodeSuccess        = "SUCCESS"
	CodeValidation     = "VALIDATION_ERROR"
	CodeAuthentication = "AUTHENTICATION_ERROR"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeNotFound       = "NOT_FOUND"
	CodeServerError    = "SERVER_ERROR"
)

// SuccessResponse is the envelope for the 2xx family. Token is only set by
// flows that mint a bearer token (register, login, user create).
type SuccessResponse struct {
	ErrorCode string      `json:"errorCode"`
	Token     string      `json:"token,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Message   string      `json:"message,omitempty"`
}

type ErrorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
