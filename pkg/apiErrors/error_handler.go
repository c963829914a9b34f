package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Fixed messages shared by every route
const (
	MsgUnauthorized        = "Unauthorized"
	MsgInternalServerError = "Internal server error"
	MsgLoginFailed         = "Login failed"
	MsgCredentialsRequired = "Email and password are required"
	MsgLoggedOut           = "Logged out successfully"
)

// Error codes for locally produced failures
const (
	ErrInvalidRequest      = "VAL_001" // malformed request
	ErrMissingRequiredData = "VAL_002" // required data absent
	ErrInvalidFormat       = "VAL_003" // invalid data format

	ErrNotFound = "RES_001" // record not found

	ErrInternalServer    = "SRV_001" // internal error
	ErrDatabaseOperation = "SRV_002" // database failure
	ErrExternalService   = "SRV_003" // upstream failure
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrNotFound:            http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
}

// StatusBody is the error envelope of the analytics routes
type StatusBody struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// LoginStatusBody is the envelope of the auth routes, which use "status"
type LoginStatusBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// APIError is the envelope for locally produced errors that carry a code
type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// WriteJSON writes v as JSON with the given status
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteStatus writes {message, status_code}
func WriteStatus(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, StatusBody{Message: message, StatusCode: status})
}

// WriteUnauthorized writes the fixed missing-session body
func WriteUnauthorized(w http.ResponseWriter) {
	WriteStatus(w, http.StatusUnauthorized, MsgUnauthorized)
}

// WriteInternal writes the fixed 500 body
func WriteInternal(w http.ResponseWriter) {
	WriteStatus(w, http.StatusInternalServerError, MsgInternalServerError)
}

// WriteLoginStatus writes {message, status}
func WriteLoginStatus(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, LoginStatusBody{Message: message, Status: status})
}

// WriteError writes a coded error, mapping the code to its HTTP status
func WriteError(w http.ResponseWriter, code string, message string) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	WriteJSON(w, status, APIError{
		Code:       code,
		Message:    message,
		StatusCode: status,
	})
}
