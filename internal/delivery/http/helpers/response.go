package helpers

import (
	"encoding/json"
	"net/http"
)

// InternalErrorMessage is the generic message returned for any store failure.
// Storage details are deliberately not leaked to clients.
const InternalErrorMessage = "Internal server error"

// ErrorResponse is the error body used by the public endpoints.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// AdminMessageResponse is the {success, message} envelope used by the admin
// endpoints for both failures and message-only successes.
// swagger:model AdminMessageResponse
type AdminMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a public-surface error body: {"error": message}.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}

// WriteAdminError writes an admin-surface error body:
// {"success": false, "message": message}.
func WriteAdminError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, AdminMessageResponse{Success: false, Message: message})
}
