package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope statuses. "fail" is an expected client-side condition, "error" an
// unexpected server-side one.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// JSONSuccess writes a success envelope. message and data are optional.
func JSONSuccess(w http.ResponseWriter, statusCode int, message string, data any) {
	writeJSON(w, statusCode, Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// JSONFail writes a fail envelope for bad input or missing resources.
func JSONFail(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, Envelope{
		Status:  StatusFail,
		Message: message,
	})
}

// JSONError writes an error envelope for unexpected server-side failures.
func JSONError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, Envelope{
		Status:  StatusError,
		Message: message,
	})
}

// NotFound and MethodNotAllowed replace the router's plain-text defaults.
func NotFound(w http.ResponseWriter, r *http.Request) {
	JSONFail(w, http.StatusNotFound, "resource not found")
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	JSONFail(w, http.StatusMethodNotAllowed, "method not allowed")
}
