package httputil

import (
	"encoding/json"
	"net/http"
)

// successEnvelope is the stable success shape: {status, results?, data}.
// Data is always present, including explicit null on deletes.
type successEnvelope struct {
	Status  string `json:"status"`
	Results *int   `json:"results,omitempty"`
	Data    any    `json:"data"`
}

// errorEnvelope is the stable error shape: {status, message}. Status is
// "fail" for client errors and "error" for server-side failures.
type errorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RespondSuccess writes a success envelope with the given status code.
// It marshals first, preventing partial responses if encoding fails
// after headers are sent.
func RespondSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, successEnvelope{Status: "success", Data: data})
}

// RespondList writes a success envelope carrying a results count.
func RespondList(w http.ResponseWriter, status int, results int, data any) {
	writeJSON(w, status, successEnvelope{Status: "success", Results: &results, Data: data})
}

// RespondFail writes a "fail" envelope for client errors (4xx).
func RespondFail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorEnvelope{Status: "fail", Message: message})
}

// RespondError writes an "error" envelope for server errors (5xx).
func RespondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorEnvelope{Status: "error", Message: message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		// Fallback to plain text if JSON encoding fails
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
