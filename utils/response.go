package utils

import (
	"encoding/json"
	"net/http"
)

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, map[string]any{"status": "error", "message": msg})
}

// RespondWithData wraps a success payload in the single envelope used
// across every resource.
func RespondWithData(w http.ResponseWriter, code int, data interface{}) {
	RespondWithJSON(w, code, map[string]any{"status": "success", "data": data})
}

func RespondWithMessage(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, map[string]any{"status": "success", "message": msg})
}

type M map[string]interface{}
