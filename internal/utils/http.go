package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// If marshaling fails nothing but a 500 is written and a wrapped error is
// returned, so a handler never sends a half-encoded body.
//
// Example usage:
//
//	WriteJSON(w, models.MessageResponse{Message: "Token removed"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteText writes a plain-text body with statusCode.
func WriteText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentTypeText)
	w.WriteHeader(statusCode)

	return w.Write([]byte(text))
}
