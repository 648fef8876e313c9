package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gopkg.in/yaml.v3"
)

// Content types written by the helpers below.
const (
	ContentTypeJSON = "application/json"
	ContentTypeYAML = "application/yaml"
	ContentTypeRC   = "text/plain; charset=utf-8"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	return write(w, ContentTypeJSON, jsonData, statusCode)
}

// WriteYAML is like [WriteJSON] but encodes data with yaml.v3.
func WriteYAML(w http.ResponseWriter, data any, statusCode int) (n int, err error) {
	// yaml.v3 panics on values it cannot encode, such as channels.
	defer func() {
		if r := recover(); r != nil {
			http.Error(w, "error writing data to YAML", http.StatusInternalServerError)
			n, err = 0, fmt.Errorf("error writing data to YAML: %v", r)
		}
	}()

	yamlData, err := yaml.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to YAML", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to YAML: %w", err)
	}

	return write(w, ContentTypeYAML, yamlData, statusCode)
}

// WriteRC writes rc text as plain text.
func WriteRC(w http.ResponseWriter, body []byte, statusCode int) (int, error) {
	return write(w, ContentTypeRC, body, statusCode)
}

func write(w http.ResponseWriter, contentType string, body []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	return w.Write(body)
}
