package http

import (
	"errors"
	"mime"
	"net/http"
	"strings"
)

const (
	formatRC   = "rc"
	formatJSON = "json"
	formatYAML = "yaml"
)

var errUnsupportedFormat = errors.New("unsupported response format")

// responseFormat picks the representation from ?format=, falling back to the
// Accept header and then to fallback.
func responseFormat(r *http.Request, fallback string) (string, error) {
	if f := strings.ToLower(r.URL.Query().Get("format")); f != "" {
		switch f {
		case formatRC, formatJSON, formatYAML:
			return f, nil
		}
		return "", errUnsupportedFormat
	}

	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		switch mediaType {
		case "application/json":
			return formatJSON, nil
		case "application/yaml", "application/x-yaml", "text/yaml":
			return formatYAML, nil
		case "text/plain":
			return formatRC, nil
		}
	}
	return fallback, nil
}
