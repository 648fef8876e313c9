package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-plot-style/models"
)

var (
	ErrBadStyle            = errors.New("style rejected by server")
	ErrUnauthorized        = errors.New("write not authorized by server")
	ErrNotFound            = errors.New("not found on server")
	ErrConflict            = errors.New("conflict on server")
	ErrUnprocessable       = errors.New("style cannot be applied")
	ErrUnavailable         = errors.New("server style library unavailable")
	ErrInternalServerError = errors.New("internal server error")
)

// mapHTTPError turns a non-2xx response into an error wrapping one of the
// sentinels above. The server's JSON error message and parse line are kept.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := strings.TrimSpace(string(resp.Body()))
	var errResp models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err == nil && errResp.Error != "" {
		msg = errResp.Error
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		if errResp.Line > 0 {
			return &LineError{Line: errResp.Line, Err: fmt.Errorf("%w: %s", ErrBadStyle, msg)}
		}
		return fmt.Errorf("%w: %s", ErrBadStyle, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrUnprocessable, msg)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrUnavailable, msg)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, msg)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
	}
}

// LineError is a server-side parse failure at Line of the pushed document.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return e.Err.Error()
}

func (e *LineError) Unwrap() error {
	return e.Err
}
