package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-plot-style/internal/app"
	"github.com/MKhiriev/go-plot-style/internal/logger"
	"github.com/MKhiriev/go-plot-style/internal/rcparams"
	"github.com/MKhiriev/go-plot-style/internal/service"
	"github.com/MKhiriev/go-plot-style/internal/store"
	"github.com/MKhiriev/go-plot-style/internal/style"
	"github.com/MKhiriev/go-plot-style/internal/style/builtin"
	"github.com/MKhiriev/go-plot-style/internal/utils"
	"github.com/MKhiriev/go-plot-style/internal/validators"
	"github.com/MKhiriev/go-plot-style/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidStyleRef:         http.StatusBadRequest,
	service.ErrInvalidStyleName:        http.StatusBadRequest,
	service.ErrNoStylesGiven:           http.StatusBadRequest,
	service.ErrStyleLibraryUnavailable: http.StatusServiceUnavailable,
	service.ErrVersionIsNotSpecified:   http.StatusInternalServerError,
	builtin.ErrUnknownStyle:            http.StatusNotFound,
	errRefNotAllowed:                   http.StatusBadRequest,
	errUnsupportedFormat:               http.StatusNotAcceptable,
	errNoActiveStyle:                   http.StatusNotFound,

	style.ErrMissingSeparator: http.StatusBadRequest,
	style.ErrInvalidKey:       http.StatusBadRequest,
	style.ErrDuplicateKey:     http.StatusBadRequest,
	style.ErrInvalidEncoding:  http.StatusBadRequest,
	style.ErrLineTooLong:      http.StatusBadRequest,

	rcparams.ErrUnknownKey:     http.StatusUnprocessableEntity,
	rcparams.ErrOutOfRange:     http.StatusUnprocessableEntity,
	rcparams.ErrNotAllowed:     http.StatusUnprocessableEntity,
	rcparams.ErrInvalidCycler:  http.StatusUnprocessableEntity,
	rcparams.ErrInvalidColor:   http.StatusUnprocessableEntity,

	validators.ErrBodyTooLarge: http.StatusRequestEntityTooLarge,

	store.ErrStyleAlreadyExists: http.StatusConflict,
	store.ErrStyleNotFound:      http.StatusNotFound,
	store.ErrUnsupportedDriver:  http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}

	var coercionErr *rcparams.TypeCoercionError
	if errors.As(err, &coercionErr) {
		return http.StatusUnprocessableEntity
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge
	}

	return http.StatusInternalServerError
}

// writeError answers with an [models.ErrorResponse]. Server errors are logged
// and their details withheld; a parse error carries its line number.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	resp := models.ErrorResponse{Error: err.Error()}
	if status >= http.StatusInternalServerError {
		if msg == "" {
			msg = app.MsgInternalServerError
		}
		logger.FromRequest(r).Err(err).Msg(msg)
		resp.Error = http.StatusText(status)
	}

	var parseErr *style.ParseError
	if errors.As(err, &parseErr) {
		resp.Line = parseErr.Line
	}

	utils.WriteJSON(w, resp, status)
}
