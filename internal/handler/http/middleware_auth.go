package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-plot-style/internal/logger"
	"github.com/MKhiriev/go-plot-style/internal/utils"
	"github.com/MKhiriev/go-plot-style/models"
)

var (
	errEmptyAuthorizationHeader = errors.New("empty authorization header")
	errInvalidToken             = errors.New("invalid or expired token")
)

// requireWriteToken guards routes that change the style library. The
// request must carry "Authorization: Bearer <token>" signed with the
// server's auth key. With no key configured every request passes.
func (h *Handler) requireWriteToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.authKey == "" {
			next.ServeHTTP(w, r)
			return
		}
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(errEmptyAuthorizationHeader).Msg("write rejected")
			unauthorized(w, errEmptyAuthorizationHeader)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Msg("write rejected")
			unauthorized(w, err)
			return
		}

		subject, err := utils.ValidateJWTToken(token, h.authKey)
		if err != nil {
			log.Err(err).Msg("write rejected")
			unauthorized(w, errInvalidToken)
			return
		}

		log.Debug().Str("subject", subject).Msg("write token accepted")
		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="styles"`)
	utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusUnauthorized)
}
