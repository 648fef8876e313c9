package http

import (
	"github.com/MKhiriev/go-plot-style/internal/logger"
	"github.com/MKhiriev/go-plot-style/internal/service"
	"github.com/MKhiriev/go-plot-style/internal/utils"
	"github.com/MKhiriev/go-plot-style/internal/validators"
)

// maxStyleBodySize caps style documents accepted over HTTP.
const maxStyleBodySize = validators.MaxStyleBodySize

type Handler struct {
	services *service.Services
	traceIDs *utils.UUIDGenerator
	authKey  string

	logger *logger.Logger
}

// Option customizes a [Handler].
type Option func(*Handler)

// WithAuthKey requires tokens signed with key on PUT and DELETE of stored
// styles. An empty key leaves them open.
func WithAuthKey(key string) Option {
	return func(h *Handler) {
		h.authKey = key
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.authKey == "" {
		logger.Warn().Msg("style library writes are not authenticated")
	}
	logger.Info().Msg("http handler created")
	return h
}
