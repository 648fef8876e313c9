package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-plot-style/internal/config"
	"github.com/MKhiriev/go-plot-style/internal/logger"
	"github.com/MKhiriev/go-plot-style/internal/utils"
	"github.com/MKhiriev/go-plot-style/models"
)

const (
	traceIDHeader = "X-Trace-ID"

	writeTokenSubject = "stylectl"
	writeTokenTTL     = time.Minute
)

type httpStyleServer struct {
	client  *utils.HTTPClient
	authKey string

	logger *logger.Logger
}

// NewHTTPStyleServer constructs the REST implementation of [StyleServer].
// A scheme-less cfg.HTTPAddress is read as http.
func NewHTTPStyleServer(cfg config.Adapter, logger *logger.Logger) (StyleServer, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpStyleServer{
		client:  utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		authKey: cfg.AuthKey,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request starts a request carrying the trace ID from ctx, if any.
func (h *httpStyleServer) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

// writeRequest is [httpStyleServer.request] plus a short-lived bearer token
// when an auth key is configured.
func (h *httpStyleServer) writeRequest(ctx context.Context) (*resty.Request, error) {
	req := h.request(ctx)
	if h.authKey == "" {
		return req, nil
	}
	token, err := utils.GenerateJWTToken(writeTokenSubject, writeTokenTTL, h.authKey)
	if err != nil {
		return nil, err
	}
	return req.SetAuthToken(token), nil
}

func (h *httpStyleServer) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.request(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}
	return version, nil
}

func (h *httpStyleServer) ListStyles(ctx context.Context) ([]models.StyleSummary, error) {
	var styles []models.StyleSummary

	resp, err := h.request(ctx).
		SetResult(&styles).
		Get("/api/styles")
	if err != nil {
		return nil, fmt.Errorf("list styles request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return styles, nil
}

func (h *httpStyleServer) FetchStyle(ctx context.Context, name string) (models.Style, error) {
	var stored models.Style

	resp, err := h.request(ctx).
		SetHeader("Accept", utils.ContentTypeJSON).
		SetPathParam("name", name).
		SetResult(&stored).
		Get("/api/styles/{name}")
	if err != nil {
		return models.Style{}, fmt.Errorf("fetch style request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Style{}, err
	}

	if stored.Checksum != "" && stored.Checksum != models.Checksum(stored.Body) {
		return models.Style{}, fmt.Errorf("style %q: checksum mismatch", name)
	}
	return stored, nil
}

func (h *httpStyleServer) PushStyle(ctx context.Context, name string, body []byte) (models.SaveStyleResponse, error) {
	var saved models.SaveStyleResponse

	req, err := h.writeRequest(ctx)
	if err != nil {
		return models.SaveStyleResponse{}, err
	}
	resp, err := req.
		SetHeader("Content-Type", utils.ContentTypeRC).
		SetPathParam("name", name).
		SetBody(body).
		SetResult(&saved).
		Put("/api/styles/{name}")
	if err != nil {
		return models.SaveStyleResponse{}, fmt.Errorf("push style request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SaveStyleResponse{}, err
	}

	h.logger.Debug().Str("name", name).Bool("created", saved.Created).Msg("style pushed")
	return saved, nil
}

func (h *httpStyleServer) DeleteStyle(ctx context.Context, name string) error {
	req, err := h.writeRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.
		SetPathParam("name", name).
		Delete("/api/styles/{name}")
	if err != nil {
		return fmt.Errorf("delete style request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpStyleServer) Validate(ctx context.Context, body []byte) (models.ValidationReport, error) {
	var report models.ValidationReport

	resp, err := h.request(ctx).
		SetHeader("Content-Type", utils.ContentTypeRC).
		SetBody(body).
		SetResult(&report).
		Post("/api/styles/validate")
	if err != nil {
		return models.ValidationReport{}, fmt.Errorf("validate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ValidationReport{}, err
	}
	return report, nil
}
