package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-plot-style/internal/logger"
	"github.com/MKhiriev/go-plot-style/internal/utils"
)

func newBufferedHandler(buf *bytes.Buffer) *Handler {
	h := NewHandler(nil, logger.Nop())
	h.logger = &logger.Logger{Logger: zerolog.New(buf)}
	return h
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "reused from request", incoming: "my-trace"},
		{name: "generated", incoming: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newBufferedHandler(&buf)

			var ctxTraceID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxTraceID, _ = utils.GetTraceIDFromContext(r.Context())
				logger.FromRequest(r).Info().Msg("inside")
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, got)
			} else {
				parsed, err := uuid.Parse(got)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), parsed.Version())
			}
			assert.Equal(t, got, ctxTraceID)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, got, entry["trace_id"])
		})
	}
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantLevel string
	}{
		{name: "ok", status: http.StatusOK, body: "hello", wantLevel: "info"},
		{name: "client error", status: http.StatusNotFound, body: "", wantLevel: "info"},
		{name: "server error", status: http.StatusBadGateway, body: "x", wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newBufferedHandler(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			req := httptest.NewRequest(http.MethodPut, "/api/styles/paper", nil)
			req = req.WithContext(h.logger.WithContext(req.Context()))

			h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "/api/styles/paper", entry["uri"])
			assert.Equal(t, http.MethodPut, entry["method"])
			assert.EqualValues(t, tt.status, entry["status"])
			assert.EqualValues(t, len(tt.body), entry["size"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestResponseWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	n, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	w.WriteHeader(http.StatusTeapot)
	w.Write([]byte("de"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 5, w.size)
	assert.Same(t, rr, w.Unwrap())
}

func TestWithGZip(t *testing.T) {
	payload := strings.Repeat("legend.frameon: False\n", 50)

	tests := []struct {
		name         string
		accept       string
		status       int
		body         string
		wantEncoding string
	}{
		{name: "compressed", accept: "gzip, deflate", status: http.StatusOK, body: payload, wantEncoding: "gzip"},
		{name: "client without gzip", accept: "", status: http.StatusOK, body: payload, wantEncoding: ""},
		{name: "no content", accept: "gzip", status: http.StatusNoContent, body: "", wantEncoding: ""},
		{name: "not modified", accept: "gzip", status: http.StatusNotModified, body: "", wantEncoding: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.accept != "" {
				req.Header.Set("Accept-Encoding", tt.accept)
			}
			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.wantEncoding, rr.Header().Get("Content-Encoding"))

			body := rr.Body.Bytes()
			if tt.wantEncoding == "gzip" {
				assert.Less(t, len(body), len(payload))
				zr, err := gzip.NewReader(bytes.NewReader(body))
				require.NoError(t, err)
				body, err = io.ReadAll(zr)
				require.NoError(t, err)
			}
			assert.Equal(t, tt.body, string(body))
		})
	}
}

func TestWithGZip_EmptyOKBodyIsValidStream(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestWithGZip_RequestBody(t *testing.T) {
	var received string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		r.Body.Close()
		received = string(b)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	})

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Write([]byte("font.size: 9\n"))
	zw.Close()

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	withGZip(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "font.size: 9\n", received)
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closed := false
	rc := &wrappedReadCloser{Reader: strings.NewReader(""), OnClose: func() { closed = true }}
	require.NoError(t, rc.Close())
	assert.True(t, closed)

	require.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("")}).Close())
}

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	ok := func(w http.ResponseWriter, r *http.Request) {}
	router.Get("/items", ok)
	router.Post("/items", ok)
	router.Route("/items/{id}", func(r chi.Router) {
		r.Get("/", ok)
		r.Delete("/", ok)
		r.Route("/tags", func(r chi.Router) {
			r.Put("/{tag}", ok)
		})
	})
	router.Patch("/rev/{n:[0-9]+}", ok)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{http.MethodGet, "/items", http.StatusOK, ""},
		{http.MethodPut, "/items", http.StatusMethodNotAllowed, "GET, POST"},
		{http.MethodPatch, "/items/7", http.StatusMethodNotAllowed, "GET, DELETE"},
		{http.MethodDelete, "/items/7", http.StatusOK, ""},
		{http.MethodPost, "/items/7/", http.StatusMethodNotAllowed, "GET, DELETE"},
		{http.MethodGet, "/items/7/tags/red", http.StatusMethodNotAllowed, "PUT"},
		{http.MethodGet, "/rev/12", http.StatusMethodNotAllowed, "PATCH"},
		{http.MethodGet, "/rev/abc", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Allow"))
		})
	}
}

func TestResponseFormat(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		accept  string
		want    string
		wantErr bool
	}{
		{name: "fallback", target: "/", want: formatRC},
		{name: "query wins", target: "/?format=YAML", accept: "application/json", want: formatYAML},
		{name: "accept json", target: "/", accept: "text/html, application/json;q=0.9", want: formatJSON},
		{name: "accept plain", target: "/", accept: "text/plain", want: formatRC},
		{name: "unknown query", target: "/?format=xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			got, err := responseFormat(req, formatRC)
			if tt.wantErr {
				assert.ErrorIs(t, err, errUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
