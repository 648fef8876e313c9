package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-plot-style/internal/config"
	"github.com/MKhiriev/go-plot-style/internal/handler"
	myHTTP "github.com/MKhiriev/go-plot-style/internal/handler/http"
	"github.com/MKhiriev/go-plot-style/internal/logger"
	"github.com/MKhiriev/go-plot-style/internal/workers"
)

// preListened makes httpServer use ln instead of opening its own socket.
func preListened(h *httpServer, ln net.Listener) {
	h.listen = func(string, string) (net.Listener, error) { return ln, nil }
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)

	s, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_NoAddress(t *testing.T) {
	handlers := &handler.Handlers{HTTP: myHTTP.NewHandler(nil, logger.Nop())}

	s, err := NewServer(handlers, config.Server{}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_GRPCOnlyWhenConfigured(t *testing.T) {
	handlers := &handler.Handlers{HTTP: myHTTP.NewHandler(nil, logger.Nop())}

	s, err := NewServer(handlers, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, s.(*server).grpcServer)

	s, err = NewServer(handlers, config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, s.(*server).grpcServer)
	assert.Equal(t, ":9090", s.(*server).grpcServer.address)
}

func TestHTTPServer_ServesUntilCancelled(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})
	h := newHTTPServer(mux, config.Server{HTTPAddress: ln.Addr().String(), RequestTimeout: time.Second}, logger.Nop())
	preListened(h, ln)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Run(ctx) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/ping")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestHTTPServer_ListenError(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "bad"}, logger.Nop())
	h.listen = func(string, string) (net.Listener, error) { return nil, errors.New("address in use") }

	err := h.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address in use")
}

func TestServer_RunServer_StopsWithBackgroundFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ln.Addr().String()}, logger.Nop())
	preListened(h, ln)

	boom := errors.New("watcher failed")
	s := &server{
		httpServer: h,
		background: []workers.Worker{workers.Func(func(context.Context) error { return boom })},
		logger:     logger.Nop(),
	}

	done := make(chan error, 1)
	go func() { done <- s.RunServer(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not return")
	}
}

func TestServer_RunServer_ContextCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ln.Addr().String()}, logger.Nop())
	preListened(h, ln)
	s := &server{httpServer: h, logger: logger.Nop()}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	assert.NoError(t, s.RunServer(ctx))
}

func TestGRPCServer_ReportsHealth(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	g := newGRPCServer(config.Server{GRPCAddress: ln.Addr().String()}, logger.Nop())
	g.listen = func(string, string) (net.Listener, error) { return ln, nil }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()

	conn, err := grpc.NewClient(ln.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()
	client := healthpb.NewHealthClient(conn)

	for _, service := range []string{"", healthService} {
		checkCtx, checkCancel := context.WithTimeout(context.Background(), 5*time.Second)
		resp, err := client.Check(checkCtx, &healthpb.HealthCheckRequest{Service: service}, grpc.WaitForReady(true))
		checkCancel()
		require.NoError(t, err, "service %q", service)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus(), "service %q", service)
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("gRPC server did not shut down")
	}
}

func TestGRPCServer_ListenError(t *testing.T) {
	g := newGRPCServer(config.Server{GRPCAddress: "bad"}, logger.Nop())
	g.listen = func(string, string) (net.Listener, error) { return nil, errors.New("address in use") }

	err := g.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address in use")
}
