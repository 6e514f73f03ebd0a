package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// NewServer оборачивает обработчик в span OpenTelemetry и создаёт http.Server.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           otelhttp.NewHandler(handler, "visual-verify"),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Serve слушает server.Addr до SIGINT/SIGTERM, затем дожидается текущих запросов.
func Serve(server *http.Server, shutdownTimeout time.Duration, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return err
	}
	return run(ctx, server, listener, shutdownTimeout, logger)
}

// run обслуживает listener, пока не отменён ctx.
// Незавершённые запросы получают shutdownTimeout на то, чтобы закончиться.
func run(ctx context.Context, server *http.Server, listener net.Listener, shutdownTimeout time.Duration, logger *zap.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		err := server.Serve(listener)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serveErr <- err
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down http server", zap.Duration("timeout", shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-serveErr
}
