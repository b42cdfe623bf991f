package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 15 * time.Second

// Handler maps all routes and returns the root handler. It must be called at most once.
func (srv *HTTPServer) Handler() (http.Handler, error) {
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}
	return srv.gin, nil
}

// Run serves until ctx is done or SIGINT/SIGTERM arrives, then drains connections
// for up to shutdownTimeout. A listen failure is returned to the caller.
func (srv *HTTPServer) Run(ctx context.Context) error {
	handler, err := srv.Handler()
	if err != nil {
		srv.l.Errorf(ctx, "httpserver.Run: Failed to map handlers: %v", err)
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler:      handler,
		ReadTimeout:  srv.readTimeout,
		WriteTimeout: srv.writeTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "Started report API on %s", server.Addr)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", server.Addr, err)
	case <-ctx.Done():
		srv.l.Infof(context.Background(), "Shutdown requested, draining connections")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(shutdownCtx, "httpserver.Run: Server shutdown error: %v", err)
		return err
	}

	srv.l.Info(shutdownCtx, "Report API stopped.")
	return nil
}
