package modules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"estate_price/pkg/logx"
)

const defaultReadHeaderTimeout = 5 * time.Second

// HTTPServer serves Handler on ListenAddress until the context ends, then
// drains in-flight requests for at most ShutdownTimeout.
type HTTPServer struct {
	ListenAddress     string
	Handler           http.Handler
	ShutdownTimeout   time.Duration
	ReadHeaderTimeout time.Duration
}

func (h HTTPServer) Run(ctx context.Context, g *errgroup.Group) {
	readHeaderTimeout := h.ReadHeaderTimeout
	if readHeaderTimeout == 0 {
		readHeaderTimeout = defaultReadHeaderTimeout
	}

	srv := &http.Server{ //nolint:exhaustruct
		Addr:              h.ListenAddress,
		Handler:           h.Handler,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger(ctx).Error("server.Shutdown", logx.Error(err))
		}

		return nil
	})

	g.Go(func() error {
		logger(ctx).Info("http server started", slog.String(logx.FieldListenAddress, h.ListenAddress))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("httpServer.ListenAndServe: %w", err)
		}

		logger(ctx).Info("http server stopped", slog.String(logx.FieldListenAddress, h.ListenAddress))

		return nil
	})
}
