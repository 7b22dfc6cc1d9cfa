package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	hhttp "journal-storefront/internal/handler/http"
	"journal-storefront/internal/handler/http/journal"
	"journal-storefront/internal/handler/http/middleware"
	"journal-storefront/internal/handler/http/requestid"
	"journal-storefront/internal/observability/tracing"
	pkgconfig "journal-storefront/pkg/config"
	"journal-storefront/pkg/security/csp"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	// maxRequestBody bounds request bodies; pages are GET-only.
	maxRequestBody  = 64 << 10
	shutdownTimeout = 10 * time.Second
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := root.logger

			a, err := newApp(logger, root.configPath)
			if err != nil {
				logger.Error("failed to initialize", slog.Any("error", err))
				return err
			}

			shutdownTracing := tracing.Init()
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := shutdownTracing(ctx); err != nil {
					logger.Warn("tracer shutdown failed", slog.Any("error", err))
				}
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			version := pkgconfig.GetEnvString("VERSION", "dev")
			handler := buildHandler(logger, a, pkgconfig.LoadCSPConfig(), version)
			return runServer(ctx, logger, addr, handler, version)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", pkgconfig.GetEnvString("ADDR", ":8080"), "listen address (env ADDR)")
	return cmd
}

// buildHandler registers the routes and wraps them with the middleware chain.
//
// Middleware order (outermost first):
//  1. Request ID (generates unique ID for request tracking)
//  2. Tracing (server span, X-Trace-Id)
//  3. Logging (access log, request-scoped logger)
//  4. Recovery (catch panics)
//  5. Metrics (record request metrics)
//  6. CSP (set security headers)
//  7. Body Size Limit
func buildHandler(logger *slog.Logger, a *app, cspCfg *pkgconfig.CSPConfig, version string) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /health", &hhttp.HealthHandler{
		Storefront:    a.client,
		Version:       version,
		CSPEnabled:    cspCfg.Enabled,
		CSPReportOnly: cspCfg.ReportOnly,
	})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Storefront: a.client})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	journal.Register(mux, journal.GetHandler{Pages: a.renderer, Locales: a.locales})

	imageHosts := append(append([]string(nil), cspCfg.ImageSources...), a.shop.ImageHosts...)
	cspMW := middleware.NewCSPMiddleware(middleware.CSPMiddlewareConfig{
		Enabled:       cspCfg.Enabled,
		DefaultPolicy: csp.StrictPolicy(),
		PathPolicies: map[string]*csp.CSPBuilder{
			"/journal/": csp.StorefrontPolicy(imageHosts, cspCfg.StyleSources, cspCfg.FontSources),
		},
		ReportOnly: cspCfg.ReportOnly,
	})
	if cspCfg.Enabled {
		logger.Info("CSP enabled", slog.Bool("report_only", cspCfg.ReportOnly))
	} else {
		logger.Warn("CSP is disabled")
	}

	return hhttp.Chain(mux,
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.Recover(logger),
		hhttp.MetricsMiddleware,
		cspMW.Middleware(),
		hhttp.LimitRequestBody(maxRequestBody),
	)
}

// runServer serves until ctx is canceled, then shuts down gracefully.
func runServer(ctx context.Context, logger *slog.Logger, addr string, handler http.Handler, version string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return serve(ctx, logger, ln, handler, version)
}

func serve(ctx context.Context, logger *slog.Logger, ln net.Listener, handler http.Handler, version string) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", ln.Addr().String()),
			slog.String("version", version))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}
