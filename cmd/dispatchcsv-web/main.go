// Command dispatchcsv-web serves the shipment-spreadsheet converter.
//
// Usage:
//
//	go run ./cmd/dispatchcsv-web -addr :8080
//
// Configuration comes from DISPATCHCSV_* environment variables, overridable
// by flags.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"dispatchcsv/internal/config"
	"dispatchcsv/internal/logging"
	"dispatchcsv/internal/metrics"
	"dispatchcsv/internal/metrics/prom"
	"dispatchcsv/internal/webui"
)

func main() {
	cfg := config.FromEnv()
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	flag.Int64Var(&cfg.MaxUploadBytes, "max-upload", cfg.MaxUploadBytes, "upload size cap in bytes")
	flag.BoolVar(&cfg.MetricsEnabled, "metrics", cfg.MetricsEnabled, "expose /metrics")
	flag.Parse()

	logging.Configure(logging.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON})
	log := logging.L()

	issues := config.Validate(cfg)
	for _, iss := range issues {
		if iss.Severity == config.SeverityWarning {
			log.Warn("config", "path", iss.Path, "msg", iss.Message)
		}
	}
	if errs := config.Errors(issues); len(errs) > 0 {
		for _, e := range errs {
			log.Error("config", "path", e.Path, "msg", e.Message)
		}
		os.Exit(1)
	}

	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		backend := prom.NewBackend()
		metrics.SetBackend(backend)
		metricsHandler = backend.Handler()
	}

	ui := webui.NewServer(webui.Config{
		MaxUploadBytes: cfg.MaxUploadBytes,
		Metrics:        metricsHandler,
	})
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           ui.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server", "err", err)
		os.Exit(1)
	}
}
