package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hsinghweb/eag-v2-s13/internal/automation"
	"github.com/hsinghweb/eag-v2-s13/internal/calculator"
	"github.com/hsinghweb/eag-v2-s13/internal/observability"
	"github.com/hsinghweb/eag-v2-s13/internal/registry"
	"github.com/hsinghweb/eag-v2-s13/internal/server"
	"github.com/hsinghweb/eag-v2-s13/internal/window"
)

func main() {

	ctx := context.Background()

	if err := loadDotEnv(); err != nil {
		panic(err)
	}

	cfg, err := loadConfig()
	if err != nil {
		panic(err)
	}

	// Logger
	err = observability.InitLogger()
	if err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	logShutdown, err := observability.InitLogging(ctx)
	if err != nil {
		panic(err)
	}
	defer logShutdown(ctx)

	// Tracing
	traceShutdown, err := observability.InitTracing(ctx)
	if err != nil {
		panic(err)
	}
	defer traceShutdown(ctx)

	// Metrics
	metricShutdown, err := initMetrics(ctx)
	if err != nil {
		panic(err)
	}
	defer metricShutdown(ctx)

	// Element registry, loaded once and read-only for the session.
	reg, err := registry.Load(cfg.RegistryPath)
	if err != nil {
		observability.Logger.Fatal("loading element registry",
			zap.String("path", cfg.RegistryPath),
			zap.Error(err),
		)
	}
	observability.Logger.Info("element registry loaded",
		zap.String("path", cfg.RegistryPath),
		zap.Int("elements", reg.Len()),
	)

	locator := &window.ProcessLocator{
		ProcessName: cfg.ProcessName,
		LaunchPath:  cfg.LaunchPath,
		Logger:      observability.Logger,
	}

	ctrl := &calculator.Controller{
		Locator: locator,
		Executor: &automation.Executor{
			Registry: reg,
			Locator:  locator,
			Clicker:  automation.RobotClicker{},
			Settle:   cfg.Settle,
			Logger:   observability.Logger,
		},
	}

	// Router
	router := server.NewRouter(ctrl)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		observability.Logger.Info("server started",
			zap.String("addr", cfg.ListenAddr),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	waitForShutdown(srv)
}

func waitForShutdown(srv *http.Server) {

	stop := make(chan os.Signal, 1)

	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	srv.Shutdown(ctx)
}
