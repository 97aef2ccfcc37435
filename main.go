package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/linesmerrill/haemo-report-api/api/handlers"
	"github.com/linesmerrill/haemo-report-api/api/scheduler"
	"github.com/linesmerrill/haemo-report-api/config"
)

const shutdownTimeout = 10 * time.Second

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	// pick the patient store and build the router
	if err := a.Initialize(); err != nil {
		zap.S().Fatalw("failed to initialize", "error", err)
	}

	reports := scheduler.NewScheduler(a.Store, a.Config)
	if err := reports.Start(); err != nil {
		zap.S().Errorw("report scheduler disabled", "error", err)
	} else {
		defer reports.Stop()
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%v", a.Config.Port),
		Handler: a.Handler(),
	}

	go func() {
		zap.S().Infow("haemo-report-api is up and running",
			"port", a.Config.Port,
			"url", a.Config.BaseURL,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Fatalw("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zap.S().Errorw("server forced to shutdown", "error", err)
	}
	if err := a.Close(ctx); err != nil {
		zap.S().Errorw("failed to disconnect from database", "error", err)
	}
	zap.S().Info("haemo-report-api stopped")
}
