package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "newsapi/docs"
	"newsapi/internal/app"
	"newsapi/internal/config"
	"newsapi/internal/logger"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

// @title        NC News API
// @version      1.0
// @description  Topics, articles, comments and users of a news aggregation site.
// @BasePath     /
func main() {
	// Startup logger until the configured one is built.
	logger.Log = zap.Must(zap.NewProduction())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.Fatal("config load failed", zap.Error(err))
	}
	warnings, err := cfg.Validate()
	if err != nil {
		logger.Log.Fatal("config invalid", zap.Error(err))
	}

	if err := logger.InitLogger(cfg); err != nil {
		logger.Log.Fatal("logger init failed", zap.Error(err))
	}
	defer logger.Log.Sync()

	for _, w := range warnings {
		logger.Log.Warn("config warning", zap.String("warning", w))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.InitApp(ctx, cfg)
	if err != nil {
		logger.Log.Fatal("app init failed", zap.String("dsn", cfg.GetDSNSafe()), zap.Error(err))
	}
	defer application.Close()

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           corsMiddleware.Handler(application.Handler()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("server started", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("graceful shutdown failed", zap.Error(err))
	}
}
