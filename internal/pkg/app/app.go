package app

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"os"
	"os/signal"
	"syscall"
	router "t9dict/internal/app/adapters/http"
	"t9dict/internal/app/adapters/metrics"
	"t9dict/internal/app/domain/dictionary"
	"t9dict/internal/app/infrastructure/config"
	"t9dict/pkg/logger"
	"time"
)

const configPath = "config.json"

func New() error {
	manager, err := config.New(configPath)
	if err != nil {
		logger.New().Fatal("Error loading config", err)
	}

	cfg := manager.Get()
	log := logger.New(logger.WithFile(logger.FileOptions{
		Filename:   cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	}))
	log.SetLogLevel(cfg.App.LogLevel)
	gin.SetMode(cfg.App.GinMode)

	prometheus.MustRegister(metrics.LookupTime)

	dict := dictionary.New(logger.NewPrefixedLogger(log, "dictionary"), manager)
	if err := dict.Reload(); err != nil {
		// an unreadable word list leaves the service up with what was read
		log.Error("Dictionary not fully loaded", err)
	}
	defer dict.Close()

	r := router.NewRouter(log, manager, dict)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		for {
			select {
			case <-hup:
				log.Info("SIGHUP received, reloading dictionary")
				_ = dict.Reload()
			case <-ctx.Done():
				signal.Stop(hup)
				return
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- r.Run()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return r.Shutdown(shutdownCtx)
}
