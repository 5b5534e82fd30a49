package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/inquiries/internal/config"
	"github.com/umalmyha/inquiries/internal/infra"
	"github.com/umalmyha/inquiries/internal/service"
	"github.com/umalmyha/inquiries/internal/validation"
)

// @title       Inquiries API
// @version     1.0
// @description Accepts and stores contact inquiries submitted from the marketing site
// @BasePath    /api
func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatalf("failed to build config - %v", err)
	}

	log, err := infra.Logger(cfg.LogCfg)
	if err != nil {
		logrus.Fatalf("failed to configure logger - %v", err)
	}

	storage, err := infra.NewStorage(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to connect to storage - %v", err)
	}
	defer func() {
		if err := storage.Close(context.Background()); err != nil {
			log.Errorf("failed to close storage connections - %v", err)
		}
	}()

	validator, err := validation.NewInquiryValidator()
	if err != nil {
		log.Fatalf("failed to build inquiry validator - %v", err)
	}

	inquirySvc := service.NewInquiryService(storage.InquiryRps, storage.InquiryCache)
	app := infra.Router(cfg.HTTPCfg, log, inquirySvc, validator, storage.Checks)

	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.WithFields(logrus.Fields{
			"port":    cfg.HTTPCfg.Port,
			"storage": cfg.StorageCfg.Driver,
			"cache":   cfg.RedisCfg.Enabled,
		}).Info("starting server")
		errorCh <- app.Start(fmt.Sprintf(":%d", cfg.HTTPCfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPCfg.ShutdownTimeout)
		defer cancel()

		log.Info("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			log.Errorf("failed to stop server gracefully - %v", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("shutting down the server, unexpected error occurred - %v", err)
		}
	}
}
