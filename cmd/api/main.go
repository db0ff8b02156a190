// @title           Task Tracker API
// @version         1.0
// @description     Per-user task tracker with bearer-token auth.
// @host            localhost:8080
// @BasePath        /api
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ianrury/api-tash-manajement/internal/app"
	"github.com/Ianrury/api-tash-manajement/internal/config"

	"github.com/sirupsen/logrus"

	_ "github.com/Ianrury/api-tash-manajement/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}
	logrus.Info("config loaded, connecting to DB and Redis...")

	application, err := app.New(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("app init")
	}
	logrus.Info("app ready, starting HTTP server")
	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.HTTP.Port,
		Handler:      application.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout.Duration(),
		WriteTimeout: cfg.HTTP.WriteTimeout.Duration(),
		IdleTimeout:  cfg.HTTP.IdleTimeout.Duration(),
	}

	go func() {
		logrus.WithField("addr", server.Addr).Info("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.WithError(err).Fatal("shutdown")
	}

	if err := application.Close(ctx); err != nil {
		logrus.WithError(err).Fatal("close")
	}
}
