package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.sr.ht/~jakintosh/warrant/internal/api"
	"git.sr.ht/~jakintosh/warrant/internal/config"
	"git.sr.ht/~jakintosh/warrant/internal/database"
	"git.sr.ht/~jakintosh/warrant/internal/oauth"
	"git.sr.ht/~jakintosh/warrant/internal/service"
	"git.sr.ht/~jakintosh/warrant/internal/tokens"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	store, err := database.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}
	defer store.Close()

	codec, err := tokens.NewCodec(
		cfg.AccessSecret,
		cfg.RefreshSecret,
		cfg.AccessTTL,
		cfg.RefreshTTL,
	)
	if err != nil {
		log.WithError(err).Fatal("failed to build token codec")
	}

	var provider oauth.Provider
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		provider = oauth.NewGoogleProvider(
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.BackendURL+"/api/auth/google/callback",
		)
	} else {
		log.Warn("external identity login disabled: no provider credentials configured")
	}

	svc := service.New(store, store, codec, service.PasswordModeProduction, log)

	a := api.New(svc, provider, api.Config{
		FrontendURL:   cfg.FrontendURL,
		CookieTTL:     cfg.RefreshTTL,
		SecureCookies: cfg.IsProduction(),
		ShowDetail:    !cfg.IsProduction(),
	}, log)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: a.Router(),
	}

	errs := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.ListenAddr).Info("warrant server listening")
		errs <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	case sig := <-stop:
		log.WithField("signal", sig.String()).Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.WithError(err).Error("forced shutdown")
		}
	}
}
