package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cleaning-booking/internal/auth"
	"github.com/BruksfildServices01/cleaning-booking/internal/cache"
	"github.com/BruksfildServices01/cleaning-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/cleaning-booking/internal/db"
	"github.com/BruksfildServices01/cleaning-booking/internal/gateway"
	"github.com/BruksfildServices01/cleaning-booking/internal/i18n"
	infraRepo "github.com/BruksfildServices01/cleaning-booking/internal/infra/repository"
	"github.com/BruksfildServices01/cleaning-booking/internal/logging"
	"github.com/BruksfildServices01/cleaning-booking/internal/notify"
	"github.com/BruksfildServices01/cleaning-booking/internal/routes"
	"github.com/BruksfildServices01/cleaning-booking/internal/storage"
	"github.com/BruksfildServices01/cleaning-booking/internal/timezone"
	"github.com/BruksfildServices01/cleaning-booking/internal/validators"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logging.New(cfg.LogLevel)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}

	var catalogCache cache.Cache = cache.NewMemory()
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		catalogCache = cache.NewRedis(client)
	}

	var store storage.Store
	if cfg.S3Enabled() {
		store = storage.NewS3Store(storage.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
	} else {
		store = storage.NewLocalStore(cfg.UploadDir, cfg.UploadPublicPrefix)
	}

	gw, err := gateway.New(cfg.MercadoPagoToken, cfg.MercadoPagoBackURL)
	if err != nil {
		return err
	}

	text, err := i18n.NewDefault(cfg.DefaultLang)
	if err != nil {
		return err
	}

	var domains validators.DomainChecker = validators.AnyDomain{}
	if cfg.EmailDomainCheck {
		domains = validators.NewDNSChecker()
	}

	writer := notify.NewWriter(infraRepo.NewNotificationGormRepository(db), text)
	dispatcher := notify.NewDispatcher(
		writer,
		infraRepo.NewUserGormRepository(db),
		cfg.NotifyQueueSize,
		log,
	)
	defer dispatcher.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Logger:   log,
		I18n:     text,
		Location: timezone.Location(cfg.Timezone),
		Tokens:   auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL),
		Cache:    catalogCache,
		Uploader: storage.NewUploader(store, cfg.UploadMaxWidth),
		Gateway:  gw,
		Notifier: dispatcher,
		Writer:   writer,
		Domains:  domains,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", "addr", cfg.Addr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
