package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dental-site/internal/common/aws"
	"dental-site/internal/common/config"
	"dental-site/internal/common/database"
	"dental-site/internal/common/logger"
	"dental-site/internal/common/observability"
	"dental-site/internal/contact"
	"dental-site/internal/enrichment"
	"dental-site/internal/places"
	"dental-site/internal/server"
	"dental-site/internal/site"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zapLog := logger.New("info", "console")
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting site server...",
		zap.String("environment", cfg.App.Environment),
		zap.String("cacheBackend", cfg.Places.CacheBackend),
		zap.String("mailTransport", cfg.Mail.Transport),
		zap.Bool("placeLookup", cfg.Places.Enabled()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	obs := observability.New(cfg.App.Name)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			zapLog.Warn("observability shutdown failed", zap.Error(err))
		}
	}()

	// --- Place cache ---
	var (
		cache places.Cache
		ready func(context.Context) error
	)
	switch cfg.Places.CacheBackend {
	case config.CacheBackendRedis:
		rdb := database.NewRedis(cfg.Redis)
		defer rdb.Close()
		if err := rdb.Ping(ctx); err != nil {
			// the page still renders from defaults while redis is down
			zapLog.Warn("redis unreachable at startup", zap.Error(err))
		}
		cache = places.NewRedisCache(rdb.Client, cfg.Redis.Key, log)
		ready = rdb.Ping
	case config.CacheBackendMemory:
		cache = places.NewMemoryCache()
	default:
		cache = places.NewFileCache(cfg.Places.CachePath, log)
	}

	placeClient := places.NewClient(cfg.Places.BaseURL, cfg.Places.Language, cfg.Places.Timeout, cache, log)

	engine := enrichment.NewEngine(enrichment.Options{
		PhotoURL:    cfg.Places.PhotoURL,
		GalleryDir:  cfg.Gallery.Dir,
		ImagePrefix: "/images",
		StreetView:  cfg.Gallery.StreetView,
		MaxPhotos:   cfg.Gallery.MaxPhotos,
	}, log)

	pages := site.NewService(cfg, placeClient, engine, obs, log)

	// --- Contact intake ---
	opts := []contact.Option{}
	var awsClients *aws.Clients
	if cfg.Mail.Transport == config.TransportSES || cfg.Contact.SMSAlertPhone != "" {
		awsClients, err = aws.NewClients(ctx, cfg.Mail.AWSRegion)
		if err != nil {
			zapLog.Warn("AWS clients unavailable, submissions will be stored locally", zap.Error(err))
		}
	}

	switch cfg.Mail.Transport {
	case config.TransportSES:
		if awsClients != nil {
			opts = append(opts, contact.WithSender(contact.NewSESSender(awsClients.SES, cfg.Mail.From)))
		}
	case config.TransportSMTP:
		opts = append(opts, contact.WithSender(contact.NewSMTPSender(cfg.Mail.SMTP, cfg.Mail.From)))
	}
	if awsClients != nil && cfg.Contact.SMSAlertPhone != "" {
		opts = append(opts, contact.WithAlerter(contact.NewSMSAlerter(awsClients.SNS, cfg.Contact.SMSAlertPhone)))
	}

	intake := contact.NewIntake(
		contact.NewFileStore(cfg.Contact.MessageDir),
		cfg.Contact.Recipient,
		cfg.Contact.SubjectPrefix,
		log,
		opts...,
	)

	// --- HTTP ---
	srv := server.New(server.Config{
		Logger:            log,
		Pages:             pages,
		Contact:           intake,
		FallbackRecipient: cfg.Business.Email,
		GalleryDir:        cfg.Gallery.Dir,
		Ready:             ready,
		Addr:              cfg.Server.Address,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.Server.ShutdownTimeout,
	})

	if err := srv.Run(ctx); err != nil {
		zapLog.Error("server stopped with error", zap.Error(err))
		return
	}
	zapLog.Info("Site server stopped gracefully")
}
