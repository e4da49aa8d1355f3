// Package server exposes the page, its JSON views and the contact form over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"dental-site/internal/common/logger"
	"dental-site/internal/contact"
	"dental-site/internal/models"
	"dental-site/internal/site"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PageBuilder is satisfied by *site.Service.
type PageBuilder interface {
	Build(ctx context.Context) site.PageView
}

// ContactHandler is satisfied by *contact.Intake.
type ContactHandler interface {
	Handle(ctx context.Context, sub models.ContactSubmission, fallbackRecipient string) contact.Result
}

// Config defines dependencies required by Server.
type Config struct {
	Logger            logger.Logger
	Pages             PageBuilder
	Contact           ContactHandler
	FallbackRecipient string
	GalleryDir        string
	// Ready reports whether backing services are reachable; nil means always ready.
	Ready             func(ctx context.Context) error
	Addr              string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

type Server struct {
	logger            logger.Logger
	pages             PageBuilder
	contact           ContactHandler
	fallbackRecipient string
	galleryDir        string
	ready             func(ctx context.Context) error
	addr              string
	readHeaderTimeout time.Duration
	shutdownTimeout   time.Duration
}

func New(cfg Config) *Server {
	s := &Server{
		logger:            cfg.Logger.WithFields(map[string]interface{}{"component": "http"}),
		pages:             cfg.Pages,
		contact:           cfg.Contact,
		fallbackRecipient: cfg.FallbackRecipient,
		galleryDir:        cfg.GalleryDir,
		ready:             cfg.Ready,
		addr:              cfg.Addr,
		readHeaderTimeout: cfg.ReadHeaderTimeout,
		shutdownTimeout:   cfg.ShutdownTimeout,
	}
	if s.readHeaderTimeout <= 0 {
		s.readHeaderTimeout = 5 * time.Second
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = 10 * time.Second
	}
	return s
}

// Router builds the chi router with every route and middleware.
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(s.requestLogger)
	router.Use(middleware.Recoverer)

	router.Get("/", s.handlePage)
	router.Post("/contact", s.handleContact)
	router.Route("/api", func(r chi.Router) {
		r.Get("/profile", s.handleProfile)
		r.Get("/structured-data", s.handleStructuredData)
	})
	router.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(s.galleryDir))))

	router.Get("/health", s.handleHealth)
	router.Get("/ready", s.handleReady)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: s.readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", map[string]interface{}{"addr": s.addr})
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
