package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bigvalue-web/internal/config"
	"bigvalue-web/internal/http-server/handlers/admin"
	cataloghandler "bigvalue-web/internal/http-server/handlers/catalog"
	contenthandler "bigvalue-web/internal/http-server/handlers/content"
	"bigvalue-web/internal/http-server/handlers/health"
	inquiryhandler "bigvalue-web/internal/http-server/handlers/inquiry"
	"bigvalue-web/internal/http-server/view"
	"bigvalue-web/internal/lib/logger"
	"bigvalue-web/internal/lib/logger/sl"
	"bigvalue-web/internal/service/auth"
	"bigvalue-web/internal/service/catalog"
	"bigvalue-web/internal/service/content"
	"bigvalue-web/internal/service/inquiry"
	"bigvalue-web/internal/storage/sqlite"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(cfg.Env)

	log.Debug("initializing server...", slog.String("addr", cfg.Address))

	loc, err := cfg.Content.Location()
	if err != nil {
		log.Error("invalid time zone", slog.String("timezone", cfg.Timezone), sl.Error(err))
		os.Exit(1)
	}

	// Init storage
	storage, err := sqlite.New(cfg.StoragePath)
	if err != nil {
		log.Error("error opening storage", sl.Error(err))
		os.Exit(1)
	}
	defer storage.Close()

	pages, err := view.New(log)
	if err != nil {
		log.Error("error parsing templates", sl.Error(err))
		os.Exit(1)
	}

	client := &http.Client{Timeout: cfg.ClientTimeout}

	// Init service layer
	contentService := content.New(log, client, cfg.APIBaseURL, loc, cfg.PageSize)
	inquiryService := inquiry.New(log, storage, client, cfg.Endpoint)
	catalogService := catalog.New(log, cfg.Catalog.Path)
	authService := auth.New(log, cfg.UserName, cfg.PasswordHash, cfg.Secret, cfg.TokenTTL)

	// Handlers and middleware
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(cfg.HTTPServer.Timeout))

	for _, sec := range content.DefaultSections() {
		r.Route("/"+sec.Slug, contenthandler.New(contentService, pages, sec).Register())
	}

	r.Route("/data-products", cataloghandler.New(catalogService, pages).Register())
	r.Route("/api/inquiry", inquiryhandler.New(log, inquiryService).Register())
	r.Get("/api/health", health.Handler)
	r.Route("/admin", admin.New(log, authService, inquiryService, cfg.Secret).Register())

	srv := http.Server{
		Handler:      r,
		Addr:         cfg.Address,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	log.Debug("server initialized")
	log.Info("server is running...")

	// Gracefully shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("error starting sever", sl.Error(err))
		}
	}()

	<-done

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("failed to stop server", sl.Error(err))
	}

	log.Info("server stopped")
}
