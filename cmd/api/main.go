//	@title			Book Exchange Covers API
//	@version		1.0
//	@description	Resolves book image keys to CDN or placeholder URLs and moderates uploaded covers.
//
//	@host		localhost:8080
//	@BasePath	/api/v1
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Admin JWT Bearer token. Format: **Bearer {token}**

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"github.com/bookexchange/covers/internal/auth"
	"github.com/bookexchange/covers/internal/config"
	"github.com/bookexchange/covers/internal/cover"
	"github.com/bookexchange/covers/internal/db"
	appMiddleware "github.com/bookexchange/covers/internal/middleware"
	"github.com/bookexchange/covers/internal/moderation"
	"github.com/bookexchange/covers/internal/storage"

	_ "github.com/bookexchange/covers/docs/swagger"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	if !cfg.EnvFileLoaded {
		log.Info("no .env file found, reading from environment")
	}

	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL, log); err != nil {
		log.Fatal("database migration failed", zap.Error(err))
	}

	store, err := storage.NewMinioStorage(ctx, storage.Options{
		Endpoint:   cfg.StorageEndpoint,
		AccessKey:  cfg.StorageAccessKey,
		SecretKey:  cfg.StorageSecretKey,
		Bucket:     cfg.StorageBucket,
		PublicBase: cfg.StoragePublicBase,
		UseSSL:     cfg.StorageUseSSL,
	}, log)
	if err != nil {
		log.Fatal("object storage init failed", zap.Error(err))
	}

	observer, err := cover.NewPrometheusObserver("cover", prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal("metrics init failed", zap.Error(err))
	}

	// Wire dependencies: repository → resolver/service → handler
	coverRepo := cover.NewRepository(pool)
	cloudName := cover.NewCloudNameCache(coverRepo, log)
	resolver := cover.NewResolver(coverRepo, cloudName, cover.Options{
		CDNHost:         cfg.CDNHost,
		PlaceholderPath: cfg.PlaceholderPath,
		SiteURL:         cover.SiteURLFromContext(cfg.SiteURL),
		Observer:        observer,
	})
	coverHandler := cover.NewHandler(resolver, log)

	modRepo := moderation.NewRepository(pool)
	modSvc := moderation.NewService(modRepo, store, cloudName, log)
	modHandler := moderation.NewHandler(modSvc, log)

	// Warm the cloud name; a missing row is reported per request rather than at boot.
	if _, err := cloudName.Get(ctx); err != nil {
		log.Warn("cloud name not loaded at startup", zap.Error(err))
	}

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Image sources for templates: <img src="/covers/cover/{imageKey}">
	siteURL := cover.SiteURL(cfg.SiteURL, cfg.TrustRequestHost)
	r.With(siteURL).Get("/covers/{preset}/{imageKey}", coverHandler.Redirect)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/covers", func(r chi.Router) {
			r.Use(siteURL)
			r.Get("/{imageKey}", coverHandler.GetAll)
			r.Get("/{imageKey}/{preset}", coverHandler.GetPreset)
		})
		r.With(siteURL).Get("/images/{preset}/{imageKey}", coverHandler.Redirect)

		// Moderation endpoints
		r.Route("/admin", func(r chi.Router) {
			r.Use(appMiddleware.RequireRole(cfg.JWTSecret, auth.RoleAdmin))
			r.Post("/covers", modHandler.SubmitCover)
			r.Patch("/covers/{imageKey}/state", modHandler.SetState)
			r.Put("/cloud-name", modHandler.SetCloudName)
			r.Post("/cloud-name/refresh", modHandler.RefreshCloudName)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("server listening", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	log.Info("shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("forced shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
