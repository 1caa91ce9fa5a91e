package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"astro-atlas/internal/admin"
	"astro-atlas/internal/analytics"
	"astro-atlas/internal/collections"
	"astro-atlas/internal/favorites"
	"astro-atlas/internal/objects"
	"astro-atlas/internal/users"
	"astro-atlas/pkg/app"
	"astro-atlas/pkg/handlers"
	"astro-atlas/pkg/module"
	"astro-atlas/pkg/version"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "go.uber.org/automaxprocs"
)

// customLoggerMiddleware logs requests but excludes health check endpoints
func customLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/health") {
			next.ServeHTTP(w, r)
			return
		}
		middleware.Logger(next).ServeHTTP(w, r)
	})
}

// recovererMiddleware converts panics into the API's JSON 500 body. Error
// detail is suppressed in production.
func recovererMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil && rec != http.ErrAbortHandler {
				slog.Error("Panic while handling request", "path", r.URL.Path, "panic", rec)
				handlers.InternalErrorResponse(w, fmt.Errorf("%v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// corsMiddleware adds CORS headers for browser clients
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	versionInfo := version.Get()
	log.Printf("AstroAtlas %s | build %s | go %s", version.GetVersionString(), versionInfo.BuildDate, versionInfo.GoVersion)
	log.Printf("CPUs: %d | GOMAXPROCS: %d", runtime.NumCPU(), runtime.GOMAXPROCS(0))

	ctx := context.Background()

	appCtx, err := app.InitializeApp("astroatlas")
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer appCtx.Shutdown(ctx)

	r := chi.NewRouter()
	r.Use(customLoggerMiddleware)
	r.Use(recovererMiddleware)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsMiddleware)

	// Initialize modules. Admin and analytics compose the resource services.
	usersModule, err := users.NewModule(appCtx.MongoDB, appCtx.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize users module: %v", err)
	}
	objectsModule, err := objects.NewModule(appCtx.MongoDB, appCtx.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize objects module: %v", err)
	}
	favoritesModule, err := favorites.NewModule(appCtx.MongoDB, appCtx.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize favorites module: %v", err)
	}
	collectionsModule, err := collections.NewModule(appCtx.MongoDB, appCtx.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize collections module: %v", err)
	}
	analyticsModule, err := analytics.NewModule(appCtx.MongoDB, appCtx.Redis, objectsModule.GetService(), favoritesModule.GetService())
	if err != nil {
		log.Fatalf("Failed to initialize analytics module: %v", err)
	}
	adminModule, err := admin.NewModule(appCtx.MongoDB, appCtx.Redis, usersModule.GetService(), objectsModule.GetService(), analyticsModule.GetService())
	if err != nil {
		log.Fatalf("Failed to initialize admin module: %v", err)
	}

	if err := usersModule.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize users module: %v", err)
	}
	if err := analyticsModule.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize analytics module: %v", err)
	}

	modules := []module.Module{
		usersModule,
		objectsModule,
		favoritesModule,
		collectionsModule,
		analyticsModule,
		adminModule,
	}

	humaConfig := huma.DefaultConfig("AstroAtlas API", "1.0.0")
	humaConfig.Info.Description = "Celestial object catalog with favorites, collections and analytics"

	var api huma.API
	r.Route("/api", func(apiRouter chi.Router) {
		healthCheckers := map[string]handlers.HealthChecker{
			"mongodb": appCtx.MongoDB,
		}
		if appCtx.Redis != nil {
			healthCheckers["redis"] = appCtx.Redis
		}
		apiRouter.Get("/health", handlers.HealthHandler(healthCheckers))

		api = humachi.New(apiRouter, humaConfig)
	})

	for _, mod := range modules {
		mod.RegisterRoutes(api)
	}

	r.NotFound(handlers.RouteNotFoundHandler)
	r.MethodNotAllowed(handlers.RouteNotFoundHandler)

	for _, mod := range modules {
		go mod.StartBackgroundTasks(ctx)
	}

	port := app.GetPort("5000")
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Starting AstroAtlas API server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Received shutdown signal, initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	for _, mod := range modules {
		mod.Stop()
	}

	appCtx.Shutdown(shutdownCtx)

	slog.Info("AstroAtlas shutdown completed")
}
