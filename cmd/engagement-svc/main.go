package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"gotube/internal/common"
	"gotube/internal/di"
	"gotube/internal/logging"
	"gotube/internal/metrics"
)

func main() {
	app, err := di.InitializeApplication()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to initialize application")
	}
	if err := logging.Init(app.Config.Logging); err != nil {
		logging.Warn().Err(err).Msg("falling back to default logger")
	}

	router := setupRouter(app)

	server := &http.Server{
		Addr:           fmt.Sprintf("%s:%s", app.Config.Server.Host, app.Config.Server.Port),
		Handler:        router,
		ReadTimeout:    time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(app.Config.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		logging.Info().Str("addr", server.Addr).Str("env", app.Config.Server.Environment).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("server forced to shutdown")
	}
	app.Close(ctx)

	logging.Info().Msg("server gracefully stopped")
}

// setupRouter mounts the authenticated API under /api/v1. Health, metrics
// and media stay public.
func setupRouter(app *di.Application) *mux.Router {
	router := mux.NewRouter()
	router.Use(corsMiddleware)
	router.Use(logging.Middleware)
	router.Use(metrics.Middleware)
	router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	app.Media.RegisterRoutes(router)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/healthcheck", healthCheckHandler).Methods(http.MethodGet)

	secured := api.NewRoute().Subrouter()
	secured.Use(common.AuthMiddleware(app.Tokens))

	app.Likes.RegisterRoutes(secured)
	app.Subscriptions.RegisterRoutes(secured)
	app.Comments.RegisterRoutes(secured)
	app.Playlists.RegisterRoutes(secured)
	app.Videos.RegisterRoutes(secured)
	app.Tweets.RegisterRoutes(secured)
	app.Dashboard.RegisterRoutes(secured)

	return router
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	common.WriteSuccess(w, http.StatusOK, map[string]string{"status": "healthy", "service": "gotube-engagement"}, "ok")
}
