// cmd/server/main.go
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	mux_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/Eng-Denzel/NaTourCam/internal/api"
	"github.com/Eng-Denzel/NaTourCam/internal/config"
	"github.com/Eng-Denzel/NaTourCam/internal/handlers"
	"github.com/Eng-Denzel/NaTourCam/internal/middleware"
	"github.com/Eng-Denzel/NaTourCam/internal/session"
	"github.com/Eng-Denzel/NaTourCam/internal/web"
)

func main() {
	// --- Load config (config.yaml + env overrides) ---
	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	// --- Session store: cookie by default, redis when configured ---
	var store session.Store
	switch cfg.Session.Store {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("redis ping error: %v", err)
		}
		defer rdb.Close()
		store = session.NewRedisStore(rdb, cfg.Session.TTL)
	default:
		store = session.NewCookieStore()
	}

	// --- Backend client + session manager ---
	client := api.New(cfg.Backend.URL, cfg.Backend.Timeout)
	sessions := session.NewManager(client, store, cfg.Session.TTL)

	render, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("template error: %v", err)
	}

	// --- Router ---
	mux := chi.NewRouter()

	// Simple request logger (logs method, path, status, and duration)
	mux.Use(mux_middleware.Logger)
	mux.Use(mux_middleware.Recoverer)
	mux.Use(middleware.RequestID)
	mux.Use(middleware.Metrics)

	// --- CORS middleware ---
	origins := cfg.CORS.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{cfg.BaseURL}
	}
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by browsers
	}))

	// --- Metrics endpoint ---
	middleware.RegisterMetrics(prometheus.DefaultRegisterer)
	mux.Handle("/metrics", promhttp.Handler())

	// Page routes
	handlers.RegisterRoutes(mux, handlers.Deps{
		Client:   client,
		Sessions: sessions,
		Render:   render,
	})

	// Serve static files from ./static at /static/*
	mux.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("./static/"))))

	// --- Start server ---
	addr := cfg.Listen
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}
	log.Printf("listening on %s (backend=%s, sessions=%s)", addr, cfg.Backend.URL, cfg.Session.Store)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}
