package main

import (
	"log"
	"os"

	"log/slog"

	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"

	apphttp "fitformal.com/app/internal/http"
	"fitformal.com/app/internal/upstream"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	baseURL := os.Getenv("UPSTREAM_BASE_URL")
	if baseURL == "" {
		log.Fatal("UPSTREAM_BASE_URL environment variable is required")
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "dev-only-secret"
		logger.Warn("SESSION_SECRET not set, using dev default")
	}
	store := sessions.NewCookieStore([]byte(secret))
	store.Options.HttpOnly = true

	fallback := upstream.StaticToken(os.Getenv("FALLBACK_AUTH_TOKEN"))
	api := upstream.New(baseURL, logger, fallback)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	logger.Info("starting", "addr", addr, "upstream", baseURL)
	r := apphttp.NewRouter(logger, api, store, fallback)
	_ = r.Run(addr)
}
