package main

import (
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	apphttp "fioriforyou.com/app/internal/http"
	"fioriforyou.com/app/internal/modules/personalization"
	"fioriforyou.com/app/internal/modules/session"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := session.NewStore(db).Migrate(); err != nil {
		log.Fatalf("session migration failed: %v", err)
	}
	if err := personalization.NewStore(db).Migrate(); err != nil {
		log.Fatalf("personalization migration failed: %v", err)
	}

	cfg := apphttp.Config{
		CatalogEndpoint: mustEnv("CATALOG_ENDPOINT"),
		OrderEndpoint:   mustEnv("ORDER_ENDPOINT"),
		StockEndpoint:   mustEnv("STOCK_ENDPOINT"),
		EmailEndpoint:   mustEnv("EMAIL_ENDPOINT"),
		CookieSecret:    []byte(mustEnv("COOKIE_SECRET")),
		CookieName:      envOr("COOKIE_NAME", "ffy_session"),
		CookieSecure:    os.Getenv("COOKIE_SECURE") == "true",
	}

	r, err := apphttp.NewRouter(logger, db, cfg)
	if err != nil {
		log.Fatalf("router setup failed: %v", err)
	}

	addr := envOr("HTTP_ADDR", ":8080")
	logger.Info("listening", slog.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("%s environment variable is required", key)
	}
	return v
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
