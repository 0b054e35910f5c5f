package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Superak0s/SuperGym-App-sub001/internal/api"
	"github.com/Superak0s/SuperGym-App-sub001/internal/cli"
	"github.com/Superak0s/SuperGym-App-sub001/internal/db"
	"github.com/Superak0s/SuperGym-App-sub001/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load .env: %v", err)
	}

	dbPath := getEnv("DB_PATH", filepath.Join("data", "supergym.db"))

	if len(os.Args) > 1 && os.Args[1] == "reset-password" {
		if len(os.Args) < 3 {
			log.Fatal("usage: supergym reset-password <email>")
		}
		if err := cli.RunResetPasswordCommand(dbPath, os.Args[2]); err != nil {
			log.Fatalf("reset-password failed: %v", err)
		}
		return
	}

	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	port := getEnv("PORT", "8080")
	cookieSecure := getEnv("COOKIE_SECURE", "") == "true"
	syncBaseURL := getEnv("SYNC_BASE_URL", "")

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	notifier := services.NewTelegramNotifierFromEnv()
	if notifier.Enabled() {
		log.Printf("telegram reminder delivery enabled")
	} else {
		log.Printf("telegram reminder delivery disabled, reminders will only be logged")
	}
	scheduler := services.NewReminderScheduler(db.NewCreatineRepository(database), notifier, location)

	var syncTarget services.SyncTarget
	if syncBaseURL != "" {
		syncTarget = services.NewHTTPSyncTarget(syncBaseURL)
	}

	handler := api.NewHandler(database, secretKey, location, scheduler, syncTarget, cookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "SuperGym",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	scheduler.Start(lifecycleCtx)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("SuperGym listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
