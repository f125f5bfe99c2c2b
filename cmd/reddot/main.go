package main

import (
	"context"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/reddot-health/reddot/internal/api"
	"github.com/reddot-health/reddot/internal/config"
	"github.com/reddot-health/reddot/internal/db"
	"github.com/reddot-health/reddot/internal/services"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config init failed: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logrus.Warnf("invalid TZ %q, falling back to UTC", cfg.Timezone)
		location = time.UTC
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		logrus.Fatalf("database init failed: %v", err)
	}

	repos := db.NewRepositories(database)

	var remote services.RemotePredictor
	if cfg.PredictionURL != "" {
		remote = services.NewExternalPredictor(cfg.PredictionURL, cfg.PredictionTimeout)
	}

	authService := services.NewAuthService(repos.Users)
	periodService := services.NewPeriodService(repos.Periods, repos.Users)
	wellnessService := services.NewWellnessService(
		repos.WellnessLogs,
		repos.Symptoms,
		repos.Moods,
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)
	analyticsService := services.NewAnalyticsService(repos.Periods, repos.Symptoms, repos.Moods, repos.WellnessLogs)
	predictionService := services.NewPredictionService(repos.Periods, remote)

	handler := api.NewHandler(api.HandlerConfig{
		SecretKey:     cfg.SecretKey,
		Location:      location,
		Auth:          authService,
		Periods:       periodService,
		Wellness:      wellnessService,
		Analytics:     analyticsService,
		Predictions:   predictionService,
		Notifications: repos.Notifications,
	})

	app := fiber.New(fiber.Config{
		AppName:               "RedDot",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()

	if cfg.RemindersEnabled {
		notifier := services.NewNotificationService(
			repos.Users,
			repos.Notifications,
			predictionService,
			cfg.ReminderDays,
			cfg.ReminderInterval,
		)
		notifier.Start(lifecycleCtx)
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logrus.Errorf("server shutdown failed: %v", err)
		}
	}()

	logrus.Infof("RedDot listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Port, cfg.DBPath, location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
