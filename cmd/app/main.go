package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lifecycle/cmd"
	httpin "lifecycle/internal/adapters/in/http"
	"lifecycle/internal/adapters/out/postgres/expenserepo"
	"lifecycle/internal/adapters/out/postgres/lifecyclerepo"
	"lifecycle/internal/adapters/out/postgres/orderrepo"
)

const (
	dbProbeAttempts = 10
	dbProbeDelay    = 2 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	configs := getConfigs()

	level, err := configs.SlogLevel()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err = waitForDatabase(configs.DSN(), logger); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	gormDB, err := openDatabase(configs.DSN())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobManager := app.CreateJobManager(logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	err = runWebServer(ctx, &app, configs.HTTPPort, logger)
	jobManager.StopAll()
	if err != nil {
		log.Fatalf("HTTP server stopped: %v", err)
	}
	logger.Info("Shutdown complete")
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, using process environment: %v", err)
	}

	config := cmd.Config{
		HTTPPort:             os.Getenv("HTTP_PORT"),
		DBHost:               os.Getenv("DB_HOST"),
		DBPort:               os.Getenv("DB_PORT"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBSslMode:            os.Getenv("DB_SSLMODE"),
		BucketMappingVersion: os.Getenv("BUCKET_MAPPING_VERSION"),
		DefaultCurrency:      os.Getenv("DEFAULT_CURRENCY"),
		ReportSchedule:       os.Getenv("REPORT_SCHEDULE"),
		LogLevel:             os.Getenv("LOG_LEVEL"),
	}
	return config.WithDefaults()
}

// waitForDatabase pings Postgres through lib/pq until it answers, so that a
// database started alongside the service has time to come up.
func waitForDatabase(dsn string, logger *slog.Logger) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	for attempt := 1; ; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), dbProbeDelay)
		err = db.PingContext(ctx)
		cancel()
		if err == nil {
			return nil
		}
		if attempt == dbProbeAttempts {
			return fmt.Errorf("after %d attempts: %w", attempt, err)
		}
		logger.Warn("Database not ready", "attempt", attempt, "error", err)
		time.Sleep(dbProbeDelay)
	}
}

func openDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&lifecyclerepo.ConfigDTO{},
		&lifecyclerepo.MilestoneDTO{},
		&expenserepo.ExpenseDTO{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// runWebServer serves until ctx is cancelled and then drains in-flight
// requests for up to shutdownTimeout.
func runWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e, err := httpin.NewEcho(app.CreateHTTPServer(), logger)
	if err != nil {
		return fmt.Errorf("build HTTP server: %w", err)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
