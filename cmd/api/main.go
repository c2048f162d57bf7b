package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"resto-backend/config"
	"resto-backend/internal/cache"
	"resto-backend/internal/logger"
	"resto-backend/internal/middleware"
	"resto-backend/internal/notify"
	"resto-backend/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env not found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "resto-api")
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	// Money columns go out as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	db, err := config.ConnectDB(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	log.Info("database connected", zap.String("driver", cfg.Database.Driver))

	kv := cache.KV(cache.Noop{})
	if cfg.Redis.Address != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = rdb.Close() }()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Warn("redis unreachable, schedule cache disabled", zap.String("addr", cfg.Redis.Address), zap.Error(err))
		} else {
			kv = cache.NewRedisKV(rdb)
		}
	}

	notifier := notify.Notifier(notify.Noop{})
	if cfg.SMTPEnabled() {
		mailer := notify.NewMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
		notifier = notify.NewAsync(mailer, log)
	}

	var (
		verifier  middleware.Verifier
		jwtSecret string
	)
	switch cfg.Auth.Mode {
	case config.AuthModeIntrospect:
		verifier = middleware.NewIntrospectionVerifier(cfg.Auth.ProviderURL, cfg.Auth.APIKey)
	default:
		verifier = middleware.NewJWTVerifier(cfg.Auth.JWTSecret)
		jwtSecret = cfg.Auth.JWTSecret
	}

	app := fiber.New(fiber.Config{AppName: "resto-api"})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))

	routes.Setup(app, &routes.Deps{
		DB:              db,
		Log:             log,
		Verifier:        verifier,
		Cache:           cache.NewScheduleCache(kv, cfg.Schedule.CacheTTL, log),
		Notifier:        notifier,
		Production:      cfg.IsProduction(),
		JWTSecret:       jwtSecret,
		TokenTTL:        cfg.Auth.TokenTTL,
		AdminRoleID:     cfg.Schedule.AdminRoleID,
		MaxScheduleDays: cfg.Schedule.MaxDays,
		MetricsEnabled:  cfg.MetricsEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		errc <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		return app.ShutdownWithTimeout(10 * time.Second)
	}
}
