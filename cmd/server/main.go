// Server entry point: loads configuration, opens the DB and Redis, wires
// repositories into handlers and starts the HTTP listener plus the lead
// queue consumer.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/yoonsol/coffee-franchise-site/internal/config"
	"github.com/yoonsol/coffee-franchise-site/internal/database"
	"github.com/yoonsol/coffee-franchise-site/internal/handler"
	"github.com/yoonsol/coffee-franchise-site/internal/middleware"
	"github.com/yoonsol/coffee-franchise-site/internal/notify"
	"github.com/yoonsol/coffee-franchise-site/internal/pubcache"
	"github.com/yoonsol/coffee-franchise-site/internal/queue"
	"github.com/yoonsol/coffee-franchise-site/internal/repository"
	"github.com/yoonsol/coffee-franchise-site/internal/router"
	"github.com/yoonsol/coffee-franchise-site/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := newLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logger.Fatal("database unavailable", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	rdb := config.NewRedisClient()
	if rdb == nil {
		logger.Warn("redis unavailable, caching and rate limiting disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Repositories.
	categories := repository.NewCategoryRepo(db)
	menus := repository.NewMenuRepo(db)
	newMenus := repository.NewPosterRepo(db)
	stores := repository.NewStoreRepo(db)
	events := repository.NewEventRepo(db)
	faqs := repository.NewFAQRepo(db)
	inquiries := repository.NewInquiryRepo(db)
	sessions := repository.NewSessionRepo(db)
	admins := repository.NewAdminRepo(db)
	tokens := repository.NewTokenRepo(db)

	uploader := newUploader(ctx, cfg, logger)

	var publisher *queue.Publisher
	if cfg.AMQPURL != "" {
		publisher = queue.NewPublisher(cfg.AMQPURL, logger)
		var mailer queue.Mailer
		if m := newMailer(ctx, cfg, logger); m != nil {
			mailer = m
		}
		go queue.NewConsumer(cfg.AMQPURL, logger, mailer).Run(ctx)
	} else {
		logger.Warn("AMQP_URL not set, lead events disabled")
	}

	revalidator := pubcache.NewRevalidator(rdb, config.LoadCacheConfig().Prefix)
	adminH := &handler.AdminHandler{
		Categories: categories,
		Menus:      menus,
		NewMenus:   newMenus,
		Stores:     stores,
		Events:     events,
		FAQs:       faqs,
		Inquiries:  inquiries,
		Sessions:   sessions,
		Uploader:   uploader,
		Cache:      revalidator,
		Logger:     logger,
	}
	publicH := &handler.PublicHandler{
		Categories: categories,
		Menus:      menus,
		NewMenus:   newMenus,
		Stores:     stores,
		Events:     events,
		FAQs:       faqs,
		Inquiries:  inquiries,
		Sessions:   sessions,
		Publisher:  publisher,
		Cache:      revalidator,
		Logger:     logger,
	}
	authH := handler.NewAuthHandler(cfg, admins, tokens)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	var isActive middleware.ActiveAdminFunc = admins.IsActive
	router.RegisterHealth(e, db, rdb)
	router.RegisterPublic(e, publicH, rdb)
	router.RegisterAuth(e, authH, isActive)
	router.RegisterAdmin(e, adminH, cfg.JWTSecret, isActive)

	go func() {
		addr := ":" + cfg.Port
		logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

func newLogger(env string) *zap.Logger {
	if env == "prod" {
		l, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return l
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return l
}

// newUploader builds the S3 image uploader. Failure to resolve AWS
// credentials is fatal only outside dev; in dev uploads just fail at call
// time.
func newUploader(ctx context.Context, cfg config.Config, logger *zap.Logger) *storage.Uploader {
	prefix := os.Getenv("S3_BUCKET_PREFIX")
	if prefix == "" {
		prefix = "coffee-site-"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		if cfg.Env == "prod" {
			logger.Fatal("aws config unavailable", zap.Error(err))
		}
		logger.Warn("aws config unavailable, uploads will fail", zap.Error(err))
	}
	return storage.NewUploader(s3.NewFromConfig(awsCfg), prefix, cfg.AWSRegion)
}

func newMailer(ctx context.Context, cfg config.Config, logger *zap.Logger) *notify.Mailer {
	if cfg.NotifyEmail == "" || cfg.NotifyFrom == "" {
		return nil
	}
	m, err := notify.NewMailer(ctx, cfg.AWSRegion, cfg.NotifyFrom, cfg.NotifyEmail)
	if err != nil {
		logger.Warn("mailer unavailable", zap.Error(err))
		return nil
	}
	return m
}
