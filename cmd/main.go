package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/oksasatya/go-ddd-user-registry/config"
	"github.com/oksasatya/go-ddd-user-registry/internal/container"
	pginfra "github.com/oksasatya/go-ddd-user-registry/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-user-registry/internal/infrastructure/search"
	"github.com/oksasatya/go-ddd-user-registry/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-user-registry/internal/router"
	"github.com/oksasatya/go-ddd-user-registry/pkg/helpers"
	"github.com/oksasatya/go-ddd-user-registry/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()
	c := container.New(cfg, logger)
	defer c.Close()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	c.PGPool = pool

	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	c.Redis = helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	// Search and events are optional; the registry works without them.
	if addrs := cfg.ESAddrs(); len(addrs) > 0 {
		es, err := helpers.NewESClient(addrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass)
		if err != nil {
			logger.WithError(err).Warn("elasticsearch disabled")
		} else {
			c.ES = es
			if err := helpers.EnsureESIndex(ctx, es, cfg.ESUsersIndex, search.UsersIndexMapping); err != nil {
				logger.WithError(err).Warn("failed to ensure users index")
			}
		}
	}
	if cfg.RabbitMQURL != "" {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQUserEventsQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq disabled, user events will not be published")
		} else {
			c.RabbitPub = pub
		}
	}

	trusted, err := middleware.ParseTrustedProxies(cfg.TrustedProxyList())
	if err != nil {
		log.Fatalf("invalid TRUSTED_PROXIES: %v", err)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxyList()); err != nil {
		log.Fatalf("invalid TRUSTED_PROXIES: %v", err)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(), middleware.RealIP(trusted))
	r.Use(middleware.CORS(cfg.CORSOrigins()))
	if cfg.HTTPLogEnabled {
		r.Use(middleware.AccessLog(logger))
	}

	reg := router.NewRegistry(r)
	router.InitModules(reg, c)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Errorf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
