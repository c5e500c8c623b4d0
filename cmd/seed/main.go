package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-ddd-user-registry/config"
	"github.com/oksasatya/go-ddd-user-registry/internal/application"
	"github.com/oksasatya/go-ddd-user-registry/internal/container"
	"github.com/oksasatya/go-ddd-user-registry/internal/domain/service"
	pginfra "github.com/oksasatya/go-ddd-user-registry/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-user-registry/pkg/helpers"
)

var demoUsers = []string{"demoUser", "Alice", "Bob", "田中太郎"}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx := context.Background()
	c := container.New(cfg, logger)
	defer c.Close()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), 2, 1, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	c.PGPool = pool
	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	// Seeded users reach the search index through the event worker.
	if cfg.RabbitMQURL != "" {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQUserEventsQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq disabled, seeded users will not be indexed")
		} else {
			c.RabbitPub = pub
		}
	}

	// Seeding goes through the register use case so the duplicate rule holds.
	repo := c.UserRepository()
	register := application.NewUserRegisterService(repo, service.NewUserService(repo, logger), c.EventPublisher(), logger)

	if err := seedUsers(ctx, register, demoUsers, logger); err != nil {
		log.Fatalf("%v", err)
	}
}
