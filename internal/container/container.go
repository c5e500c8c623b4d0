package container

import (
	"context"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-registry/config"
	"github.com/oksasatya/go-ddd-user-registry/internal/application"
	"github.com/oksasatya/go-ddd-user-registry/internal/domain/repository"
	"github.com/oksasatya/go-ddd-user-registry/internal/infrastructure/cache"
	"github.com/oksasatya/go-ddd-user-registry/internal/infrastructure/messaging"
	pginfra "github.com/oksasatya/go-ddd-user-registry/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-user-registry/internal/infrastructure/search"
	"github.com/oksasatya/go-ddd-user-registry/pkg/helpers"
)

// Container holds the clients built once at startup. It is passed explicitly
// to whoever needs it; optional clients are nil when not configured.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger

	PGPool    *pgxpool.Pool
	Redis     *redis.Client
	ES        *elasticsearch.Client
	GCS       *storage.Client
	RabbitPub *helpers.RabbitPublisher
}

func New(cfg *config.Config, logger *logrus.Logger) *Container {
	return &Container{Config: cfg, Logger: logger}
}

// Close releases every client that was set.
func (c *Container) Close() {
	if c.RabbitPub != nil {
		c.RabbitPub.Close()
	}
	if c.GCS != nil {
		_ = c.GCS.Close()
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.PGPool != nil {
		c.PGPool.Close()
	}
}

// Ping reports the first unreachable backing store.
func (c *Container) Ping(ctx context.Context) error {
	if c.PGPool != nil {
		if err := c.PGPool.Ping(ctx); err != nil {
			return err
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Ping(ctx).Err(); err != nil {
			return err
		}
	}
	return nil
}

// UserRepository is postgres, fronted by the redis read cache when redis is
// set and USER_CACHE_TTL is positive.
func (c *Container) UserRepository() repository.UserRepository {
	var repo repository.UserRepository = pginfra.NewUserRepository(c.PGPool)
	if c.Redis != nil && c.Config.UserCacheTTL > 0 {
		repo = cache.NewUserRepository(repo, c.Redis, c.Config.UserCacheTTL, c.Logger)
	}
	return repo
}

// EventPublisher returns nil when RabbitMQ is not connected.
func (c *Container) EventPublisher() application.EventPublisher {
	if c.RabbitPub == nil {
		return nil
	}
	return messaging.NewUserEventPublisher(c.RabbitPub)
}

// UserSearcher returns nil when Elasticsearch is not configured.
func (c *Container) UserSearcher() application.UserSearcher {
	if c.ES == nil {
		return nil
	}
	return search.NewUserIndex(c.ES, c.Config.ESUsersIndex)
}
