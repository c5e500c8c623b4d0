package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-registry/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-registry/internal/domain/repository"
	"github.com/oksasatya/go-ddd-user-registry/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-user-registry/pkg/helpers"
)

type cachedUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func userKey(id string) string {
	return "user:data:" + id
}

// UserRepository is a read-through Redis cache in front of another
// repository. Only lookups by id are cached; every write evicts the entry.
// Redis failures degrade to the underlying repository.
type UserRepository struct {
	next   repository.UserRepository
	rdb    *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

func NewUserRepository(next repository.UserRepository, rdb *redis.Client, ttl time.Duration, logger *logrus.Logger) *UserRepository {
	return &UserRepository{next: next, rdb: rdb, ttl: ttl, logger: logger}
}

func (r *UserRepository) warn(err error, msg, key string) {
	if r.logger != nil {
		r.logger.WithError(err).WithField("key", key).Warn(msg)
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id valueobject.UserID) (*entity.User, error) {
	key := userKey(id.Value())
	var cu cachedUser
	hit, err := helpers.RedisGetJSON(ctx, r.rdb, key, &cu)
	if err != nil {
		r.warn(err, "user cache read failed", key)
	}
	if hit {
		if u, rErr := entity.Reconstruct(cu.ID, cu.Name); rErr == nil {
			return u, nil
		}
		r.evict(ctx, id.Value())
	}

	u, err := r.next.FindByID(ctx, id)
	if err != nil || u == nil {
		return u, err
	}
	if sErr := helpers.RedisSetJSON(ctx, r.rdb, key, cachedUser{ID: u.ID().Value(), Name: u.Name().Value()}, r.ttl); sErr != nil {
		r.warn(sErr, "user cache write failed", key)
	}
	return u, nil
}

func (r *UserRepository) FindByName(ctx context.Context, name valueobject.UserName) (*entity.User, error) {
	return r.next.FindByName(ctx, name)
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	return r.next.FindAll(ctx)
}

func (r *UserRepository) Save(ctx context.Context, u *entity.User) error {
	if err := r.next.Save(ctx, u); err != nil {
		return err
	}
	r.evict(ctx, u.ID().Value())
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, u *entity.User) error {
	if err := r.next.Delete(ctx, u); err != nil {
		return err
	}
	r.evict(ctx, u.ID().Value())
	return nil
}

func (r *UserRepository) evict(ctx context.Context, id string) {
	key := userKey(id)
	if err := helpers.RedisDel(ctx, r.rdb, key); err != nil {
		r.warn(err, "user cache evict failed", key)
	}
}

var _ repository.UserRepository = (*UserRepository)(nil)
