package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-user-registry/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-registry/internal/domain/valueobject"
)

// CircleRepository defines circle persistence. No adapter implements it yet.
type CircleRepository interface {
	Save(ctx context.Context, c *entity.Circle) error
	FindByID(ctx context.Context, id valueobject.CircleID) (*entity.Circle, error)
	FindByName(ctx context.Context, name valueobject.CircleName) (*entity.Circle, error)
}
