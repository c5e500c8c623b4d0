package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-user-registry/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-registry/internal/domain/valueobject"
)

// UserRepository is the only persistence boundary of the user domain.
// Lookups return (nil, nil) when nothing matches; a non-nil error always
// means the store could not answer.
type UserRepository interface {
	FindByID(ctx context.Context, id valueobject.UserID) (*entity.User, error)
	FindByName(ctx context.Context, name valueobject.UserName) (*entity.User, error)
	// FindAll returns a nil slice when the store reports no collection at all.
	FindAll(ctx context.Context) ([]*entity.User, error)
	// Save inserts the user or overwrites the row with the same id.
	Save(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, u *entity.User) error
}
