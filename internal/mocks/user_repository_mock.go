package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/go-ddd-user-registry/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-registry/internal/domain/repository"
	"github.com/oksasatya/go-ddd-user-registry/internal/domain/valueobject"
)

// UserRepository is a testify mock of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByID(ctx context.Context, id valueobject.UserID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*entity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) FindByName(ctx context.Context, name valueobject.UserName) (*entity.User, error) {
	args := m.Called(ctx, name)
	if u, ok := args.Get(0).(*entity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*entity.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) Save(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepository) Delete(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

var _ repository.UserRepository = (*UserRepository)(nil)
