package main

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-user-registry/internal/application"
	"github.com/oksasatya/go-ddd-user-registry/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-registry/internal/domain/service"
	"github.com/oksasatya/go-ddd-user-registry/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-user-registry/internal/mocks"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, evt application.UserEvent) error {
	return m.Called(ctx, evt).Error(0)
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestSeedUsers_PublishesRegisteredEvents(t *testing.T) {
	logger := quietLogger()
	repo := new(mocks.UserRepository)
	pub := new(mockPublisher)

	existing, err := entity.CreateUser("Alice")
	require.NoError(t, err)

	repo.On("FindByName", mock.Anything, mock.MatchedBy(func(n valueobject.UserName) bool { return n.Value() == "Alice" })).Return(existing, nil)
	repo.On("FindByName", mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(e application.UserEvent) bool {
		return e.Type == application.UserRegistered && e.User.Name == "Bob"
	})).Return(nil).Once()

	register := application.NewUserRegisterService(repo, service.NewUserService(repo, logger), pub, logger)
	require.NoError(t, seedUsers(context.Background(), register, []string{"Alice", "Bob"}, logger))

	pub.AssertExpectations(t)
	repo.AssertNumberOfCalls(t, "Save", 1)
}

func TestSeedUsers_InvalidNameStops(t *testing.T) {
	logger := quietLogger()
	repo := new(mocks.UserRepository)
	pub := new(mockPublisher)

	register := application.NewUserRegisterService(repo, service.NewUserService(repo, logger), pub, logger)
	err := seedUsers(context.Background(), register, []string{"ab", "Bob"}, logger)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `seed "ab"`)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
