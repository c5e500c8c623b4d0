package application

import (
	"context"

	"github.com/sirupsen/logrus"

	repo "github.com/oksasatya/go-ddd-user-registry/internal/domain/repository"
	"github.com/oksasatya/go-ddd-user-registry/internal/domain/valueobject"
)

type UserDeleteService struct {
	Repo      repo.UserRepository
	Publisher EventPublisher
	Logger    *logrus.Logger
}

func NewUserDeleteService(r repo.UserRepository, pub EventPublisher, logger *logrus.Logger) *UserDeleteService {
	return &UserDeleteService{Repo: r, Publisher: pub, Logger: logger}
}

// Handle deletes the user and returns its last snapshot.
func (s *UserDeleteService) Handle(ctx context.Context, cmd UserDeleteCommand) (*UserData, error) {
	id, err := valueobject.NewUserID(cmd.ID)
	if err != nil {
		return nil, err
	}
	u, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if err := s.Repo.Delete(ctx, u); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", id.Value()).Error("delete user failed")
		}
		return nil, err
	}

	data := NewUserData(u)
	publishUserEvent(ctx, s.Publisher, s.Logger, UserDeleted, data)
	return &data, nil
}
