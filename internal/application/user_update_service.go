package application

import (
	"context"

	"github.com/sirupsen/logrus"

	repo "github.com/oksasatya/go-ddd-user-registry/internal/domain/repository"
	"github.com/oksasatya/go-ddd-user-registry/internal/domain/service"
	"github.com/oksasatya/go-ddd-user-registry/internal/domain/valueobject"
)

type UserUpdateService struct {
	Repo        repo.UserRepository
	UserService *service.UserService
	Publisher   EventPublisher
	Logger      *logrus.Logger
}

func NewUserUpdateService(r repo.UserRepository, us *service.UserService, pub EventPublisher, logger *logrus.Logger) *UserUpdateService {
	return &UserUpdateService{Repo: r, UserService: us, Publisher: pub, Logger: logger}
}

// Handle applies a partial update. It returns (nil, nil) when the user does
// not exist and ErrDuplicateUser when another user already holds the new name.
func (s *UserUpdateService) Handle(ctx context.Context, cmd UserUpdateCommand) (*UserData, error) {
	id, err := valueobject.NewUserID(cmd.ID)
	if err != nil {
		return nil, err
	}
	u, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}

	if cmd.Name != nil {
		newName, err := valueobject.NewUserName(*cmd.Name)
		if err != nil {
			return nil, err
		}
		// keeping the current name is not a conflict with another user
		if !newName.Equals(u.Name()) {
			if s.UserService.Exists(ctx, newName) {
				return nil, ErrDuplicateUser
			}
			if err := u.ChangeName(newName.Value()); err != nil {
				return nil, err
			}
		}
	}
	if cmd.Email != nil {
		u.ChangeMailAddress(*cmd.Email)
	}

	if err := s.Repo.Save(ctx, u); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID().Value()).Error("save user failed")
		}
		return nil, err
	}

	data := NewUserData(u)
	publishUserEvent(ctx, s.Publisher, s.Logger, UserUpdated, data)
	return &data, nil
}
