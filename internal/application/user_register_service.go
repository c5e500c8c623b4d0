package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-registry/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-user-registry/internal/domain/repository"
	"github.com/oksasatya/go-ddd-user-registry/internal/domain/service"
)

type UserRegisterService struct {
	Repo        repo.UserRepository
	UserService *service.UserService
	Publisher   EventPublisher
	Logger      *logrus.Logger
}

func NewUserRegisterService(r repo.UserRepository, us *service.UserService, pub EventPublisher, logger *logrus.Logger) *UserRegisterService {
	return &UserRegisterService{Repo: r, UserService: us, Publisher: pub, Logger: logger}
}

// Handle registers a new user. The uniqueness check and the insert are not
// atomic: two concurrent registrations of one name can both succeed.
func (s *UserRegisterService) Handle(ctx context.Context, cmd UserRegisterCommand) (*UserData, error) {
	u, err := entity.CreateUser(cmd.Name)
	if err != nil {
		return nil, err
	}
	if s.UserService.Exists(ctx, u.Name()) {
		return nil, ErrDuplicateUser
	}
	if err := s.Repo.Save(ctx, u); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID().Value()).Error("save user failed")
		}
		return nil, err
	}

	data := NewUserData(u)
	publishUserEvent(ctx, s.Publisher, s.Logger, UserRegistered, data)
	return &data, nil
}
