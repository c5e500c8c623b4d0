package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-registry/internal/domain/repository"
	"github.com/oksasatya/go-ddd-user-registry/internal/domain/valueobject"
)

// UserService holds user rules that span more than one User.
type UserService struct {
	Repo   repository.UserRepository
	Logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Logger: logger}
}

// Exists reports whether some user already holds name.
//
// A repository failure is reported as "does not exist". Registration stays
// available when the store is flaky, at the cost of letting a duplicate
// through in that window.
func (s *UserService) Exists(ctx context.Context, name valueobject.UserName) bool {
	found, err := s.Repo.FindByName(ctx, name)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("name", name.Value()).Warn("duplicate check failed, treating name as free")
		}
		return false
	}
	return found != nil
}
