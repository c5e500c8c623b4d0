package application

import (
	"context"

	repo "github.com/oksasatya/go-ddd-user-registry/internal/domain/repository"
	"github.com/oksasatya/go-ddd-user-registry/internal/domain/valueobject"
)

type UserGetService struct {
	Repo repo.UserRepository
}

func NewUserGetService(r repo.UserRepository) *UserGetService {
	return &UserGetService{Repo: r}
}

// Handle returns (nil, nil) when no user has the id.
func (s *UserGetService) Handle(ctx context.Context, cmd UserGetCommand) (*UserData, error) {
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
	data := NewUserData(u)
	return &data, nil
}
