package application

import (
	"context"

	repo "github.com/oksasatya/go-ddd-user-registry/internal/domain/repository"
)

type UserGetAllService struct {
	Repo repo.UserRepository
}

func NewUserGetAllService(r repo.UserRepository) *UserGetAllService {
	return &UserGetAllService{Repo: r}
}

// Handle returns nil when the repository reports no collection, and an empty
// slice when the collection exists but holds no users.
func (s *UserGetAllService) Handle(ctx context.Context) ([]UserData, error) {
	users, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		return nil, nil
	}
	out := make([]UserData, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserData(u))
	}
	return out, nil
}
