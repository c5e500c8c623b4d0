package application

import (
	"context"
	"strings"
)

// UserSearcher queries the user search projection.
type UserSearcher interface {
	Search(ctx context.Context, query string, size int) ([]UserData, error)
}

type UserSearchService struct {
	Searcher UserSearcher
}

func NewUserSearchService(s UserSearcher) *UserSearchService {
	return &UserSearchService{Searcher: s}
}

const (
	defaultSearchSize = 10
	maxSearchSize     = 50
)

// Handle returns an empty result when no search backend is configured or the
// query is blank.
func (s *UserSearchService) Handle(ctx context.Context, cmd UserSearchCommand) ([]UserData, error) {
	q := strings.TrimSpace(cmd.Query)
	if s.Searcher == nil || q == "" {
		return []UserData{}, nil
	}
	size := cmd.Size
	if size <= 0 || size > maxSearchSize {
		size = defaultSearchSize
	}
	return s.Searcher.Search(ctx, q, size)
}
