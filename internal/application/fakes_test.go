package application_test

import (
	"context"
	"io"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/go-ddd-user-registry/internal/application"
	"github.com/oksasatya/go-ddd-user-registry/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-registry/internal/domain/valueobject"
)

// memoryRepo is a map-backed repository for round-trip tests.
type memoryRepo struct {
	mu    sync.Mutex
	rows  map[string]string // id -> name
	saves int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{rows: map[string]string{}}
}

func (r *memoryRepo) FindByID(_ context.Context, id valueobject.UserID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok := r.rows[id.Value()]
	if !ok {
		return nil, nil
	}
	return entity.Reconstruct(id.Value(), name)
}

func (r *memoryRepo) FindByName(_ context.Context, name valueobject.UserName) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, n := range r.rows {
		if n == name.Value() {
			return entity.Reconstruct(id, n)
		}
	}
	return nil, nil
}

func (r *memoryRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*entity.User, 0, len(ids))
	for _, id := range ids {
		u, err := entity.Reconstruct(id, r.rows[id])
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *memoryRepo) Save(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	r.rows[u.ID().Value()] = u.Name().Value()
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, u.ID().Value())
	return nil
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, evt application.UserEvent) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func strPtr(s string) *string { return &s }
