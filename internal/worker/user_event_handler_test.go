package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-user-registry/internal/application"
)

type mockIndexer struct{ mock.Mock }

func (m *mockIndexer) Index(ctx context.Context, u application.UserData, at time.Time) error {
	return m.Called(ctx, u, at).Error(0)
}

func (m *mockIndexer) Delete(ctx context.Context, id string, deletedAt time.Time) error {
	return m.Called(ctx, id, deletedAt).Error(0)
}

type mockArchiver struct{ mock.Mock }

func (m *mockArchiver) Archive(ctx context.Context, u application.UserData, deletedAt time.Time) (string, error) {
	args := m.Called(ctx, u, deletedAt)
	return args.String(0), args.Error(1)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) Send(ctx context.Context, to, subject, text string) error {
	return m.Called(ctx, to, subject, text).Error(0)
}

var (
	alice = application.UserData{ID: "id-1", Name: "Alice"}
	at    = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
)

func TestHandle_RegisteredIndexesAndNotifies(t *testing.T) {
	idx := new(mockIndexer)
	idx.On("Index", mock.Anything, alice, at).Return(nil)
	mail := new(mockNotifier)
	mail.On("Send", mock.Anything, "ops@example.com", "[registry] user.registered: Alice", mock.AnythingOfType("string")).Return(nil)

	h := &UserEventHandler{Index: idx, Mail: mail, NotifyTo: "ops@example.com", AppName: "registry"}
	err := h.Handle(context.Background(), application.UserEvent{Type: application.UserRegistered, User: alice, OccurredAt: at})
	require.NoError(t, err)
	idx.AssertExpectations(t)
	mail.AssertExpectations(t)
}

func TestHandle_UpdatedIndexesWithoutMail(t *testing.T) {
	idx := new(mockIndexer)
	idx.On("Index", mock.Anything, alice, at).Return(nil)
	mail := new(mockNotifier)

	h := &UserEventHandler{Index: idx, Mail: mail, NotifyTo: "ops@example.com"}
	err := h.Handle(context.Background(), application.UserEvent{Type: application.UserUpdated, User: alice, OccurredAt: at})
	require.NoError(t, err)
	mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandle_IndexFailureAsksForRedelivery(t *testing.T) {
	idx := new(mockIndexer)
	idx.On("Index", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("es down"))

	h := &UserEventHandler{Index: idx}
	err := h.Handle(context.Background(), application.UserEvent{Type: application.UserRegistered, User: alice, OccurredAt: at})
	assert.Error(t, err)
}

func TestHandle_MailFailureIsSwallowed(t *testing.T) {
	mail := new(mockNotifier)
	mail.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	h := &UserEventHandler{Mail: mail, NotifyTo: "ops@example.com"}
	err := h.Handle(context.Background(), application.UserEvent{Type: application.UserRegistered, User: alice, OccurredAt: at})
	assert.NoError(t, err)
	mail.AssertExpectations(t)
}

func TestHandle_DeletedArchivesThenRemovesFromIndex(t *testing.T) {
	arc := new(mockArchiver)
	arc.On("Archive", mock.Anything, alice, at).Return("gs://bucket/deleted-users/2025/05/01/id-1.json", nil)
	idx := new(mockIndexer)
	idx.On("Delete", mock.Anything, "id-1", at).Return(nil)

	h := &UserEventHandler{Index: idx, Archive: arc}
	err := h.Handle(context.Background(), application.UserEvent{Type: application.UserDeleted, User: alice, OccurredAt: at})
	require.NoError(t, err)
	arc.AssertExpectations(t)
	idx.AssertExpectations(t)
}

func TestHandle_ArchiveFailureKeepsIndexEntry(t *testing.T) {
	arc := new(mockArchiver)
	arc.On("Archive", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bucket missing"))
	idx := new(mockIndexer)

	h := &UserEventHandler{Index: idx, Archive: arc}
	err := h.Handle(context.Background(), application.UserEvent{Type: application.UserDeleted, User: alice, OccurredAt: at})
	assert.Error(t, err)
	idx.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandle_UnknownEvent(t *testing.T) {
	h := &UserEventHandler{}
	err := h.Handle(context.Background(), application.UserEvent{Type: "user.renamed", User: alice})
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestDecode(t *testing.T) {
	evt, err := Decode([]byte(`{"type":"user.registered","user":{"id":"id-1","name":"Alice"},"occurred_at":"2025-05-01T12:00:00Z"}`))
	require.NoError(t, err)
	assert.Equal(t, application.UserRegistered, evt.Type)
	assert.Equal(t, alice, evt.User)
	assert.True(t, evt.OccurredAt.Equal(at))

	_, err = Decode([]byte(`not json`))
	assert.Error(t, err)

	_, err = Decode([]byte(`{"type":"user.registered","user":{}}`))
	assert.Error(t, err)
}
