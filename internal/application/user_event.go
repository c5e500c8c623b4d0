package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	UserRegistered = "user.registered"
	UserUpdated    = "user.updated"
	UserDeleted    = "user.deleted"
)

// UserEvent is emitted after a user write has been persisted.
type UserEvent struct {
	Type       string    `json:"type"`
	User       UserData  `json:"user"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher delivers user events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, evt UserEvent) error
}

// publishUserEvent never fails the calling use case; the write already happened.
func publishUserEvent(ctx context.Context, pub EventPublisher, logger *logrus.Logger, typ string, data UserData) {
	if pub == nil {
		return
	}
	evt := UserEvent{Type: typ, User: data, OccurredAt: time.Now().UTC()}
	if err := pub.Publish(ctx, evt); err != nil && logger != nil {
		logger.WithError(err).WithFields(logrus.Fields{"event": typ, "user_id": data.ID}).Warn("publish user event failed")
	}
}
