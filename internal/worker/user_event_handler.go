package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-registry/internal/application"
	"github.com/oksasatya/go-ddd-user-registry/pkg/mailer"
)

var ErrUnknownEvent = errors.New("unknown user event")

type Indexer interface {
	Index(ctx context.Context, u application.UserData, at time.Time) error
	Delete(ctx context.Context, id string, deletedAt time.Time) error
}

type Archiver interface {
	Archive(ctx context.Context, u application.UserData, deletedAt time.Time) (string, error)
}

type Notifier interface {
	Send(ctx context.Context, to, subject, text string) error
}

// UserEventHandler projects user events into the search index, the deleted
// user archive and operator mail. Every collaborator is optional.
type UserEventHandler struct {
	Index    Indexer
	Archive  Archiver
	Mail     Notifier
	NotifyTo string
	AppName  string
	Logger   *logrus.Logger
}

// Decode parses a queue message body into a UserEvent.
func Decode(body []byte) (application.UserEvent, error) {
	var evt application.UserEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		return evt, fmt.Errorf("decode user event: %w", err)
	}
	if evt.User.ID == "" {
		return evt, fmt.Errorf("decode user event: missing user id")
	}
	return evt, nil
}

// Handle returns an error when the event should be redelivered.
func (h *UserEventHandler) Handle(ctx context.Context, evt application.UserEvent) error {
	switch evt.Type {
	case application.UserRegistered, application.UserUpdated:
		if h.Index != nil {
			if err := h.Index.Index(ctx, evt.User, evt.OccurredAt); err != nil {
				return err
			}
		}
		if evt.Type == application.UserRegistered {
			h.notify(ctx, evt)
		}
	case application.UserDeleted:
		if h.Archive != nil {
			uri, err := h.Archive.Archive(ctx, evt.User, evt.OccurredAt)
			if err != nil {
				return err
			}
			if h.Logger != nil {
				h.Logger.WithFields(logrus.Fields{"user_id": evt.User.ID, "uri": uri}).Info("archived deleted user")
			}
		}
		if h.Index != nil {
			if err := h.Index.Delete(ctx, evt.User.ID, evt.OccurredAt); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, evt.Type)
	}
	return nil
}

// notify is best effort; a failed mail never causes redelivery.
func (h *UserEventHandler) notify(ctx context.Context, evt application.UserEvent) {
	if h.Mail == nil || h.NotifyTo == "" {
		return
	}
	subject, text, err := mailer.RenderNotice(mailer.UserNotice{
		AppName:    h.AppName,
		Event:      evt.Type,
		UserID:     evt.User.ID,
		UserName:   evt.User.Name,
		OccurredAt: evt.OccurredAt,
	})
	if err == nil {
		err = h.Mail.Send(ctx, h.NotifyTo, subject, text)
	}
	if err != nil && h.Logger != nil {
		h.Logger.WithError(err).WithField("user_id", evt.User.ID).Warn("user notification failed")
	}
}
