package messaging

import (
	"context"

	"github.com/oksasatya/go-ddd-user-registry/internal/application"
)

// JSONPublisher is satisfied by helpers.RabbitPublisher.
type JSONPublisher interface {
	PublishJSON(ctx context.Context, messageType string, body any) error
}

// UserEventPublisher sends user events to the user events queue.
type UserEventPublisher struct {
	pub JSONPublisher
}

func NewUserEventPublisher(pub JSONPublisher) *UserEventPublisher {
	return &UserEventPublisher{pub: pub}
}

func (p *UserEventPublisher) Publish(ctx context.Context, evt application.UserEvent) error {
	return p.pub.PublishJSON(ctx, evt.Type, evt)
}

var _ application.EventPublisher = (*UserEventPublisher)(nil)
