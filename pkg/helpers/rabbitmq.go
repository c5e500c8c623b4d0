package helpers

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

func declareQueue(ch *amqp.Channel, queue string) error {
	_, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	return err
}

func dialChannel(url, queue string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	if err := declareQueue(ch, queue); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, err
	}
	return conn, ch, nil
}

// RabbitPublisher wraps an AMQP channel and a durable queue for publishing.
type RabbitPublisher struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	Queue string
}

func NewRabbitPublisher(url, queue string) (*RabbitPublisher, error) {
	conn, ch, err := dialChannel(url, queue)
	if err != nil {
		return nil, err
	}
	return &RabbitPublisher{conn: conn, ch: ch, Queue: queue}, nil
}

func (p *RabbitPublisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// PublishJSON publishes a persistent JSON message to the queue through the default exchange.
func (p *RabbitPublisher) PublishJSON(ctx context.Context, messageType string, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.Queue, // routing key = queue
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Type:         messageType,
			Body:         b,
		},
	)
}

// RabbitConsumer holds the connection behind a delivery stream.
type RabbitConsumer struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewRabbitConsumer declares queue and starts a manual-ack consumer on it.
func NewRabbitConsumer(url, queue string, prefetch int) (*RabbitConsumer, <-chan amqp.Delivery, error) {
	conn, ch, err := dialChannel(url, queue)
	if err != nil {
		return nil, nil, err
	}
	c := &RabbitConsumer{conn: conn, ch: ch}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		c.Close()
		return nil, nil, err
	}
	msgs, err := ch.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		c.Close()
		return nil, nil, err
	}
	return c, msgs, nil
}

func (c *RabbitConsumer) Close() {
	if c == nil {
		return
	}
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}
