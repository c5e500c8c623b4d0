package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-registry/config"
	"github.com/oksasatya/go-ddd-user-registry/internal/infrastructure/archive"
	"github.com/oksasatya/go-ddd-user-registry/internal/infrastructure/search"
	"github.com/oksasatya/go-ddd-user-registry/internal/worker"
	"github.com/oksasatya/go-ddd-user-registry/pkg/helpers"
	"github.com/oksasatya/go-ddd-user-registry/pkg/mailer"
)

const handleTimeout = 15 * time.Second

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-worker", cfg.Env)

	if cfg.RabbitMQURL == "" || cfg.RabbitMQUserEventsQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	h := &worker.UserEventHandler{AppName: cfg.AppName, Logger: logger}

	if addrs := cfg.ESAddrs(); len(addrs) > 0 {
		es, err := helpers.NewESClient(addrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
		if err := helpers.EnsureESIndex(ctx, es, cfg.ESUsersIndex, search.UsersIndexMapping); err != nil {
			log.Fatalf("ensure index %s: %v", cfg.ESUsersIndex, err)
		}
		h.Index = search.NewUserIndex(es, cfg.ESUsersIndex)
	}

	if cfg.GCSBucket != "" {
		gcs, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			log.Fatalf("failed to init GCS client: %v", err)
		}
		defer func() { _ = gcs.Close() }()
		h.Archive = archive.NewSnapshotArchive(gcs, cfg.GCSBucket)
	}

	if cfg.MailConfigured() {
		h.Mail = mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
		h.NotifyTo = cfg.MailNotifyTo
	} else {
		logger.Info("registration notices disabled")
	}

	consumer, msgs, err := helpers.NewRabbitConsumer(cfg.RabbitMQURL, cfg.RabbitMQUserEventsQueue, 16)
	if err != nil {
		log.Fatalf("amqp consume: %v", err)
	}
	defer consumer.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range msgs {
			evt, err := worker.Decode(msg.Body)
			if err != nil {
				logger.WithError(err).Warn("dropping bad message")
				_ = msg.Nack(false, false)
				continue
			}

			c, cancel := context.WithTimeout(context.Background(), handleTimeout)
			err = h.Handle(c, evt)
			cancel()

			fields := logrus.Fields{"type": evt.Type, "user_id": evt.User.ID}
			switch {
			case errors.Is(err, worker.ErrUnknownEvent):
				logger.WithFields(fields).Warn("dropping unknown event")
				_ = msg.Nack(false, false)
			case err != nil:
				logger.WithError(err).WithFields(fields).Error("handle failed, requeueing")
				_ = msg.Nack(false, true)
			default:
				logger.WithFields(fields).Debug("event handled")
				_ = msg.Ack(false)
			}
		}
	}()

	logger.Infof("event worker listening on queue=%s", cfg.RabbitMQUserEventsQueue)
	select {
	case <-ctx.Done():
		logger.Info("shutting down...")
		consumer.Close()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
	case <-done:
		logger.Warn("delivery channel closed")
	}
}
