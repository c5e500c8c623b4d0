package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-registry/internal/application"
)

// seedUsers registers each name once; names already taken are skipped.
func seedUsers(ctx context.Context, register *application.UserRegisterService, names []string, logger *logrus.Logger) error {
	for _, name := range names {
		u, err := register.Handle(ctx, application.UserRegisterCommand{Name: name})
		switch {
		case errors.Is(err, application.ErrDuplicateUser):
			logger.WithField("name", name).Info("user already seeded")
		case err != nil:
			return fmt.Errorf("seed %q: %w", name, err)
		default:
			logger.WithFields(logrus.Fields{"id": u.ID, "name": u.Name}).Info("seeded user")
		}
	}
	return nil
}
