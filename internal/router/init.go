package router

import (
	"github.com/oksasatya/go-ddd-user-registry/internal/application"
	"github.com/oksasatya/go-ddd-user-registry/internal/container"
	"github.com/oksasatya/go-ddd-user-registry/internal/domain/service"
	handlers "github.com/oksasatya/go-ddd-user-registry/internal/interface/http"
	"github.com/oksasatya/go-ddd-user-registry/internal/router/modules"
)

func buildUserHandler(c *container.Container) *handlers.UserHandler {
	repo := c.UserRepository()
	pub := c.EventPublisher()
	users := service.NewUserService(repo, c.Logger)

	return &handlers.UserHandler{
		Register: application.NewUserRegisterService(repo, users, pub, c.Logger),
		Get:      application.NewUserGetService(repo),
		GetAll:   application.NewUserGetAllService(repo),
		Update:   application.NewUserUpdateService(repo, users, pub, c.Logger),
		Delete:   application.NewUserDeleteService(repo, pub, c.Logger),
		Search:   application.NewUserSearchService(c.UserSearcher()),
		Logger:   c.Logger,
	}
}

// InitModules builds every module from c and adds it to the registry.
// Call once during startup.
func InitModules(r *Registry, c *container.Container) {
	r.Add(modules.NewHealthModule(c.Ping))
	r.Add(modules.NewUserModule(buildUserHandler(c), c.Redis, c.Config.RateLimitPerMinute, c.Logger))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
