package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	handlers "github.com/oksasatya/go-ddd-user-registry/internal/interface/http"
	"github.com/oksasatya/go-ddd-user-registry/internal/interface/middleware"
)

// UserModule serves the user registry under /Controller:
//
//	POST   /Controller            register
//	GET    /Controller            list
//	GET    /Controller/Id?id=     get
//	PATCH  /Controller/Id         update
//	DELETE /Controller/Id?id=     delete
//	GET    /Controller/search?q=  search
type UserModule struct {
	Handler   *handlers.UserHandler
	Redis     *redis.Client
	PerMinute int
	Logger    *logrus.Logger
}

func NewUserModule(h *handlers.UserHandler, rdb *redis.Client, perMinute int, logger *logrus.Logger) *UserModule {
	return &UserModule{Handler: h, Redis: rdb, PerMinute: perMinute, Logger: logger}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/Controller")
	g.Use(middleware.RateLimit(m.Redis, m.PerMinute, time.Minute, middleware.KeyByIPAndMethod(), middleware.AllowPrivateIP(), m.Logger))

	g.POST("", m.Handler.PostUser)
	g.GET("", m.Handler.ListUsers)
	g.GET("/Id", m.Handler.GetUser)
	g.PATCH("/Id", m.Handler.PatchUser)
	g.DELETE("/Id", m.Handler.DeleteUser)
	g.GET("/search", m.Handler.SearchUsers)
}
