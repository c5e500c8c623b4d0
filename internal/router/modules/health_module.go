package modules

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-user-registry/pkg/response"
)

type HealthModule struct {
	ping func(ctx context.Context) error
}

// NewHealthModule serves /health; ping reports whether backing stores answer.
func NewHealthModule(ping func(ctx context.Context) error) *HealthModule {
	return &HealthModule{ping: ping}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if m.ping != nil {
			if err := m.ping(ctx); err != nil {
				response.Error[any](c, http.StatusServiceUnavailable, "unhealthy", map[string]string{"reason": err.Error()})
				return
			}
		}
		response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "healthy", nil)
	})
}
