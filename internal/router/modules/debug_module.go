package modules

import (
	"expvar"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-user-registry/internal/interface/middleware"
)

// DebugModule serves expvar at /debug/vars to private addresses only.
type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rg.GET("/debug/vars", middleware.OnlyPrivateIP(), gin.WrapH(expvar.Handler()))
}
