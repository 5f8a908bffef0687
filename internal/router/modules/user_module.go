package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/devconnector/internal/interface/http"
	"github.com/oksasatya/devconnector/internal/interface/middleware"
)

// UserModule wires registration into routes.
// Public: POST /api/users
type UserModule struct {
	Handler    *handlers.UserHandler
	Redis      *redis.Client
	RateLimit  int
	RateWindow time.Duration
}

func NewUserModule(h *handlers.UserHandler, rdb *redis.Client, limit int, window time.Duration) *UserModule {
	return &UserModule{Handler: h, Redis: rdb, RateLimit: limit, RateWindow: window}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(m.Redis, m.RateLimit, m.RateWindow, middleware.KeyByIPAndPath(), nil)
	rg.POST("/users", registerLimiter, m.Handler.Register)
}
