package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/devconnector/pkg/response"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	DB Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{DB: db}
}

// Root answers GET / the way the original API did.
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "API running")
}

// Health reports whether the store answers within two seconds.
func (h *HealthHandler) Health(c *gin.Context) {
	if h.DB == nil {
		response.Error[any](c, http.StatusServiceUnavailable, "store not configured", nil)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.DB.Ping(ctx); err != nil {
		response.Error[any](c, http.StatusServiceUnavailable, "store unreachable", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"store": "ok"}, "healthy", nil)
}
