package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// RealIP sets the client IP into Gin context (key: "real_ip"), used by the rate
// limiter and request logs. Proxy headers are honored only when trustProxy is set:
// CF-Connecting-IP first, then the left-most X-Forwarded-For entry.
func RealIP(trustProxy bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("real_ip", resolveIP(c, trustProxy))
		c.Next()
	}
}

func resolveIP(c *gin.Context, trustProxy bool) string {
	if trustProxy {
		if cf := strings.TrimSpace(c.GetHeader("CF-Connecting-IP")); cf != "" {
			if ip := net.ParseIP(cf); ip != nil {
				return ip.String()
			}
		}
		if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
				return ip.String()
			}
		}
	}
	return c.ClientIP()
}
