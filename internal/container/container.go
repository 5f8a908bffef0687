package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/devconnector/config"
	"github.com/oksasatya/devconnector/internal/infrastructure/queue"
	"github.com/oksasatya/devconnector/pkg/helpers"
)

// Container holds the process-wide singletons built once in main and handed
// to the router. Optional clients are nil when their feature is disabled.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	PGPool *pgxpool.Pool
	Redis  *redis.Client
	JWT    *helpers.JWTManager

	ES        *elasticsearch.Client
	RabbitPub *queue.RabbitPublisher
}

// Close releases every client the container owns.
func (c *Container) Close() {
	if c.RabbitPub != nil {
		c.RabbitPub.Close()
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.PGPool != nil {
		c.PGPool.Close()
	}
}
