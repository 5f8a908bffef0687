package router

import (
	"github.com/oksasatya/devconnector/config"
	userapp "github.com/oksasatya/devconnector/internal/application"
	"github.com/oksasatya/devconnector/internal/container"
	repouser "github.com/oksasatya/devconnector/internal/domain/repository"
	pginfra "github.com/oksasatya/devconnector/internal/infrastructure/postgres"
	"github.com/oksasatya/devconnector/internal/infrastructure/queue"
	"github.com/oksasatya/devconnector/internal/infrastructure/search"
	handlers "github.com/oksasatya/devconnector/internal/interface/http"
	"github.com/oksasatya/devconnector/internal/router/modules"
	"github.com/oksasatya/devconnector/pkg/helpers"
)

type UserModuleDeps struct {
	Repo    repouser.UserRepository
	Service *userapp.Service
	Handler *handlers.UserHandler
}

// RegistrationOptions maps configuration onto the workflow options.
func RegistrationOptions(cfg *config.Config) userapp.Options {
	return userapp.Options{
		Mode:         userapp.ResponseMode(cfg.RegisterResponseMode),
		BcryptCost:   cfg.BcryptCost,
		StoreTimeout: cfg.StoreTimeout,
		Avatar: helpers.AvatarOptions{
			Size:    cfg.AvatarSize,
			Rating:  cfg.AvatarRating,
			Default: cfg.AvatarDefault,
		},
	}
}

// NewRegistrationService builds the workflow from the container's clients.
// Disabled follow-ups stay nil so the workflow skips them.
func NewRegistrationService(c *container.Container, repo repouser.UserRepository) *userapp.Service {
	var indexer userapp.UserIndexer
	if c.ES != nil {
		indexer = search.NewUserIndex(c.ES, c.Config.ESUsersIndex)
	}
	var notifier userapp.WelcomeNotifier
	if c.RabbitPub != nil && c.Config.MailSendEnabled {
		notifier = queue.NewWelcomePublisher(c.RabbitPub, c.Config.AppName, true)
	}
	var signer userapp.TokenSigner
	if c.JWT != nil {
		signer = c.JWT
	}
	return userapp.NewService(repo, signer, indexer, notifier, c.Logger, RegistrationOptions(c.Config))
}

func buildUserDeps(c *container.Container) UserModuleDeps {
	repo := pginfra.NewUserRepository(c.PGPool)
	service := NewRegistrationService(c, repo)
	handler := handlers.NewUserHandler(service, c.Logger)

	return UserModuleDeps{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry, c *container.Container) {
	health := handlers.NewHealthHandler(nil)
	if c.PGPool != nil {
		health = handlers.NewHealthHandler(c.PGPool)
	}
	r.Engine.GET("/", health.Root)
	r.Add(modules.NewHealthModule(health))

	userDeps := buildUserDeps(c)
	r.Add(modules.NewUserModule(userDeps.Handler, c.Redis, c.Config.RegisterRateLimit, c.Config.RegisterRateWindow))

	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(c.Redis))
	}
}
