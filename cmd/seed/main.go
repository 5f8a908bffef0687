package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/devconnector/config"
	userapp "github.com/oksasatya/devconnector/internal/application"
	"github.com/oksasatya/devconnector/internal/container"
	pginfra "github.com/oksasatya/devconnector/internal/infrastructure/postgres"
	"github.com/oksasatya/devconnector/internal/router"
	"github.com/oksasatya/devconnector/pkg/helpers"
)

// seed registers a demo user through the same workflow the API uses.
func main() {
	name := flag.String("name", "Demo User", "display name")
	email := flag.String("email", "demo@devconnector.local", "email address")
	password := flag.String("password", "password123", "plaintext password")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	// Seeding never needs a token; user mode also works without JWT_SECRET.
	cfg.RegisterResponseMode = config.ModeUser
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), 2, 1, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	c := &container.Container{Config: cfg, Logger: logger, PGPool: pool}
	svc := router.NewRegistrationService(c, pginfra.NewUserRepository(pool))

	res, err := svc.Register(ctx, userapp.RegisterInput{Name: *name, Email: *email, Password: *password})
	switch {
	case errors.Is(err, userapp.ErrUserExists):
		fmt.Printf("user %s already seeded\n", *email)
		return
	case err != nil:
		log.Fatalf("failed to seed user: %v", err)
	}
	// read the record back to confirm it was persisted
	u, err := svc.UserByID(ctx, res.User.ID)
	if err != nil {
		log.Fatalf("failed to read back seeded user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s name=%s avatar=%s\n", u.ID, u.Email, u.Name, u.AvatarURL)
}
