// Command createsuperuser creates a staff/superuser account from the
// command line, for bootstrapping a fresh deployment.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"recipe-api/config"
	"recipe-api/internal/application"
	pginfra "recipe-api/internal/infrastructure/postgres"
	"recipe-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()

	email := flag.String("email", "", "superuser email (required)")
	password := flag.String("password", "", "superuser password (required)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-createsuperuser", cfg.Env)

	ctx := context.Background()
	pool, err := pginfra.WaitForPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife, cfg.DBWaitRetries, logger)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	svc := application.NewUserService(
		pginfra.NewUserRepository(pool),
		pginfra.NewTokenRepository(pool),
		nil, logger, nil, false, 0,
	)

	u, err := svc.CreateSuperuser(*email, *password)
	if err != nil {
		log.Fatalf("create superuser: %v", err)
	}
	logger.WithField("email", u.Email).Info("superuser created")
}
