package main

import (
	"context"
	"errors"
	"os"

	"zyberian-site/internal/config"
	"zyberian-site/internal/database"
	"zyberian-site/internal/logger"
)

// seed создаёт администратора из ADMIN_USERNAME / ADMIN_PASSWORD.
func main() {
	log := logger.NewLogger("seed")

	cfg, err := config.Load(os.Args[1:])
	// сессии сиду не нужны
	if err != nil && (cfg == nil || !errors.Is(err, config.ErrNoSessionSecret) || errors.Is(err, config.ErrNoDatabaseURL)) {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		log.Fatal().Msg("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}

	ctx := context.Background()

	db, err := database.Open(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}
	defer sqlDB.Close()

	if err := database.Migrate(sqlDB); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	created, err := database.SeedAdmin(ctx, database.NewStorage(db), cfg.Admin.Username, cfg.Admin.Password, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin")
	}
	log.Info().Bool("created", created).Msg("seed finished")
}
