package main

import (
	"time"

	"agronomy-services-api-server/config"
	"agronomy-services-api-server/internal/api/routes"
	"agronomy-services-api-server/internal/auth"
	"agronomy-services-api-server/internal/database"
	"agronomy-services-api-server/internal/logger"
	"agronomy-services-api-server/internal/notify"
	"agronomy-services-api-server/internal/store"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log := logger.Get()
	defer log.Sync()

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatal("could not load config", zap.Error(err))
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	ttl, err := time.ParseDuration(cfg.JWT.Expiration)
	if err != nil {
		log.Fatal("invalid jwt expiration", zap.String("expiration", cfg.JWT.Expiration), zap.Error(err))
	}
	auth.Init(cfg.JWT.Secret, ttl)

	st := store.New(cfg.Store.Path)
	st.Load()

	if err := database.SeedDemoData(st); err != nil {
		log.Fatal("could not seed demo data", zap.Error(err))
	}

	dispatcher := notify.NewDispatcher(cfg)

	router := routes.SetupRouter(st, dispatcher, cfg)

	log.Info("starting API server", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("failed to run server", zap.Error(err))
	}
}
