// @title LingoRoots API
// @version 1.0
// @description Backend server for the LingoRoots language learning platform.

// @contact.name API Support
// @contact.email support@lingoroots.app

// @license.name MIT

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"github.com/KINGAKWO/lingoRoots-sub000/internal/app"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/config"
	"github.com/KINGAKWO/lingoRoots-sub000/pkg/configwatcher"
	"github.com/KINGAKWO/lingoRoots-sub000/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	migrate := flag.Bool("migrate", false, "force database migrations on startup")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(updated interface{}) {
		if c, ok := updated.(*config.Config); ok {
			application.ApplyConfig(c)
		}
	})

	application.Run()
}
