package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"askroom/internal/config"
	"askroom/internal/database"
	"askroom/internal/server"
	"askroom/internal/store"
	"askroom/internal/transcribe"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connect error: %v", err)
	}
	defer db.Close()

	// Run migrations if files exist (RunMigrations is tolerant if dir missing)
	if err := database.RunMigrations(db, "migrations", log); err != nil {
		log.Fatalf("migrations error: %v", err)
	}

	transcriber, err := transcribe.NewGemini(context.Background(), cfg.GeminiAPIKey, log)
	if err != nil {
		log.Fatalf("transcriber error: %v", err)
	}

	srv := server.NewServer(cfg.Addr(), store.NewPostgres(db), transcriber, cfg.FrontendURL, log)
	if err := srv.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
