package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"askroom/internal/config"
	"askroom/internal/database"
	"askroom/internal/seed"
	"askroom/internal/store"
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

	if err := database.RunMigrations(db, "migrations", log); err != nil {
		log.Fatalf("migrations error: %v", err)
	}

	if err := seed.Run(context.Background(), store.NewPostgres(db), log); err != nil {
		log.Fatalf("seed error: %v", err)
	}
}
