package main

import (
	"context"
	"log"
	"os"
	"time"

	"bitewrap/internal/database"
	"bitewrap/internal/repository"
)

// Removes expired refresh tokens. Meant to run from cron.
func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	refreshRepo := repository.NewRefreshTokenRepository(db)

	deleted, err := refreshRepo.DeleteExpired(context.Background(), time.Now())
	if err != nil {
		log.Fatalf("cleanup refresh_tokens failed: %v", err)
	}

	log.Printf("auth cleanup completed: refresh_tokens=%d", deleted)
}
