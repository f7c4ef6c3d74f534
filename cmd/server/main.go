package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/worksite/onsite_backend/config"
	"github.com/worksite/onsite_backend/db"
	"github.com/worksite/onsite_backend/internal/routes"
)

func main() {
	cfg := config.NewConfig()

	// Missing secrets are fatal misconfigurations; refuse to start rather
	// than fail lazily per request.
	if cfg.JwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	if cfg.SupervisorToken == "" {
		log.Fatal("SUPERVISOR_TOKEN is not set")
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	database := db.InitDB(cfg.DatabaseURL, cfg.DatabaseSSL)
	defer database.Close()

	redisClient := config.NewRedisClient(cfg)
	defer redisClient.Close()

	router := routes.Setup(cfg, database, redisClient)

	serverAddress := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("API listening on %s", serverAddress)
	log.Fatal(http.ListenAndServe(serverAddress, router))
}
