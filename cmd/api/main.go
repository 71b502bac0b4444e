package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jobor-Marho/django-receipe-app-api/config"
	"github.com/Jobor-Marho/django-receipe-app-api/internal/database"
	"github.com/Jobor-Marho/django-receipe-app-api/internal/server"
	"github.com/Jobor-Marho/django-receipe-app-api/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis backs upload rate limiting; the API runs without it
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: failed to connect to Redis, rate limiting disabled: %v", err)
		redisClient = nil
	}

	// S3 backs image storage; uploads fail cleanly without it
	var imageUploader service.ImageUploader
	s3Config, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		log.Printf("Warning: failed to configure S3, image uploads disabled: %v", err)
	} else {
		imageUploader = service.NewImageService(s3Config)
	}

	srv := server.New(db, cfg.JWTSecret, imageUploader, redisClient)

	errChan := make(chan error, 1)
	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start(cfg.ServerPort)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
