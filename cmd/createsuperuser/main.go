package main

import (
	"context"
	"flag"
	"log"

	"github.com/Jobor-Marho/django-receipe-app-api/config"
	"github.com/Jobor-Marho/django-receipe-app-api/internal/database"
	"github.com/Jobor-Marho/django-receipe-app-api/internal/service"
)

func main() {
	email := flag.String("email", "", "email address for the superuser account")
	password := flag.String("password", "", "password for the superuser account")
	name := flag.String("name", "Admin", "display name for the superuser account")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}
	if len(*password) < 5 {
		log.Fatal("password must be at least 5 characters")
	}

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

	authService := service.NewAuthService(db, cfg.JWTSecret)

	user, err := authService.Register(context.Background(), *email, *password, *name)
	if err != nil {
		log.Fatalf("Failed to create account: %v", err)
	}

	user.IsStaff = true
	user.IsSuperuser = true
	if err := db.Save(user).Error; err != nil {
		log.Fatalf("Failed to promote account: %v", err)
	}

	log.Printf("Superuser %s created (id %s)", user.Email, user.ID)
}
