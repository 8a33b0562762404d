package main

import (
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mealmuse/backend/internal/database"
	"github.com/mealmuse/backend/internal/models"
)

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = "postgres://postgres@localhost:5432/mealmuse?sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	password := "devpassword123"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	devUsers := []struct {
		name  string
		email string
	}{
		{name: "Dev User", email: "dev@example.com"},
		{name: "QA User", email: "qa@example.com"},
	}

	for _, u := range devUsers {
		var existing models.User
		if err := db.Where("email = ?", u.email).First(&existing).Error; err == nil {
			log.Printf("User %s already exists, skipping...", u.email)
			continue
		}

		user := models.User{
			ID:           uuid.New(),
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hashedPassword),
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Failed to create user %s: %v", u.email, err)
			continue
		}
		log.Printf("Created user %s (%s)", u.name, u.email)
	}

	log.Println("Seed complete. Password for all users: devpassword123")
}
