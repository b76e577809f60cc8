package main

import (
	"context"
	"log"
	"os"

	"github.com/crypt0g30rgy/anony/internal/config"
	"github.com/crypt0g30rgy/anony/internal/model"
	"github.com/crypt0g30rgy/anony/internal/mongodb"
	repoUser "github.com/crypt0g30rgy/anony/internal/repository/user"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// seed prepares a fresh database: it creates the unique indexes and
// bootstraps the first admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
// Running it against an initialized database is a no-op.
func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found")
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Fatalln("Please set ADMIN_EMAIL and ADMIN_PASSWORD")
	}

	cfg := config.Load()

	ctx := context.Background()
	client, err := mongodb.NewClient(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatalln("Mongo connect failed:", err)
	}
	defer client.Close(ctx)

	if err := client.EnsureIndexes(ctx); err != nil {
		log.Fatalln("Index creation failed:", err)
	}
	log.Println("Indexes ensured")

	userRepo := repoUser.NewUserRepository(client)
	if userRepo.IsUserAlreadyExist(ctx, adminEmail) {
		log.Println("Admin user already exists:", adminEmail)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalln("Password hash failed:", err)
	}

	err = userRepo.InsertUser(ctx, model.User{
		Email:    adminEmail,
		Password: string(hash),
		Active:   true,
	})
	if err != nil {
		log.Fatalln("Admin user creation failed:", err)
	}
	log.Println("Admin user created:", adminEmail)
}
