package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/Autum7899/My-Portfolio/pkg/auth"
)

func main() {
	fmt.Println("seeding admin account into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	DSN := os.Getenv("DB_DSN")
	ADMIN_PASSWORD := os.Getenv("ADMIN_PASSWORD")
	if ADMIN_PASSWORD == "" {
		log.Fatal("ADMIN_PASSWORD is required")
	}

	hash, err := auth.HashPassword(ADMIN_PASSWORD)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), DSN)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	query := `
		INSERT INTO admin_account (id, password_hash)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET password_hash = $1, updated_at = NOW()
	`
	_, err = pool.Exec(context.Background(), query, hash)
	if err != nil {
		log.Fatalf("cannot seed admin account: %v", err)
	}

	fmt.Println("admin account seeded successfully!")
}
