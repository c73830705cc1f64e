package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"immoplace/internal/database"
	"immoplace/internal/domain/property"
)

// Writes the built-in catalog, or the YAML file given as the first argument,
// into DATABASE_URL (default: immoplace.db).
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "immoplace.db"
	}

	catalog, err := readCatalog(os.Args[1:])
	if err != nil {
		log.Fatal("Catalog decode failed:", err)
	}

	// Validate before touching the database.
	if _, err := property.NewStore(catalog); err != nil {
		log.Fatal("Catalog is invalid:", err)
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	repo := property.NewRepository(db)

	log.Println("Running AutoMigrate...")
	if err := repo.Migrate(); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	log.Println("Replacing catalog...")
	if err := repo.ReplaceCatalog(ctx, catalog); err != nil {
		log.Fatal("Seed failed:", err)
	}

	log.Printf("Seed complete: %d properties", len(catalog))
}

func readCatalog(args []string) ([]property.Property, error) {
	if len(args) == 0 {
		return property.DefaultCatalog()
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, err
	}
	return property.ParseCatalog(data)
}
