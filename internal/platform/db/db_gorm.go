// Package db opens the application database and runs migrations.
package db

import (
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "grocery_backend/internal/feature/auth/domain/entity"
	bucketentity "grocery_backend/internal/feature/bucket/domain/entity"
	categoryentity "grocery_backend/internal/feature/category/domain/entity"
	entriesentity "grocery_backend/internal/feature/entries/domain/entity"
	supermarketentity "grocery_backend/internal/feature/supermarket/domain/entity"
)

// DefaultSQLiteFile is the database file used when nothing is configured,
// relative to the working directory.
const DefaultSQLiteFile = "grocery_app.db"

// OpenDB opens the configured database and retries until it is reachable.
// DATABASE_URL selects Postgres; otherwise a SQLite file is used (DB_FILE,
// defaulting to grocery_app.db). TranslateError is enabled so unique
// constraint violations surface as gorm.ErrDuplicatedKey on either driver.
func OpenDB() *gorm.DB {
	dialector := selectDialector()

	cfg := &gorm.Config{TranslateError: true}

	var (
		conn *gorm.DB
		err  error
	)
	deadline := time.Now().Add(60 * time.Second)
	for {
		conn, err = gorm.Open(dialector, cfg)
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := Migrate(conn); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return conn
}

// Migrate creates or updates the schema for every entity.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&authentity.User{},
		&categoryentity.Category{},
		&supermarketentity.SuperMarket{},
		&bucketentity.Bucket{},
		&entriesentity.GroceryItem{},
		&entriesentity.GroceryEntry{},
	)
}

func selectDialector() gorm.Dialector {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return gpostgres.Open(dsn)
	}
	file := os.Getenv("DB_FILE")
	if file == "" {
		file = DefaultSQLiteFile
	}
	return gsqlite.Open(file)
}
