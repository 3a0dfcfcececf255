package db

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/TaynaMariana/Sistema-Gerenciamento-Comercial/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database selected by the DSN: postgres for URL or
// key=value DSNs, sqlite otherwise. Postgres connections are retried since
// the container may still be starting.
func Connect(rawDSN string) (*gorm.DB, error) {
	dsn := NormalizeDSN(rawDSN)
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_DSN is empty, check the environment configuration")
	}
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	if !IsPostgresDSN(dsn) {
		db, err := gorm.Open(sqlite.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database %q: %w", dsn, err)
		}
		return db, nil
	}

	var db *gorm.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
		if err == nil {
			break
		}
		fmt.Println("Retrying DB connection...", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database after retries: %w", err)
	}
	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}
	return db, nil
}

// ConnectAndMigrate connects and brings the schema up to date.
func ConnectAndMigrate(rawDSN string) (*gorm.DB, error) {
	db, err := Connect(rawDSN)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs AutoMigrate for every store entity.
func Migrate(db *gorm.DB) error {
	toMigrate := []interface{}{
		&models.Client{}, &models.Product{}, &models.Purchase{}, &models.PurchaseItem{},
	}
	for _, m := range toMigrate {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	// sanity check: ensure required core tables exist
	for _, table := range []string{"clients", "products", "purchases", "purchase_items"} {
		if !db.Migrator().HasTable(table) {
			return errors.New("missing table after migration: " + table)
		}
	}
	return nil
}
