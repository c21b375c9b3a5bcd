package db

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	// Blank imports register the postgres driver and file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DaniilSsv/rental-api/internal/config"
	"github.com/DaniilSsv/rental-api/internal/models"
)

// ConnectAndMigrate opens the database behind the DSN and brings the schema
// up to date. Postgres DSNs get a retry loop and, with MIGRATIONS=1, SQL
// migrations via golang-migrate; everything else (sqlite dev fallback) uses
// AutoMigrate. DB_SEED=1 loads the demo catalog afterwards.
func ConnectAndMigrate(rawDSN string) (*gorm.DB, error) {
	dsn := NormalizeDSN(rawDSN)
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is empty, check the environment configuration")
	}

	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var db *gorm.DB
	var err error
	if IsPostgresDSN(dsn) {
		for i := 0; i < 10; i++ {
			db, err = gorm.Open(postgres.Open(dsn), cfg)
			if err == nil {
				break
			}
			log.Println("retrying DB connection...", err)
			time.Sleep(2 * time.Second)
		}
		if err != nil {
			return nil, fmt.Errorf("connect database after retries: %w", err)
		}
	} else {
		if db, err = gorm.Open(sqlite.Open(dsn), cfg); err != nil {
			return nil, fmt.Errorf("open sqlite database: %w", err)
		}
	}

	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}
	log.Println("[DB] using DSN:", maskDSN(dsn))

	if IsPostgresDSN(dsn) && config.ParseBool("MIGRATIONS", false) {
		if err := runSQLMigrations(dsn); err != nil {
			return nil, fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		entities := []interface{}{
			&models.Dealer{}, &models.Car{}, &models.Rental{}, &models.Popularity{},
		}
		for _, e := range entities {
			if migErr := db.AutoMigrate(e); migErr != nil {
				return nil, fmt.Errorf("automigrate %T: %w", e, migErr)
			}
		}
	}

	for _, table := range []string{"dealers", "cars", "rentals", "popularity"} {
		if !db.Migrator().HasTable(table) {
			return nil, fmt.Errorf("missing table after migration: %s", table)
		}
	}

	if config.ParseBool("DB_SEED", false) {
		Seed(db)
	}
	return db, nil
}

// runSQLMigrations executes migrations in ./migrations using the
// golang-migrate file source.
func runSQLMigrations(dsn string) error {
	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

var passwordRegex = regexp.MustCompile(`(password=)([^\s]+)`)

func maskDSN(dsn string) string {
	if strings.Contains(dsn, "password=") {
		return passwordRegex.ReplaceAllString(dsn, `${1}***`)
	}
	return dsn
}
