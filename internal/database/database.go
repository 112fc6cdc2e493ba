package database

import (
	"fmt"
	"log"
	"time"

	"github.com/ryoishikawa/blog-api/internal/config"
	"github.com/ryoishikawa/blog-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

const (
	connectAttempts   = 5
	connectRetryDelay = 2 * time.Second
)

// Connect opens the database connection with a bounded retry. The
// database being unreachable after the last attempt is fatal to the
// caller; no per-request reconnect logic exists.
func Connect(cfg *config.Config) error {
	dialector, err := openDialector(cfg)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		DB, lastErr = gorm.Open(dialector, &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Info),
			TranslateError: true,
		})
		if lastErr == nil {
			log.Println("Database connection established")
			return nil
		}

		log.Printf("Database connection failed (attempt %d/%d): %v", attempt, connectAttempts, lastErr)
		if attempt < connectAttempts {
			time.Sleep(connectRetryDelay)
		}
	}

	return fmt.Errorf("failed to connect to database after %d attempts: %w", connectAttempts, lastErr)
}

func openDialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
			cfg.DBPort,
		)
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBName,
		)
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.DBDriver)
	}
}

func Migrate() error {
	log.Println("Running database migrations...")
	err := DB.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Vote{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("Database migrations completed")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
