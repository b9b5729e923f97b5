package database

import (
	"log"
	"os"
	"time"

	"gamevault/backend/internal/models"

	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect initializes the database connection and runs migrations.
func Connect(dsn string) *gorm.DB {
	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Lookups of missing games are expected
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		logx.Must(err)
	}

	logx.Info("Database connection established.")

	if err := Migrate(db); err != nil {
		logx.Must(err)
	}

	logx.Info("Database migrated successfully.")
	return db
}

// Migrate creates or updates the schema for every persisted entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Image{},
		&models.Developer{},
		&models.Publisher{},
		&models.Genre{},
		&models.Store{},
		&models.Tag{},
		&models.Game{},
		&models.Progress{},
	)
}
