package db

import (
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/garage-manager/internal/config"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

// Barcodes are unique per garage only when set; gorm tags cannot
// express the partial index.
const barcodeIndex = `
	CREATE UNIQUE INDEX IF NOT EXISTS idx_spare_part_barcode
	ON spare_parts (garage_id, barcode)
	WHERE barcode IS NOT NULL
`

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{
		PrepareStmt: true,
		Logger: gormlogger.New(log.StandardLogger(), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		log.WithError(err).Fatal("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Fatal("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Garage{},
		&models.User{},
		&models.Customer{},
		&models.SparePart{},
		&models.JobCard{},
		&models.Invoice{},
		&models.AuditLog{},
	); err != nil {
		log.WithError(err).Fatal("failed to migrate")
	}

	if err := db.Exec(barcodeIndex).Error; err != nil {
		log.WithError(err).Fatal("failed to create barcode index")
	}

	return db
}
