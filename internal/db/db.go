package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/cleaning-booking/internal/config"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		PrepareStmt: true,
	}
	if cfg.IsProduction() {
		gormCfg.Logger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates every table. Lookup rows are not inserted here:
// see SeedReferenceData.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.ServiceCategory{},
		&models.Service{},
		&models.PropertyType{},
		&models.OrderStatus{},
		&models.PaymentStatus{},
		&models.PaymentMethod{},
		&models.Order{},
		&models.TicketStatus{},
		&models.SupportTicket{},
		&models.SupportMessage{},
		&models.NotificationType{},
		&models.Notification{},
		&models.EmployeeSchedule{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
