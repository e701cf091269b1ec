// Package testutil builds throwaway databases for package tests.
package testutil

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/cleaning-booking/internal/db"
	"github.com/BruksfildServices01/cleaning-booking/internal/domain/user"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

// NewDB returns a migrated and seeded sqlite database living in t.TempDir.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := NewEmptyDB(t)
	if err := dbpkg.SeedReferenceData(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

// NewEmptyDB is NewDB without reference data.
func NewEmptyDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

var seq int

func CreateUser(t *testing.T, db *gorm.DB, role user.Role) *models.User {
	t.Helper()

	seq++
	u := &models.User{
		Email:        fmt.Sprintf("user%d@example.com", seq),
		PasswordHash: "x",
		Name:         fmt.Sprintf("User %d", seq),
		RoleID:       role.ID(),
	}
	if err := db.Omit(clause.Associations).Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func CreateService(t *testing.T, db *gorm.DB, pricePerSquare int64) *models.Service {
	t.Helper()

	seq++
	price := decimal.NewFromInt(pricePerSquare)
	s := &models.Service{
		Name:           fmt.Sprintf("Service %d", seq),
		PricePerSquare: &price,
		CategoryID:     1,
		Duration:       120,
		IsActive:       true,
	}
	if err := db.Omit(clause.Associations).Create(s).Error; err != nil {
		t.Fatalf("create service: %v", err)
	}
	return s
}

// CreateOrder inserts a pending, unpaid order owned by userID.
func CreateOrder(t *testing.T, db *gorm.DB, userID, serviceID uint) *models.Order {
	t.Helper()

	o := &models.Order{
		UserID:          userID,
		ServiceID:       serviceID,
		PropertyTypeID:  1,
		Address:         "Lenina 1",
		Square:          40,
		TotalPrice:      decimal.NewFromInt(3200),
		Date:            time.Now().Add(48 * time.Hour).Truncate(time.Second),
		StatusID:        1,
		PaymentStatusID: 1,
	}
	if err := db.Omit(clause.Associations).Create(o).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}
	return o
}

func Ptr[T any](v T) *T {
	return &v
}
