package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/psds-microservice/office-manager/internal/model"
	"gorm.io/gorm"
)

const (
	AdminUsername = "admin"
	AdminPassword = "admin123"
)

// Init creates missing tables and seeds the admin user. Safe to run on every start.
func Init(ctx context.Context, db *gorm.DB, log *slog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return SeedAdmin(ctx, db, log)
}

// SeedAdmin inserts the default admin user unless one already exists.
func SeedAdmin(ctx context.Context, db *gorm.DB, log *slog.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.User{}).
		Where("username = ?", AdminUsername).
		Count(&count).Error; err != nil {
		return fmt.Errorf("check admin user: %w", err)
	}
	if count > 0 {
		return nil
	}
	admin := &model.User{Username: AdminUsername, Password: AdminPassword, Role: model.RoleAdmin}
	if err := db.WithContext(ctx).Create(admin).Error; err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	log.Info("seeded default admin user", "username", AdminUsername)
	return nil
}
