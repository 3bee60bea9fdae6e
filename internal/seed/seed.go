// Package seed loads demo catalog and account data into an empty database
// so a fresh deployment is browsable immediately.
package seed

import (
	"context"
	"errors"

	"github.com/pchen-dev/storefront-backend/pkg/config"
	pkgdb "github.com/pchen-dev/storefront-backend/pkg/db"
	"github.com/pchen-dev/storefront-backend/pkg/db/models"
	pkgerrors "github.com/pchen-dev/storefront-backend/pkg/errors"
	"github.com/pchen-dev/storefront-backend/pkg/logger"
	"github.com/pchen-dev/storefront-backend/pkg/security"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	demoUsername = "testuser"
	demoEmail    = "test@example.com"
	demoPassword = "123456"
)

func strPtr(s string) *string { return &s }

func demoProducts() []models.Product {
	return []models.Product{
		{
			Name:        "iPhone 15 Pro",
			Description: strPtr("Apple's latest flagship with titanium frame and A17 Pro chip"),
			Price:       decimal.New(35900, 0),
			Stock:       10,
			ImageURL:    strPtr("https://picsum.photos/seed/iphone/400/400"),
			Category:    strPtr("Smartphones"),
			IsActive:    true,
		},
		{
			Name:        "MacBook Pro 14\"",
			Description: strPtr("M3 Pro chip, 18GB unified memory, 512GB SSD"),
			Price:       decimal.New(89900, 0),
			Stock:       5,
			ImageURL:    strPtr("https://picsum.photos/seed/macbook/400/400"),
			Category:    strPtr("Laptops"),
			IsActive:    true,
		},
		{
			Name:        "AirPods Pro",
			Description: strPtr("Active noise cancellation with adaptive transparency"),
			Price:       decimal.New(7490, 0),
			Stock:       20,
			ImageURL:    strPtr("https://picsum.photos/seed/airpods/400/400"),
			Category:    strPtr("Audio"),
			IsActive:    true,
		},
		{
			Name:        "iPad Air",
			Description: strPtr("10.9-inch Liquid Retina display with M1 chip"),
			Price:       decimal.New(21900, 0),
			Stock:       15,
			ImageURL:    strPtr("https://picsum.photos/seed/ipad/400/400"),
			Category:    strPtr("Tablets"),
			IsActive:    true,
		},
		{
			Name:        "Apple Watch Series 9",
			Description: strPtr("Advanced health sensors and always-on Retina display"),
			Price:       decimal.New(12900, 0),
			Stock:       8,
			ImageURL:    strPtr("https://picsum.photos/seed/watch/400/400"),
			Category:    strPtr("Wearables"),
			IsActive:    true,
		},
	}
}

// Run populates demo data when the catalog is empty. It is idempotent: a
// non-empty products table short-circuits the whole routine.
func Run(ctx context.Context, db *gorm.DB, passwords config.PasswordConfig, log *logger.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count products")
	}
	if count > 0 {
		return nil
	}

	products := demoProducts()
	if err := db.WithContext(ctx).Create(&products).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed products")
	}

	if err := ensureDemoUser(ctx, db, passwords); err != nil {
		return err
	}

	if log != nil {
		log.Info(log.WithFields(ctx, map[string]any{
			"products": len(products),
			"username": demoUsername,
		}), "seeded demo data")
	}
	return nil
}

func ensureDemoUser(ctx context.Context, db *gorm.DB, passwords config.PasswordConfig) error {
	var existing models.User
	err := db.WithContext(ctx).Where("username = ?", demoUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "look up demo user")
	}

	hash, err := security.HashPassword(demoPassword, passwords)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash demo password")
	}

	user := models.User{
		Username:     demoUsername,
		Email:        demoEmail,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		// another instance seeded first
		if pkgdb.IsUniqueViolation(err) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed demo user")
	}
	return nil
}
