package seed

import (
	"context"
	"testing"

	"github.com/pchen-dev/storefront-backend/pkg/config"
	"github.com/pchen-dev/storefront-backend/pkg/db/models"
	"github.com/pchen-dev/storefront-backend/pkg/security"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}))
	return db
}

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8 * 1024,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func TestRunSeedsEmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, Run(ctx, db, testPasswordConfig(), nil))

	var productCount int64
	require.NoError(t, db.Model(&models.Product{}).Count(&productCount).Error)
	require.EqualValues(t, 5, productCount)

	var user models.User
	require.NoError(t, db.Where("username = ?", demoUsername).First(&user).Error)
	require.Equal(t, demoEmail, user.Email)
	require.True(t, user.IsActive)

	ok, err := security.VerifyPassword(demoPassword, user.PasswordHash)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRunToleratesCompetingDemoUser(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// demo email already claimed under another username; the insert hits
	// the unique index and the seed treats it as already done
	existing := models.User{Username: "someone", Email: demoEmail, PasswordHash: "x", IsActive: true}
	require.NoError(t, db.Create(&existing).Error)

	require.NoError(t, Run(ctx, db, testPasswordConfig(), nil))

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.EqualValues(t, 1, userCount)
}

func TestRunSkipsNonEmptyCatalog(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	existing := models.Product{Name: "preexisting", IsActive: true}
	require.NoError(t, db.Create(&existing).Error)

	require.NoError(t, Run(ctx, db, testPasswordConfig(), nil))

	var productCount int64
	require.NoError(t, db.Model(&models.Product{}).Count(&productCount).Error)
	require.EqualValues(t, 1, productCount)

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.Zero(t, userCount)
}
