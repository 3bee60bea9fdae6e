package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pchen-dev/storefront-backend/pkg/db/models"
)

func newTestRepo(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}))
	return NewRepository(db), db
}

func seedProduct(t *testing.T, db *gorm.DB, name string) *models.Product {
	t.Helper()
	product := &models.Product{Name: name, Price: decimal.NewFromInt(10), Stock: 5, IsActive: true}
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestListByUserPreloadsProduct(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	first := seedProduct(t, db, "first")
	second := seedProduct(t, db, "second")

	_, err := repo.Create(ctx, &models.CartItem{UserID: 1, ProductID: first.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.CartItem{UserID: 1, ProductID: second.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.CartItem{UserID: 2, ProductID: first.ID, Quantity: 9})
	require.NoError(t, err)

	rows, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "first", rows[0].Product.Name)
	require.Equal(t, "second", rows[1].Product.Name)
}

func TestFindByUserAndProduct(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	product := seedProduct(t, db, "widget")
	created, err := repo.Create(ctx, &models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	found, err := repo.FindByUserAndProduct(ctx, 1, product.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, found.ID)

	_, err = repo.FindByUserAndProduct(ctx, 2, product.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindByIDAndUserEnforcesOwnership(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	product := seedProduct(t, db, "widget")
	created, err := repo.Create(ctx, &models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	_, err = repo.FindByIDAndUser(ctx, created.ID, 2)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateQuantityAndDelete(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	product := seedProduct(t, db, "widget")
	created, err := repo.Create(ctx, &models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	updated, err := repo.UpdateQuantity(ctx, created, 7)
	require.NoError(t, err)
	require.Equal(t, 7, updated.Quantity)

	var stored models.CartItem
	require.NoError(t, db.First(&stored, created.ID).Error)
	require.Equal(t, 7, stored.Quantity)

	require.NoError(t, repo.Delete(ctx, created))
	err = db.First(&stored, created.ID).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
