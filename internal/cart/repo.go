package cart

import (
	"context"

	"github.com/pchen-dev/storefront-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes cart persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a cart repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListByUser returns a user's cart items with product details preloaded,
// oldest first.
func (r *Repository) ListByUser(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var rows []models.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByUserAndProduct loads the user's cart line for a product, if any.
func (r *Repository) FindByUserAndProduct(ctx context.Context, userID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByIDAndUser loads a cart line by id, scoped to its owner.
func (r *Repository) FindByIDAndUser(ctx context.Context, id, userID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a new cart line.
func (r *Repository) Create(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateQuantity persists a new quantity on an existing line.
func (r *Repository) UpdateQuantity(ctx context.Context, item *models.CartItem, quantity int) (*models.CartItem, error) {
	err := r.db.WithContext(ctx).
		Model(item).
		Update("quantity", quantity).Error
	if err != nil {
		return nil, err
	}
	item.Quantity = quantity
	return item, nil
}

// Delete removes a cart line.
func (r *Repository) Delete(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Delete(item).Error
}
