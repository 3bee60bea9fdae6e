package models

import "time"

// CartItem is one line of a user's cart. At most one row exists per
// (user_id, product_id) pair; the add path merges into an existing row rather
// than relying on a stored constraint.
type CartItem struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	UserID    uint      `gorm:"column:user_id;not null;index:idx_cart_items_user_id"`
	ProductID uint      `gorm:"column:product_id;not null"`
	Quantity  int       `gorm:"column:quantity;not null;default:1"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	Product   Product   `gorm:"foreignKey:ProductID"`
}
