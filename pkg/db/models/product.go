package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog listing. IsActive doubles as a soft-delete
// flag: public reads filter on it, the creation path does not.
type Product struct {
	ID          uint            `gorm:"column:id;primaryKey"`
	Name        string          `gorm:"column:name;size:100;not null"`
	Description *string         `gorm:"column:description;size:500"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	Stock       int             `gorm:"column:stock;not null;default:0"`
	ImageURL    *string         `gorm:"column:image_url;size:200"`
	Category    *string         `gorm:"column:category;size:50"`
	IsActive    bool            `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}
