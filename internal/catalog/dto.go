package catalog

import (
	"time"

	"github.com/pchen-dev/storefront-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// ProductDTO is the transport shape for catalog listings.
type ProductDTO struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageURL    *string         `json:"image_url"`
	Category    *string         `json:"category"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateProductInput holds the fields accepted by the creation path.
type CreateProductInput struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	Stock       int
	ImageURL    *string
	Category    *string
}

func FromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
	}
}

func FromModels(rows []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}

func (in CreateProductInput) ToModel() *models.Product {
	return &models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		IsActive:    true,
	}
}
