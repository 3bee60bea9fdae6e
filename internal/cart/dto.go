package cart

import (
	"time"

	"github.com/pchen-dev/storefront-backend/internal/catalog"
	"github.com/pchen-dev/storefront-backend/pkg/db/models"
)

// CartItemDTO is the transport shape for a cart line, carrying the
// associated product so clients can render carts in one round trip.
type CartItemDTO struct {
	ID        uint                `json:"id"`
	UserID    uint                `json:"user_id"`
	ProductID uint                `json:"product_id"`
	Quantity  int                 `json:"quantity"`
	CreatedAt time.Time           `json:"created_at"`
	Product   *catalog.ProductDTO `json:"product,omitempty"`
}

func FromModel(item *models.CartItem) *CartItemDTO {
	if item == nil {
		return nil
	}
	dto := &CartItemDTO{
		ID:        item.ID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
	}
	if item.Product.ID != 0 {
		dto.Product = catalog.FromModel(&item.Product)
	}
	return dto
}

func FromModels(rows []models.CartItem) []CartItemDTO {
	out := make([]CartItemDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}
