package cart

import (
	"context"
	"errors"

	"github.com/pchen-dev/storefront-backend/pkg/db/models"
	pkgerrors "github.com/pchen-dev/storefront-backend/pkg/errors"
	"gorm.io/gorm"
)

// AddItemInput carries a validated add-to-cart request.
type AddItemInput struct {
	ProductID uint
	Quantity  int
}

// Service exposes per-user cart management.
type Service interface {
	ListItems(ctx context.Context, userID uint) ([]CartItemDTO, error)
	// AddItem merges into an existing line for the same product, or creates
	// a new one. The returned bool reports whether a new line was created.
	AddItem(ctx context.Context, userID uint, input AddItemInput) (*CartItemDTO, bool, error)
	UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) (*CartItemDTO, error)
	RemoveItem(ctx context.Context, userID, itemID uint) error
}

// ItemStore is the cart persistence surface the service needs.
type ItemStore interface {
	ListByUser(ctx context.Context, userID uint) ([]models.CartItem, error)
	FindByUserAndProduct(ctx context.Context, userID, productID uint) (*models.CartItem, error)
	FindByIDAndUser(ctx context.Context, id, userID uint) (*models.CartItem, error)
	Create(ctx context.Context, item *models.CartItem) (*models.CartItem, error)
	UpdateQuantity(ctx context.Context, item *models.CartItem, quantity int) (*models.CartItem, error)
	Delete(ctx context.Context, item *models.CartItem) error
}

// ProductFinder is the slice of the catalog the cart needs: direct lookups
// without the active-only restriction, so lines referencing deactivated
// products keep working.
type ProductFinder interface {
	FindByID(ctx context.Context, id uint, activeOnly bool) (*models.Product, error)
}

type service struct {
	items    ItemStore
	products ProductFinder
}

// NewService builds a cart service over the provided stores.
func NewService(items ItemStore, products ProductFinder) (Service, error) {
	if items == nil || products == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart stores required")
	}
	return &service{items: items, products: products}, nil
}

func (s *service) ListItems(ctx context.Context, userID uint) ([]CartItemDTO, error) {
	rows, err := s.items.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list cart items")
	}
	return FromModels(rows), nil
}

func (s *service) AddItem(ctx context.Context, userID uint, input AddItemInput) (*CartItemDTO, bool, error) {
	product, err := s.products.FindByID(ctx, input.ProductID, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}

	// The stock check covers only what this call asks for, not the line's
	// accumulated quantity.
	if product.Stock < input.Quantity {
		return nil, false, pkgerrors.New(pkgerrors.CodeConflict, "insufficient stock")
	}

	existing, err := s.items.FindByUserAndProduct(ctx, userID, input.ProductID)
	switch {
	case err == nil:
		updated, uerr := s.items.UpdateQuantity(ctx, existing, existing.Quantity+input.Quantity)
		if uerr != nil {
			return nil, false, pkgerrors.Wrap(pkgerrors.CodeInternal, uerr, "merge cart item")
		}
		updated.Product = *product
		return FromModel(updated), false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		created, cerr := s.items.Create(ctx, &models.CartItem{
			UserID:    userID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
		})
		if cerr != nil {
			return nil, false, pkgerrors.Wrap(pkgerrors.CodeInternal, cerr, "create cart item")
		}
		created.Product = *product
		return FromModel(created), true, nil
	default:
		return nil, false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "look up cart item")
	}
}

func (s *service) UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) (*CartItemDTO, error) {
	item, err := s.items.FindByIDAndUser(ctx, itemID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart item")
	}

	updated, err := s.items.UpdateQuantity(ctx, item, quantity)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update cart quantity")
	}
	return FromModel(updated), nil
}

func (s *service) RemoveItem(ctx context.Context, userID, itemID uint) error {
	item, err := s.items.FindByIDAndUser(ctx, itemID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart item")
	}

	if err := s.items.Delete(ctx, item); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete cart item")
	}
	return nil
}
