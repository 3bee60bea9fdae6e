package catalog

import (
	"context"
	"errors"

	"github.com/pchen-dev/storefront-backend/pkg/db/models"
	pkgerrors "github.com/pchen-dev/storefront-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes catalog browsing and creation.
type Service interface {
	ListProducts(ctx context.Context) ([]ProductDTO, error)
	GetProduct(ctx context.Context, id uint) (*ProductDTO, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
}

// ProductStore is the persistence surface the service needs.
type ProductStore interface {
	List(ctx context.Context, activeOnly bool) ([]models.Product, error)
	FindByID(ctx context.Context, id uint, activeOnly bool) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
}

type service struct {
	repo ProductStore
}

// NewService builds a catalog service over the provided store.
func NewService(repo ProductStore) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "catalog repository required")
	}
	return &service{repo: repo}, nil
}

// ListProducts returns active products only; this is the public browse path.
func (s *service) ListProducts(ctx context.Context) ([]ProductDTO, error) {
	rows, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	return FromModels(rows), nil
}

// GetProduct returns one active product. Inactive products read as missing.
func (s *service) GetProduct(ctx context.Context, id uint) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	return FromModel(product), nil
}

// CreateProduct inserts a catalog listing. The creation path has no
// active-flag concern.
func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}
	if input.Stock < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock must not be negative")
	}

	product, err := s.repo.Create(ctx, input.ToModel())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
	}
	return FromModel(product), nil
}
