package service

import (
	"context"

	"github.com/google/uuid"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/engine"
	"rental-backoffice/internal/repository"
)

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) error {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	// A new product starts with its full stock on the shelf.
	product.StockAvailable = product.StockTotal
	return s.productRepo.Create(ctx, product)
}

func (s *productService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.List(ctx)
}

// UpdateProduct persists product edits. A change to the total stock shifts
// the available count by the same delta, so units out on active rentals stay
// accounted for.
func (s *productService) UpdateProduct(ctx context.Context, product *domain.Product) error {
	existing, err := s.productRepo.GetByID(ctx, product.ID)
	if err != nil {
		return err
	}

	delta := product.StockTotal - existing.StockTotal
	available := existing.StockAvailable + delta
	if available < 0 {
		available = 0
	}
	if available > product.StockTotal {
		available = product.StockTotal
	}
	product.StockAvailable = available
	product.CreatedOn = existing.CreatedOn

	return s.productRepo.Update(ctx, product)
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}

// Snapshot loads the whole catalog into the engine's read-only view.
func (s *productService) Snapshot(ctx context.Context) (engine.CatalogSnapshot, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	snapshot := make(engine.CatalogSnapshot, len(products))
	for i := range products {
		snapshot[products[i].ID] = engine.SnapshotProduct(&products[i])
	}
	return snapshot, nil
}
