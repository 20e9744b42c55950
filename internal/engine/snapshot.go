package engine

import "rental-backoffice/internal/domain"

// CatalogProduct is the read-only view of a product the engine prices and
// allocates against.
type CatalogProduct struct {
	Name           string
	Price          domain.PriceSchedule
	StockTotal     int32
	StockAvailable int32
}

// CatalogSnapshot maps product IDs to their point-in-time catalog state.
// The persistence layer refreshes it before each validation pass; the engine
// only reads it.
type CatalogSnapshot map[string]CatalogProduct

// CustomerDirectory maps customer IDs to customers.
type CustomerDirectory map[string]*domain.Customer

// SnapshotProduct converts a stored product into its catalog view.
func SnapshotProduct(p *domain.Product) CatalogProduct {
	return CatalogProduct{
		Name:           p.Name,
		Price:          p.Price,
		StockTotal:     p.StockTotal,
		StockAvailable: p.StockAvailable,
	}
}
