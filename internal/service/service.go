package service

import (
	"context"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/engine"
)

// DraftRequest is the wire form of an order draft as the front office edits
// it. It maps one-to-one onto engine.Draft input fields.
type DraftRequest struct {
	CustomerID      string                 `json:"customer_id"`
	Items           []engine.DraftLineItem `json:"items"`
	StartDate       string                 `json:"start_date"`
	EndDate         string                 `json:"end_date"`
	CustomAddress   bool                   `json:"custom_address"`
	DeliveryAddress domain.Address         `json:"delivery_address"`
}

type ProductService interface {
	CreateProduct(ctx context.Context, product *domain.Product) error
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
	Snapshot(ctx context.Context) (engine.CatalogSnapshot, error)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, id string) error
	Directory(ctx context.Context) (engine.CustomerDirectory, error)
}

type RentalService interface {
	PreviewDraft(ctx context.Context, req DraftRequest) (*engine.Draft, error)
	CreateRental(ctx context.Context, req DraftRequest) (*domain.Rental, error)
	GetRental(ctx context.Context, id string) (*domain.Rental, error)
	ListRentals(ctx context.Context, status string) ([]domain.Rental, error)
	UpdateRental(ctx context.Context, id string, req DraftRequest) (*domain.Rental, error)
	CompleteRental(ctx context.Context, id string) (*domain.Rental, error)
	CancelRental(ctx context.Context, id string) (*domain.Rental, error)
	DeleteRental(ctx context.Context, id string) error
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Register(ctx context.Context, name, email, password string, role domain.UserRole) (*domain.User, error)
}

type InvoiceService interface {
	RenderInvoice(ctx context.Context, rentalID string) (string, error)
}

type EmailService interface {
	SendOverdueReminder(ctx context.Context, customer *domain.Customer, rental *domain.Rental) error
}
