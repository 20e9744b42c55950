package repository

import (
	"context"

	"rental-backoffice/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error

	// AdjustStock shifts stock_available by delta (negative while units go
	// out on a rental, positive when they come back), refusing any change
	// that would leave it outside [0, stock_total].
	AdjustStock(ctx context.Context, id string, delta int32) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id string) error
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	List(ctx context.Context, status string) ([]domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	Delete(ctx context.Context, id string) error

	// ListActiveEndedBefore returns stored-ACTIVE rentals whose end date has
	// passed, i.e. the ones whose derived status is overdue.
	ListActiveEndedBefore(ctx context.Context, date string) ([]domain.Rental, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
