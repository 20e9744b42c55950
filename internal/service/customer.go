package service

import (
	"context"

	"github.com/google/uuid"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/engine"
	"rental-backoffice/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.NewString()
	}
	return s.customerRepo.Create(ctx, customer)
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *customerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	return s.customerRepo.Update(ctx, customer)
}

func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	return s.customerRepo.Delete(ctx, id)
}

// Directory loads all customers into the engine's lookup map.
func (s *customerService) Directory(ctx context.Context) (engine.CustomerDirectory, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	directory := make(engine.CustomerDirectory, len(customers))
	for i := range customers {
		directory[customers[i].ID] = &customers[i]
	}
	return directory, nil
}
