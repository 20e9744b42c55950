package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/engine"
	"rental-backoffice/internal/logger"
	"rental-backoffice/internal/repository"
)

var ErrRentalTerminal = errors.New("rental is already completed or cancelled")

type rentalService struct {
	rentalRepo  repository.RentalRepository
	productRepo repository.ProductRepository
	productSvc  ProductService
	customerSvc CustomerService
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	productRepo repository.ProductRepository,
	productSvc ProductService,
	customerSvc CustomerService,
) RentalService {
	return &rentalService{
		rentalRepo:  rentalRepo,
		productRepo: productRepo,
		productSvc:  productSvc,
		customerSvc: customerSvc,
	}
}

func (s *rentalService) snapshots(ctx context.Context) (engine.CatalogSnapshot, engine.CustomerDirectory, error) {
	catalog, err := s.productSvc.Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	customers, err := s.customerSvc.Directory(ctx)
	if err != nil {
		return nil, nil, err
	}
	return catalog, customers, nil
}

func draftFromRequest(req DraftRequest) engine.Draft {
	return engine.Draft{
		CustomerID:      req.CustomerID,
		Items:           req.Items,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		CustomAddress:   req.CustomAddress,
		DeliveryAddress: req.DeliveryAddress,
	}
}

// PreviewDraft recomputes a draft's prices, stock annotations and readiness
// against the current catalog without persisting anything.
func (s *rentalService) PreviewDraft(ctx context.Context, req DraftRequest) (*engine.Draft, error) {
	catalog, customers, err := s.snapshots(ctx)
	if err != nil {
		return nil, err
	}
	draft, err := engine.Refresh(draftFromRequest(req), catalog, customers)
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *rentalService) CreateRental(ctx context.Context, req DraftRequest) (*domain.Rental, error) {
	logger.EnterMethod("rentalService.CreateRental", "customerID", req.CustomerID)

	catalog, customers, err := s.snapshots(ctx)
	if err != nil {
		return nil, err
	}

	rental, err := engine.Finalize(draftFromRequest(req), catalog, customers)
	if err != nil {
		logger.ExitMethodWithError("rentalService.CreateRental", err, "customerID", req.CustomerID)
		return nil, err
	}
	rental.ID = uuid.NewString()

	if err := s.takeStock(ctx, rental.Items); err != nil {
		return nil, err
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		s.returnStock(ctx, rental.Items)
		return nil, err
	}

	logger.ExitMethod("rentalService.CreateRental", "rentalID", rental.ID, "totalCents", rental.TotalPriceCents)
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, id string) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

// ListRentals filters by effective status: "overdue" selects stored-active
// rentals past their end date, "active" excludes them, anything else matches
// the stored status directly.
func (s *rentalService) ListRentals(ctx context.Context, status string) ([]domain.Rental, error) {
	now := time.Now()
	switch status {
	case string(domain.RentalStatusOverdue):
		return s.rentalRepo.ListActiveEndedBefore(ctx, now.Format("2006-01-02"))
	case string(domain.RentalStatusActive):
		rentals, err := s.rentalRepo.List(ctx, status)
		if err != nil {
			return nil, err
		}
		current := rentals[:0]
		for _, rt := range rentals {
			if rt.EffectiveStatus(now) == domain.RentalStatusActive {
				current = append(current, rt)
			}
		}
		return current, nil
	default:
		return s.rentalRepo.List(ctx, status)
	}
}

// UpdateRental replaces an active rental with a re-finalized draft. The old
// line items' stock is returned before the new draft is validated, so
// swapping quantities within the same product never spuriously oversells.
func (s *rentalService) UpdateRental(ctx context.Context, id string, req DraftRequest) (*domain.Rental, error) {
	existing, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.IsTerminal() {
		return nil, ErrRentalTerminal
	}

	s.returnStock(ctx, existing.Items)

	catalog, customers, err := s.snapshots(ctx)
	if err != nil {
		return nil, err
	}
	rental, err := engine.Finalize(draftFromRequest(req), catalog, customers)
	if err != nil {
		s.takeStockBestEffort(ctx, existing.Items)
		return nil, err
	}
	rental.ID = existing.ID
	rental.Status = existing.Status
	rental.CreatedOn = existing.CreatedOn

	if err := s.takeStock(ctx, rental.Items); err != nil {
		s.takeStockBestEffort(ctx, existing.Items)
		return nil, err
	}
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		s.returnStock(ctx, rental.Items)
		s.takeStockBestEffort(ctx, existing.Items)
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) CompleteRental(ctx context.Context, id string) (*domain.Rental, error) {
	return s.closeRental(ctx, id, domain.RentalStatusCompleted)
}

func (s *rentalService) CancelRental(ctx context.Context, id string) (*domain.Rental, error) {
	return s.closeRental(ctx, id, domain.RentalStatusCancelled)
}

func (s *rentalService) closeRental(ctx context.Context, id string, status domain.RentalStatus) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental.IsTerminal() {
		return nil, ErrRentalTerminal
	}

	s.returnStock(ctx, rental.Items)
	rental.Status = status
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) DeleteRental(ctx context.Context, id string) error {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rental.Status == domain.RentalStatusActive {
		s.returnStock(ctx, rental.Items)
	}
	return s.rentalRepo.Delete(ctx, id)
}

// takeStock commits units to a rental, rolling back on the first conflict.
func (s *rentalService) takeStock(ctx context.Context, items []domain.RentalLineItem) error {
	for i, item := range items {
		if err := s.productRepo.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
			s.returnStock(ctx, items[:i])
			return err
		}
	}
	return nil
}

// returnStock puts a rental's units back on the shelf. Failures are logged
// and skipped so a single missing product cannot wedge a close-out.
func (s *rentalService) returnStock(ctx context.Context, items []domain.RentalLineItem) {
	for _, item := range items {
		if err := s.productRepo.AdjustStock(ctx, item.ProductID, item.Quantity); err != nil {
			logger.Error("Failed to return stock", "productID", item.ProductID, "quantity", item.Quantity, "error", err)
		}
	}
}

func (s *rentalService) takeStockBestEffort(ctx context.Context, items []domain.RentalLineItem) {
	for _, item := range items {
		if err := s.productRepo.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
			logger.Error("Failed to re-commit stock", "productID", item.ProductID, "quantity", item.Quantity, "error", err)
		}
	}
}
