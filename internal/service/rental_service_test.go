package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/engine"
	"rental-backoffice/internal/service"
)

func fixtureProducts() []domain.Product {
	return []domain.Product{
		{
			ID:   "p1",
			Name: "Pressure Washer",
			Price: domain.PriceSchedule{
				DailyCents:   2000,
				WeeklyCents:  12000,
				MonthlyCents: 40000,
				DepositCents: 5000,
			},
			StockTotal:     5,
			StockAvailable: 5,
		},
	}
}

func fixtureCustomers() []domain.Customer {
	return []domain.Customer{
		{
			ID:        "c1",
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Phone:     "555-0100",
			HomeAddress: domain.Address{
				Street: "1 Home St", City: "Springfield", State: "IL", ZipCode: "62701", Country: "USA",
			},
		},
	}
}

func newRentalFixture() (*MockRentalRepo, *MockProductRepo, *MockCustomerRepo, service.RentalService) {
	rentalRepo := new(MockRentalRepo)
	productRepo := new(MockProductRepo)
	customerRepo := new(MockCustomerRepo)
	productSvc := service.NewProductService(productRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	svc := service.NewRentalService(rentalRepo, productRepo, productSvc, customerSvc)
	return rentalRepo, productRepo, customerRepo, svc
}

func weekDraft(quantity int32) service.DraftRequest {
	return service.DraftRequest{
		CustomerID: "c1",
		Items:      []engine.DraftLineItem{{ProductID: "p1", Quantity: quantity}},
		StartDate:  "2026-03-01",
		EndDate:    "2026-03-07",
	}
}

func TestRentalService_PreviewDraft(t *testing.T) {
	_, productRepo, customerRepo, svc := newRentalFixture()
	ctx := context.Background()

	productRepo.On("List", ctx).Return(fixtureProducts(), nil)
	customerRepo.On("List", ctx).Return(fixtureCustomers(), nil)

	draft, err := svc.PreviewDraft(ctx, weekDraft(2))
	assert.NoError(t, err)
	assert.Equal(t, engine.ReadinessReady, draft.Readiness)
	// 7 days hits the weekly tier exactly: 12000 * 2 units.
	assert.Equal(t, int64(24000), draft.TotalPriceCents)
	assert.Equal(t, int64(10000), draft.TotalDepositCents)
	// Home address derived as the delivery default.
	assert.Equal(t, "1 Home St", draft.DeliveryAddress.Street)
}

func TestRentalService_CreateRental(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rentalRepo, productRepo, customerRepo, svc := newRentalFixture()
		productRepo.On("List", ctx).Return(fixtureProducts(), nil)
		customerRepo.On("List", ctx).Return(fixtureCustomers(), nil)
		productRepo.On("AdjustStock", ctx, "p1", int32(-2)).Return(nil)
		rentalRepo.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)

		rental, err := svc.CreateRental(ctx, weekDraft(2))
		assert.NoError(t, err)
		assert.NotEmpty(t, rental.ID)
		assert.Equal(t, domain.RentalStatusActive, rental.Status)
		assert.Equal(t, int64(24000), rental.TotalPriceCents)
		// Line rates are frozen at creation time.
		assert.Equal(t, int64(2000), rental.Items[0].DailyPriceCents)
		assert.Equal(t, int64(5000), rental.Items[0].DepositCents)
		productRepo.AssertCalled(t, "AdjustStock", ctx, "p1", int32(-2))
	})

	t.Run("Oversold", func(t *testing.T) {
		rentalRepo, productRepo, customerRepo, svc := newRentalFixture()
		productRepo.On("List", ctx).Return(fixtureProducts(), nil)
		customerRepo.On("List", ctx).Return(fixtureCustomers(), nil)

		rental, err := svc.CreateRental(ctx, weekDraft(6))
		assert.ErrorIs(t, err, engine.ErrDraftNotReady)
		assert.Nil(t, rental)
		rentalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		productRepo.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRentalService_CompleteRental(t *testing.T) {
	ctx := context.Background()

	active := func() *domain.Rental {
		return &domain.Rental{
			ID:         "r1",
			CustomerID: "c1",
			StartDate:  "2026-03-01",
			EndDate:    "2026-03-07",
			Status:     domain.RentalStatusActive,
			Items: []domain.RentalLineItem{
				{ProductID: "p1", Quantity: 2, DailyPriceCents: 2000, DepositCents: 5000},
			},
		}
	}

	t.Run("Success", func(t *testing.T) {
		rentalRepo, productRepo, _, svc := newRentalFixture()
		rentalRepo.On("GetByID", ctx, "r1").Return(active(), nil)
		productRepo.On("AdjustStock", ctx, "p1", int32(2)).Return(nil)
		rentalRepo.On("Update", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)

		rental, err := svc.CompleteRental(ctx, "r1")
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusCompleted, rental.Status)
		productRepo.AssertCalled(t, "AdjustStock", ctx, "p1", int32(2))
	})

	t.Run("AlreadyTerminal", func(t *testing.T) {
		rentalRepo, productRepo, _, svc := newRentalFixture()
		done := active()
		done.Status = domain.RentalStatusCompleted
		rentalRepo.On("GetByID", ctx, "r1").Return(done, nil)

		_, err := svc.CompleteRental(ctx, "r1")
		assert.ErrorIs(t, err, service.ErrRentalTerminal)
		productRepo.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRentalService_UpdateRental_Terminal(t *testing.T) {
	rentalRepo, _, _, svc := newRentalFixture()
	ctx := context.Background()

	rentalRepo.On("GetByID", ctx, "r1").Return(&domain.Rental{
		ID:     "r1",
		Status: domain.RentalStatusCancelled,
	}, nil)

	_, err := svc.UpdateRental(ctx, "r1", weekDraft(1))
	assert.ErrorIs(t, err, service.ErrRentalTerminal)
}

func TestRentalService_ListRentals(t *testing.T) {
	ctx := context.Background()

	t.Run("Overdue", func(t *testing.T) {
		rentalRepo, _, _, svc := newRentalFixture()
		today := time.Now().Format("2006-01-02")
		rentalRepo.On("ListActiveEndedBefore", ctx, today).Return([]domain.Rental{
			{ID: "r1", Status: domain.RentalStatusActive, EndDate: "2026-01-02"},
		}, nil)

		rentals, err := svc.ListRentals(ctx, "overdue")
		assert.NoError(t, err)
		assert.Len(t, rentals, 1)
	})

	t.Run("ActiveExcludesOverdue", func(t *testing.T) {
		rentalRepo, _, _, svc := newRentalFixture()
		future := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
		past := time.Now().AddDate(0, 0, -7).Format("2006-01-02")
		rentalRepo.On("List", ctx, "active").Return([]domain.Rental{
			{ID: "r1", Status: domain.RentalStatusActive, EndDate: future},
			{ID: "r2", Status: domain.RentalStatusActive, EndDate: past},
		}, nil)

		rentals, err := svc.ListRentals(ctx, "active")
		assert.NoError(t, err)
		assert.Len(t, rentals, 1)
		assert.Equal(t, "r1", rentals[0].ID)
	})
}

func TestRentalService_DeleteRental(t *testing.T) {
	ctx := context.Background()

	t.Run("ActiveRestoresStock", func(t *testing.T) {
		rentalRepo, productRepo, _, svc := newRentalFixture()
		rentalRepo.On("GetByID", ctx, "r1").Return(&domain.Rental{
			ID:     "r1",
			Status: domain.RentalStatusActive,
			Items: []domain.RentalLineItem{
				{ProductID: "p1", Quantity: 3},
			},
		}, nil)
		productRepo.On("AdjustStock", ctx, "p1", int32(3)).Return(nil)
		rentalRepo.On("Delete", ctx, "r1").Return(nil)

		err := svc.DeleteRental(ctx, "r1")
		assert.NoError(t, err)
		productRepo.AssertCalled(t, "AdjustStock", ctx, "p1", int32(3))
	})

	t.Run("CancelledLeavesStockAlone", func(t *testing.T) {
		rentalRepo, productRepo, _, svc := newRentalFixture()
		rentalRepo.On("GetByID", ctx, "r1").Return(&domain.Rental{
			ID:     "r1",
			Status: domain.RentalStatusCancelled,
			Items: []domain.RentalLineItem{
				{ProductID: "p1", Quantity: 3},
			},
		}, nil)
		rentalRepo.On("Delete", ctx, "r1").Return(nil)

		err := svc.DeleteRental(ctx, "r1")
		assert.NoError(t, err)
		productRepo.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything, mock.Anything)
	})
}
