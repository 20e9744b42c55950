package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/service"
)

func TestInvoiceService_RenderInvoice(t *testing.T) {
	rentalRepo := new(MockRentalRepo)
	productRepo := new(MockProductRepo)
	customerRepo := new(MockCustomerRepo)
	productSvc := service.NewProductService(productRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	rentalSvc := service.NewRentalService(rentalRepo, productRepo, productSvc, customerSvc)

	settings := domain.Settings{
		Currency:   "USD",
		DateFormat: "2006-01-02",
		InvoiceTemplate: domain.InvoiceTemplate{
			CompanyName:  "RentalPro",
			CompanyPhone: "(555) 123-4567",
		},
	}
	svc := service.NewInvoiceService(rentalSvc, productSvc, customerSvc, settings)
	ctx := context.Background()

	rental := &domain.Rental{
		ID:         "a1b2c3d4-0000-0000-0000-000000000000",
		CustomerID: "c1",
		StartDate:  "2026-03-01",
		EndDate:    "2026-03-07",
		Status:     domain.RentalStatusActive,
		Items: []domain.RentalLineItem{
			{ProductID: "p1", Quantity: 2, DailyPriceCents: 2000, DepositCents: 5000},
		},
		TotalPriceCents:   24000,
		TotalDepositCents: 10000,
	}
	products := fixtureProducts()
	customers := fixtureCustomers()

	rentalRepo.On("GetByID", ctx, rental.ID).Return(rental, nil)
	customerRepo.On("GetByID", ctx, "c1").Return(&customers[0], nil)
	productRepo.On("GetByID", ctx, "p1").Return(&products[0], nil)

	text, err := svc.RenderInvoice(ctx, rental.ID)
	assert.NoError(t, err)

	assert.Contains(t, text, "RENTAL INVOICE")
	assert.Contains(t, text, "Invoice #:    a1b2c3d4")
	assert.Contains(t, text, "RentalPro")
	assert.Contains(t, text, "Ada Lovelace")
	assert.Contains(t, text, "Pressure Washer")
	assert.Contains(t, text, "2026-03-01 - 2026-03-07")
	// Amounts come from the stored order, never recomputed.
	assert.Contains(t, text, "$240.00")
	assert.Contains(t, text, "$100.00")
	assert.Contains(t, text, "$340.00")
	assert.Contains(t, text, "Thank you for your business!")
}
