package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"rental-backoffice/internal/domain"
)

type invoiceService struct {
	rentalSvc   RentalService
	productSvc  ProductService
	customerSvc CustomerService
	settings    domain.Settings
}

func NewInvoiceService(rentalSvc RentalService, productSvc ProductService, customerSvc CustomerService, settings domain.Settings) InvoiceService {
	return &invoiceService{
		rentalSvc:   rentalSvc,
		productSvc:  productSvc,
		customerSvc: customerSvc,
		settings:    settings,
	}
}

// RenderInvoice renders a plain-text invoice for a committed rental. Amounts
// come straight from the stored order; rendering never reprices anything.
func (s *invoiceService) RenderInvoice(ctx context.Context, rentalID string) (string, error) {
	rental, err := s.rentalSvc.GetRental(ctx, rentalID)
	if err != nil {
		return "", err
	}
	customer, err := s.customerSvc.GetCustomer(ctx, rental.CustomerID)
	if err != nil {
		return "", err
	}

	names := make(map[string]string, len(rental.Items))
	for _, item := range rental.Items {
		if _, ok := names[item.ProductID]; ok {
			continue
		}
		product, err := s.productSvc.GetProduct(ctx, item.ProductID)
		if err != nil {
			names[item.ProductID] = item.ProductID
			continue
		}
		names[item.ProductID] = product.Name
	}

	tpl := s.settings.InvoiceTemplate
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", center("RENTAL INVOICE", 78))
	fmt.Fprintf(&b, "Invoice Date: %s\n", time.Now().Format(s.settings.DateFormat))
	fmt.Fprintf(&b, "Invoice #:    %s\n\n", shortID(rental.ID))

	if tpl.CompanyName != "" {
		fmt.Fprintf(&b, "%s\n", tpl.CompanyName)
		if !tpl.CompanyAddress.IsZero() {
			fmt.Fprintf(&b, "%s\n%s, %s %s\n", tpl.CompanyAddress.Street, tpl.CompanyAddress.City, tpl.CompanyAddress.State, tpl.CompanyAddress.ZipCode)
		}
		if tpl.CompanyPhone != "" {
			fmt.Fprintf(&b, "Phone: %s\n", tpl.CompanyPhone)
		}
		if tpl.VATNumber != "" {
			fmt.Fprintf(&b, "VAT: %s\n", tpl.VATNumber)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Bill To:\n")
	fmt.Fprintf(&b, "%s\n", customer.FullName())
	fmt.Fprintf(&b, "%s\n", customer.HomeAddress.Street)
	fmt.Fprintf(&b, "%s, %s %s\n", customer.HomeAddress.City, customer.HomeAddress.State, customer.HomeAddress.ZipCode)
	fmt.Fprintf(&b, "Phone: %s\n\n", customer.Phone)

	fmt.Fprintf(&b, "%-30s %8s %12s %12s %12s\n", "Description", "Quantity", "Daily Rate", "Deposit", "Amount")
	b.WriteString(strings.Repeat("-", 78) + "\n")
	for _, item := range rental.Items {
		amount := item.DailyPriceCents * int64(item.Quantity)
		fmt.Fprintf(&b, "%-30s %8d %12s %12s %12s\n",
			names[item.ProductID], item.Quantity,
			money(item.DailyPriceCents), money(item.DepositCents), money(amount))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Rental Period:          %s - %s\n", rental.StartDate, rental.EndDate)
	fmt.Fprintf(&b, "Total Security Deposit: %s\n", money(rental.TotalDepositCents))
	fmt.Fprintf(&b, "Rental Subtotal:        %s\n", money(rental.TotalPriceCents))
	fmt.Fprintf(&b, "Total Amount:           %s\n\n", money(rental.TotalPriceCents+rental.TotalDepositCents))

	if tpl.BankDetails.AccountNumber != "" {
		fmt.Fprintf(&b, "Payment: %s, account %s (%s)\n", tpl.BankDetails.BankName, tpl.BankDetails.AccountNumber, tpl.BankDetails.AccountName)
		if tpl.BankDetails.IBAN != "" {
			fmt.Fprintf(&b, "IBAN: %s  SWIFT: %s\n", tpl.BankDetails.IBAN, tpl.BankDetails.SwiftCode)
		}
		b.WriteString("\n")
	}

	footer := tpl.Footer
	if footer == "" {
		footer = "Thank you for your business!\n" +
			"Please return all items in the same condition as received.\n" +
			"Security deposit will be refunded upon successful return of all items."
	}
	b.WriteString(footer + "\n")

	return b.String(), nil
}

// money formats a cent amount as a dollar string, e.g. 28000 -> "$280.00".
func money(cents int64) string {
	return "$" + decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
