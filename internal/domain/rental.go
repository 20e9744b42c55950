package domain

import "time"

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "active"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusCancelled RentalStatus = "cancelled"
	// RentalStatusOverdue is derived at read time from the end date and is
	// never stored; see Rental.EffectiveStatus.
	RentalStatusOverdue RentalStatus = "overdue"
)

// RentalLineItem is one (product, quantity) pairing of a committed rental.
// DailyPriceCents and DepositCents are snapshots of the product's rates at
// order creation time, so historical orders are immune to later price
// changes. Drafts being edited reference the live catalog instead; see
// engine.DraftLineItem.
type RentalLineItem struct {
	ProductID       string `json:"product_id"`
	Quantity        int32  `json:"quantity"`
	DailyPriceCents int64  `json:"daily_price_cents"`
	DepositCents    int64  `json:"deposit_cents"`
}

type Rental struct {
	ID         string           `json:"id"`
	CustomerID string           `json:"customer_id"`
	Items      []RentalLineItem `json:"items"`
	// StartDate and EndDate are yyyy-mm-dd calendar dates, both inclusive.
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date"`
	Status    RentalStatus `json:"status"`
	// TotalPriceCents and TotalDepositCents are derived from the line items
	// and date range, never hand-edited.
	TotalPriceCents   int64     `json:"total_price_cents"`
	TotalDepositCents int64     `json:"total_deposit_cents"`
	DeliveryAddress   Address   `json:"delivery_address"`
	CreatedOn         time.Time `json:"created_on"`
	UpdatedOn         time.Time `json:"updated_on"`
}

// IsTerminal reports whether the rental has reached a terminal status.
// Terminal rentals accept no further field edits.
func (r *Rental) IsTerminal() bool {
	return r.Status == RentalStatusCompleted || r.Status == RentalStatusCancelled
}

// EffectiveStatus returns the status as it should be displayed. A stored
// ACTIVE rental whose end date has passed reads as OVERDUE; the stored value
// stays ACTIVE so the date remains the single source of truth.
func (r *Rental) EffectiveStatus(now time.Time) RentalStatus {
	if r.Status != RentalStatusActive {
		return r.Status
	}
	end, err := time.Parse("2006-01-02", r.EndDate)
	if err != nil {
		return r.Status
	}
	if end.Before(now.Truncate(24 * time.Hour)) {
		return RentalStatusOverdue
	}
	return r.Status
}
