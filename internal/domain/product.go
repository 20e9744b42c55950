package domain

import "time"

// PriceSchedule holds the tiered rental rates for a product, in cents.
// Daily and deposit rates are required; a zero weekly or monthly rate means
// the tier is not offered for that product.
type PriceSchedule struct {
	DailyCents   int64 `json:"daily_cents"`
	WeeklyCents  int64 `json:"weekly_cents"`
	MonthlyCents int64 `json:"monthly_cents"`
	DepositCents int64 `json:"deposit_cents"`
}

// HasWeekly reports whether a weekly tier is offered.
func (p PriceSchedule) HasWeekly() bool { return p.WeeklyCents > 0 }

// HasMonthly reports whether a monthly tier is offered.
func (p PriceSchedule) HasMonthly() bool { return p.MonthlyCents > 0 }

type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Price       PriceSchedule `json:"price"`
	// StockAvailable counts units not committed to an active or overdue
	// rental. Always 0 <= StockAvailable <= StockTotal.
	StockTotal     int32     `json:"stock_total"`
	StockAvailable int32     `json:"stock_available"`
	ImageURL       string    `json:"image_url,omitempty"`
	CreatedOn      time.Time `json:"created_on"`
	UpdatedOn      time.Time `json:"updated_on"`
}
