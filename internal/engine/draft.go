package engine

import (
	"rental-backoffice/internal/domain"
)

// Readiness classifies a draft's submission state. It is recomputed from the
// current field values after every edit, never advanced by discrete
// transitions.
type Readiness string

const (
	// ReadinessIncomplete: missing customer, no usable line items, or
	// missing/invalid dates.
	ReadinessIncomplete Readiness = "incomplete"
	// ReadinessInvalid: all fields present but a validation rule fails
	// (oversold stock, dangling references, malformed lines or address).
	ReadinessInvalid Readiness = "invalid"
	// ReadinessReady: submittable as-is.
	ReadinessReady Readiness = "ready"
)

// DraftLineItem references the live catalog while an order is being edited.
// Committed orders carry frozen rate snapshots instead (domain.RentalLineItem),
// so historical orders are never silently repriced.
type DraftLineItem struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

// LineResult is the computed price of one draft line. A line that cannot be
// priced carries Err and zero amounts; it is excluded from the order totals
// but stays in the editable list. Error repeats Err's message so the
// annotation survives JSON encoding.
type LineResult struct {
	PriceCents       int64  `json:"price_cents"`
	DepositCents     int64  `json:"deposit_cents"`
	DailyPriceCents  int64  `json:"daily_price_cents"`
	UnitDepositCents int64  `json:"unit_deposit_cents"`
	Err              error  `json:"-"`
	Error            string `json:"error,omitempty"`
}

// Totals is the result of pricing every line of a draft.
type Totals struct {
	Lines             []LineResult
	TotalPriceCents   int64
	TotalDepositCents int64
}

// Draft is an in-progress rental order. The editing session owns it
// exclusively; every derived field below the divider is recomputed by Apply
// after each edit.
type Draft struct {
	CustomerID string          `json:"customer_id"`
	Items      []DraftLineItem `json:"items"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	// DeliveryAddress mirrors the customer's preferred address until
	// CustomAddress is switched on, at which point it becomes an
	// independently edited value owned by the order.
	DeliveryAddress domain.Address `json:"delivery_address"`
	CustomAddress   bool           `json:"custom_address"`

	// Derived state, recomputed on every change.
	Lines             []LineResult `json:"lines"`
	StockErrors       []StockError `json:"stock_errors"`
	TotalPriceCents   int64        `json:"total_price_cents"`
	TotalDepositCents int64        `json:"total_deposit_cents"`
	Readiness         Readiness    `json:"readiness"`
}

// NewDraft returns a fresh draft starting on the given date with a single
// empty line item, the same shape a new order form opens with.
func NewDraft(startDate string) Draft {
	return Draft{
		Items:     []DraftLineItem{{Quantity: 1}},
		StartDate: startDate,
		Readiness: ReadinessIncomplete,
	}
}

// Event is one edit applied to a draft.
type Event interface{ isEvent() }

type SetCustomer struct{ CustomerID string }

type SetDates struct{ StartDate, EndDate string }

type AddLine struct{}

type UpdateLine struct {
	Index     int
	ProductID string
	Quantity  int32
}

type RemoveLine struct{ Index int }

// SetCustomAddress toggles the custom delivery address override. Switching
// it on freezes the current value; switching it off re-derives it from the
// customer again.
type SetCustomAddress struct{ Enabled bool }

// EditDeliveryAddress edits the delivery address directly. It only has an
// effect while the custom override is active.
type EditDeliveryAddress struct{ Address domain.Address }

func (SetCustomer) isEvent()         {}
func (SetDates) isEvent()            {}
func (AddLine) isEvent()             {}
func (UpdateLine) isEvent()          {}
func (RemoveLine) isEvent()          {}
func (SetCustomAddress) isEvent()    {}
func (EditDeliveryAddress) isEvent() {}

// Apply folds one edit into the draft and recomputes all derived fields,
// returning the new draft value. The input draft is left unmodified, so the
// reducer can be driven from any UI or test harness.
func Apply(d Draft, ev Event, catalog CatalogSnapshot, customers CustomerDirectory) (Draft, error) {
	d.Items = append([]DraftLineItem(nil), d.Items...)

	switch e := ev.(type) {
	case SetCustomer:
		if _, ok := customers[e.CustomerID]; !ok && e.CustomerID != "" {
			return d, ErrCustomerNotFound
		}
		d.CustomerID = e.CustomerID
	case SetDates:
		d.StartDate = e.StartDate
		d.EndDate = e.EndDate
	case AddLine:
		d.Items = append(d.Items, DraftLineItem{Quantity: 1})
	case UpdateLine:
		if e.Index < 0 || e.Index >= len(d.Items) {
			return d, ErrLineIndexOutOfRange
		}
		d.Items[e.Index] = DraftLineItem{ProductID: e.ProductID, Quantity: e.Quantity}
	case RemoveLine:
		if e.Index < 0 || e.Index >= len(d.Items) {
			return d, ErrLineIndexOutOfRange
		}
		d.Items = append(d.Items[:e.Index], d.Items[e.Index+1:]...)
	case SetCustomAddress:
		d.CustomAddress = e.Enabled
	case EditDeliveryAddress:
		if d.CustomAddress {
			d.DeliveryAddress = e.Address
		}
	}

	return Refresh(d, catalog, customers)
}

// Refresh recomputes every derived field of the draft from its current input
// fields: the delivery-address default, per-line prices, order totals, stock
// annotations, and readiness. Applying Refresh twice to an unchanged draft
// yields an identical draft.
func Refresh(d Draft, catalog CatalogSnapshot, customers CustomerDirectory) (Draft, error) {
	if catalog == nil {
		return d, ErrNoCatalog
	}
	if customers == nil {
		return d, ErrNoCustomerDirectory
	}

	if !d.CustomAddress {
		if customer, ok := customers[d.CustomerID]; ok {
			d.DeliveryAddress = customer.PreferredDeliveryAddress()
		}
	}

	totals, err := ComputeTotals(&d, catalog)
	if err != nil {
		return d, err
	}
	d.Lines = totals.Lines
	d.TotalPriceCents = totals.TotalPriceCents
	d.TotalDepositCents = totals.TotalDepositCents
	d.StockErrors = ValidateStock(d.Items, catalog)
	d.Readiness = readiness(&d, customers)

	return d, nil
}

// ComputeTotals prices every line of the draft against the catalog snapshot
// and sums the order totals. Malformed lines (unknown product, non-positive
// quantity, invalid date range) are flagged on their LineResult and excluded
// from the totals; they are never fatal. Lines with no product selected are
// skipped without annotation. The only hard failure is an absent catalog.
func ComputeTotals(d *Draft, catalog CatalogSnapshot) (*Totals, error) {
	if catalog == nil {
		return nil, ErrNoCatalog
	}

	totals := &Totals{Lines: make([]LineResult, len(d.Items))}
	for i, item := range d.Items {
		if item.ProductID == "" {
			continue
		}
		product, ok := catalog[item.ProductID]
		if !ok {
			totals.Lines[i] = lineError(ErrProductNotFound)
			continue
		}

		price, deposit, err := PriceLine(product.Price, item.Quantity, d.StartDate, d.EndDate)
		if err != nil {
			totals.Lines[i] = lineError(err)
			continue
		}

		totals.Lines[i] = LineResult{
			PriceCents:       price,
			DepositCents:     deposit,
			DailyPriceCents:  product.Price.DailyCents,
			UnitDepositCents: product.Price.DepositCents,
		}
		totals.TotalPriceCents += price
		totals.TotalDepositCents += deposit
	}
	return totals, nil
}

func lineError(err error) LineResult {
	return LineResult{Err: err, Error: err.Error()}
}

// DeriveDeliveryAddress returns the delivery address a draft should carry:
// the customer's delivery address, else their home address, unless a custom
// override is active, in which case the current value is kept as-is.
func DeriveDeliveryAddress(customer *domain.Customer, overrideActive bool, current domain.Address) domain.Address {
	if overrideActive || customer == nil {
		return current
	}
	return customer.PreferredDeliveryAddress()
}

func readiness(d *Draft, customers CustomerDirectory) Readiness {
	if d.CustomerID == "" {
		return ReadinessIncomplete
	}
	if _, err := RentalDays(d.StartDate, d.EndDate); err != nil {
		return ReadinessIncomplete
	}

	priced := 0
	for i, item := range d.Items {
		if item.ProductID == "" {
			// Partially filled row; dropped silently at submission.
			continue
		}
		if d.Lines[i].Err != nil {
			return ReadinessInvalid
		}
		priced++
	}
	if priced == 0 {
		return ReadinessIncomplete
	}

	if _, ok := customers[d.CustomerID]; !ok {
		return ReadinessInvalid
	}
	if len(d.StockErrors) > 0 {
		return ReadinessInvalid
	}
	if !d.DeliveryAddress.IsComplete() {
		return ReadinessInvalid
	}
	return ReadinessReady
}

// Finalize turns a Ready draft into a committed rental order. Line items
// with no product selected are dropped silently, the draft is recomputed
// against the given snapshot (which must be no older than the most recent
// catalog fetch), and submission is refused while any annotation remains.
// The committed order freezes each line's daily rate and deposit and starts
// in the active status; the caller assigns the permanent identifier.
func Finalize(d Draft, catalog CatalogSnapshot, customers CustomerDirectory) (*domain.Rental, error) {
	kept := d.Items[:0:0]
	for _, item := range d.Items {
		if item.ProductID != "" {
			kept = append(kept, item)
		}
	}
	d.Items = kept

	d, err := Refresh(d, catalog, customers)
	if err != nil {
		return nil, err
	}
	if d.Readiness != ReadinessReady {
		return nil, ErrDraftNotReady
	}

	items := make([]domain.RentalLineItem, len(d.Items))
	for i, item := range d.Items {
		items[i] = domain.RentalLineItem{
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			DailyPriceCents: d.Lines[i].DailyPriceCents,
			DepositCents:    d.Lines[i].UnitDepositCents,
		}
	}

	return &domain.Rental{
		CustomerID:        d.CustomerID,
		Items:             items,
		StartDate:         d.StartDate,
		EndDate:           d.EndDate,
		Status:            domain.RentalStatusActive,
		TotalPriceCents:   d.TotalPriceCents,
		TotalDepositCents: d.TotalDepositCents,
		DeliveryAddress:   d.DeliveryAddress,
	}, nil
}
