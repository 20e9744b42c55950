package engine

import (
	"fmt"
	"time"

	"rental-backoffice/internal/domain"
)

const dateLayout = "2006-01-02"

// RentalDays returns the rental length in whole days with both endpoints
// included: renting from the 1st through the 7th is 7 days. ErrInvalidRange
// is returned for unparseable dates or an end date before the start date.
func RentalDays(startDate, endDate string) (int64, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0, fmt.Errorf("%w: bad start date %q", ErrInvalidRange, startDate)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0, fmt.Errorf("%w: bad end date %q", ErrInvalidRange, endDate)
	}

	days := int64(end.Sub(start)/(24*time.Hour)) + 1
	if days <= 0 {
		return 0, ErrInvalidRange
	}
	return days, nil
}

// PriceLine computes the total price and deposit for one line item, in cents.
//
// Tier selection is most-coarse-first: if a monthly rate exists and the
// rental is at least 30 days, whole 30-day blocks are charged at the monthly
// rate and the remainder days at the daily rate. Otherwise, if a weekly rate
// exists and the rental is at least 7 days, whole weeks are charged at the
// weekly rate and the remainder days at the daily rate. Otherwise every day
// is charged at the daily rate. Remainders never cascade into a finer
// non-daily tier.
//
// The deposit is per unit and independent of duration.
//
// PriceLine is a pure function: identical inputs always produce identical
// outputs.
func PriceLine(schedule domain.PriceSchedule, quantity int32, startDate, endDate string) (totalCents, depositCents int64, err error) {
	if quantity <= 0 {
		return 0, 0, ErrInvalidQuantity
	}

	days, err := RentalDays(startDate, endDate)
	if err != nil {
		return 0, 0, err
	}

	var unitCents int64
	switch {
	case schedule.HasMonthly() && days >= 30:
		months := days / 30
		remainder := days % 30
		unitCents = months*schedule.MonthlyCents + remainder*schedule.DailyCents
	case schedule.HasWeekly() && days >= 7:
		weeks := days / 7
		remainder := days % 7
		unitCents = weeks*schedule.WeeklyCents + remainder*schedule.DailyCents
	default:
		unitCents = days * schedule.DailyCents
	}

	qty := int64(quantity)
	return unitCents * qty, schedule.DepositCents * qty, nil
}
