package jobs

import (
	"context"
	"time"

	"rental-backoffice/internal/logger"
)

// SendOverdueReminders emails every customer holding a rental whose derived
// status is overdue (stored active, end date in the past). The stored status
// is left untouched; the end date stays the single source of truth.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()
		today := time.Now().Format("2006-01-02")

		rentals, err := jr.rentalRepo.ListActiveEndedBefore(ctx, today)
		if err != nil {
			logger.Error("Failed to list overdue rentals", "error", err)
			return
		}

		sent := 0
		for i := range rentals {
			rental := &rentals[i]
			customer, err := jr.customerRepo.GetByID(ctx, rental.CustomerID)
			if err != nil {
				logger.Warn("Skipping overdue rental, customer lookup failed",
					"rental_id", rental.ID, "customer_id", rental.CustomerID, "error", err)
				continue
			}
			if err := jr.emailSvc.SendOverdueReminder(ctx, customer, rental); err != nil {
				logger.Warn("Skipping overdue rental, reminder send failed",
					"rental_id", rental.ID, "email", customer.Email, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent overdue reminders", "overdue", len(rentals), "sent", sent)
	})
}
