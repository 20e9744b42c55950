package postgres

import (
	"context"
	"database/sql"
	"time"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/logger"
	"rental-backoffice/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, customer_id, start_date, end_date, status, total_price_cents, total_deposit_cents,
	delivery_street, delivery_city, delivery_state, delivery_zip, delivery_country, created_on, updated_on`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (` + rentalColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	now := time.Now()
	rt.CreatedOn = now
	rt.UpdatedOn = now
	_, err := r.db.ExecContext(ctx, query, rt.ID, rt.CustomerID, rt.StartDate, rt.EndDate, rt.Status,
		rt.TotalPriceCents, rt.TotalDepositCents,
		rt.DeliveryAddress.Street, rt.DeliveryAddress.City, rt.DeliveryAddress.State,
		rt.DeliveryAddress.ZipCode, rt.DeliveryAddress.Country, now, now)
	if err != nil {
		return err
	}
	return r.replaceItems(ctx, rt.ID, rt.Items)
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rt.ID, &rt.CustomerID, &rt.StartDate, &rt.EndDate, &rt.Status,
		&rt.TotalPriceCents, &rt.TotalDepositCents,
		&rt.DeliveryAddress.Street, &rt.DeliveryAddress.City, &rt.DeliveryAddress.State,
		&rt.DeliveryAddress.ZipCode, &rt.DeliveryAddress.Country, &rt.CreatedOn, &rt.UpdatedOn)
	if err != nil {
		return nil, err
	}
	if rt.Items, err = r.loadItems(ctx, rt.ID); err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) List(ctx context.Context, status string) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.CustomerID, &rt.StartDate, &rt.EndDate, &rt.Status,
			&rt.TotalPriceCents, &rt.TotalDepositCents,
			&rt.DeliveryAddress.Street, &rt.DeliveryAddress.City, &rt.DeliveryAddress.State,
			&rt.DeliveryAddress.ZipCode, &rt.DeliveryAddress.Country, &rt.CreatedOn, &rt.UpdatedOn); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range rentals {
		if rentals[i].Items, err = r.loadItems(ctx, rentals[i].ID); err != nil {
			return nil, err
		}
	}
	return rentals, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET customer_id=$1, start_date=$2, end_date=$3, status=$4, total_price_cents=$5, total_deposit_cents=$6,
	          delivery_street=$7, delivery_city=$8, delivery_state=$9, delivery_zip=$10, delivery_country=$11, updated_on=$12
	          WHERE id=$13`
	rt.UpdatedOn = time.Now()
	_, err := r.db.ExecContext(ctx, query, rt.CustomerID, rt.StartDate, rt.EndDate, rt.Status,
		rt.TotalPriceCents, rt.TotalDepositCents,
		rt.DeliveryAddress.Street, rt.DeliveryAddress.City, rt.DeliveryAddress.State,
		rt.DeliveryAddress.ZipCode, rt.DeliveryAddress.Country, rt.UpdatedOn, rt.ID)
	if err != nil {
		return err
	}
	return r.replaceItems(ctx, rt.ID, rt.Items)
}

func (r *rentalRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM rental_items WHERE rental_id = $1`, id); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	return err
}

func (r *rentalRepository) ListActiveEndedBefore(ctx context.Context, date string) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status = $1 AND end_date < $2 ORDER BY end_date`
	rows, err := r.db.QueryContext(ctx, query, domain.RentalStatusActive, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.CustomerID, &rt.StartDate, &rt.EndDate, &rt.Status,
			&rt.TotalPriceCents, &rt.TotalDepositCents,
			&rt.DeliveryAddress.Street, &rt.DeliveryAddress.City, &rt.DeliveryAddress.State,
			&rt.DeliveryAddress.ZipCode, &rt.DeliveryAddress.Country, &rt.CreatedOn, &rt.UpdatedOn); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range rentals {
		if rentals[i].Items, err = r.loadItems(ctx, rentals[i].ID); err != nil {
			return nil, err
		}
	}
	return rentals, nil
}

func (r *rentalRepository) loadItems(ctx context.Context, rentalID string) ([]domain.RentalLineItem, error) {
	query := `SELECT product_id, quantity, daily_price_cents, deposit_cents FROM rental_items WHERE rental_id = $1 ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.RentalLineItem
	for rows.Next() {
		var item domain.RentalLineItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.DailyPriceCents, &item.DepositCents); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *rentalRepository) replaceItems(ctx context.Context, rentalID string, items []domain.RentalLineItem) error {
	logger.Debug("Replacing rental items", "rental_id", rentalID, "count", len(items))
	if _, err := r.db.ExecContext(ctx, `DELETE FROM rental_items WHERE rental_id = $1`, rentalID); err != nil {
		return err
	}
	query := `INSERT INTO rental_items (rental_id, position, product_id, quantity, daily_price_cents, deposit_cents)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	for i, item := range items {
		if _, err := r.db.ExecContext(ctx, query, rentalID, i, item.ProductID, item.Quantity, item.DailyPriceCents, item.DepositCents); err != nil {
			return err
		}
	}
	return nil
}
