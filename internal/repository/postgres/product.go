package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/repository"
)

// ErrStockConflict is returned when a stock adjustment would push
// stock_available outside [0, stock_total].
var ErrStockConflict = errors.New("stock adjustment out of range")

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO products (id, name, description, category, price_daily_cents, price_weekly_cents, price_monthly_cents, deposit_cents, stock_total, stock_available, image_url, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Description, p.Category,
		p.Price.DailyCents, p.Price.WeeklyCents, p.Price.MonthlyCents, p.Price.DepositCents,
		p.StockTotal, p.StockAvailable, p.ImageURL, now, now)
	return err
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	p := &domain.Product{}
	query := `SELECT id, name, COALESCE(description, ''), COALESCE(category, ''), price_daily_cents, COALESCE(price_weekly_cents, 0), COALESCE(price_monthly_cents, 0), deposit_cents, stock_total, stock_available, COALESCE(image_url, ''), created_on, updated_on
	          FROM products WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.Category,
		&p.Price.DailyCents, &p.Price.WeeklyCents, &p.Price.MonthlyCents, &p.Price.DepositCents,
		&p.StockTotal, &p.StockAvailable, &p.ImageURL, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT id, name, COALESCE(description, ''), COALESCE(category, ''), price_daily_cents, COALESCE(price_weekly_cents, 0), COALESCE(price_monthly_cents, 0), deposit_cents, stock_total, stock_available, COALESCE(image_url, ''), created_on, updated_on
	          FROM products ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category,
			&p.Price.DailyCents, &p.Price.WeeklyCents, &p.Price.MonthlyCents, &p.Price.DepositCents,
			&p.StockTotal, &p.StockAvailable, &p.ImageURL, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	query := `UPDATE products SET name=$1, description=$2, category=$3, price_daily_cents=$4, price_weekly_cents=$5, price_monthly_cents=$6, deposit_cents=$7, stock_total=$8, stock_available=$9, image_url=$10, updated_on=$11 WHERE id=$12`
	_, err := r.db.ExecContext(ctx, query, p.Name, p.Description, p.Category,
		p.Price.DailyCents, p.Price.WeeklyCents, p.Price.MonthlyCents, p.Price.DepositCents,
		p.StockTotal, p.StockAvailable, p.ImageURL, time.Now(), p.ID)
	return err
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}

func (r *productRepository) AdjustStock(ctx context.Context, id string, delta int32) error {
	query := `UPDATE products SET stock_available = stock_available + $1, updated_on = $2
	          WHERE id = $3 AND stock_available + $1 >= 0 AND stock_available + $1 <= stock_total`
	res, err := r.db.ExecContext(ctx, query, delta, time.Now(), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrStockConflict
	}
	return nil
}
