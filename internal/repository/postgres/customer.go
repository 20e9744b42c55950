package postgres

import (
	"context"
	"database/sql"
	"time"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, first_name, last_name, email, phone,
	home_street, home_city, home_state, home_zip, home_country,
	delivery_street, delivery_city, delivery_state, delivery_zip, delivery_country,
	join_date`

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (` + customerColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	var ds, dc, dst, dz, dco sql.NullString
	if c.DeliveryAddress != nil {
		a := c.DeliveryAddress
		ds = sql.NullString{String: a.Street, Valid: true}
		dc = sql.NullString{String: a.City, Valid: true}
		dst = sql.NullString{String: a.State, Valid: true}
		dz = sql.NullString{String: a.ZipCode, Valid: true}
		dco = sql.NullString{String: a.Country, Valid: true}
	}
	if c.JoinDate.IsZero() {
		c.JoinDate = time.Now()
	}
	_, err := r.db.ExecContext(ctx, query, c.ID, c.FirstName, c.LastName, c.Email, c.Phone,
		c.HomeAddress.Street, c.HomeAddress.City, c.HomeAddress.State, c.HomeAddress.ZipCode, c.HomeAddress.Country,
		ds, dc, dst, dz, dco, c.JoinDate)
	return err
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	return scanCustomer(row.Scan)
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows.Scan)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET first_name=$1, last_name=$2, email=$3, phone=$4,
	          home_street=$5, home_city=$6, home_state=$7, home_zip=$8, home_country=$9,
	          delivery_street=$10, delivery_city=$11, delivery_state=$12, delivery_zip=$13, delivery_country=$14
	          WHERE id=$15`
	var ds, dc, dst, dz, dco sql.NullString
	if c.DeliveryAddress != nil {
		a := c.DeliveryAddress
		ds = sql.NullString{String: a.Street, Valid: true}
		dc = sql.NullString{String: a.City, Valid: true}
		dst = sql.NullString{String: a.State, Valid: true}
		dz = sql.NullString{String: a.ZipCode, Valid: true}
		dco = sql.NullString{String: a.Country, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, query, c.FirstName, c.LastName, c.Email, c.Phone,
		c.HomeAddress.Street, c.HomeAddress.City, c.HomeAddress.State, c.HomeAddress.ZipCode, c.HomeAddress.Country,
		ds, dc, dst, dz, dco, c.ID)
	return err
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	return err
}

func scanCustomer(scan func(dest ...any) error) (*domain.Customer, error) {
	c := &domain.Customer{}
	var ds, dc, dst, dz, dco sql.NullString
	err := scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
		&c.HomeAddress.Street, &c.HomeAddress.City, &c.HomeAddress.State, &c.HomeAddress.ZipCode, &c.HomeAddress.Country,
		&ds, &dc, &dst, &dz, &dco, &c.JoinDate)
	if err != nil {
		return nil, err
	}
	if ds.Valid {
		c.DeliveryAddress = &domain.Address{
			Street:  ds.String,
			City:    dc.String,
			State:   dst.String,
			ZipCode: dz.String,
			Country: dco.String,
		}
	}
	return c, nil
}
