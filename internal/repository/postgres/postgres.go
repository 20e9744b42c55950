package postgres

import (
	"database/sql"

	"rental-backoffice/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ProductRepository
	repository.CustomerRepository
	repository.RentalRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		ProductRepository:  NewProductRepository(db),
		CustomerRepository: NewCustomerRepository(db),
		RentalRepository:   NewRentalRepository(db),
		UserRepository:     NewUserRepository(db),
	}
}
