package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rental-backoffice/internal/security"
	"rental-backoffice/internal/service"
)

// NewRouter wires the REST surface. Everything under /api requires a bearer
// token except the token endpoint itself.
func NewRouter(
	tokens security.TokenManager,
	authSvc service.AuthService,
	productSvc service.ProductService,
	customerSvc service.CustomerService,
	rentalSvc service.RentalService,
	invoiceSvc service.InvoiceService,
) http.Handler {
	authHandler := NewAuthHandler(authSvc)
	productHandler := NewProductHandler(productSvc)
	customerHandler := NewCustomerHandler(customerSvc)
	rentalHandler := NewRentalHandler(rentalSvc, invoiceSvc)

	r := mux.NewRouter()
	r.HandleFunc("/api/auth/token", authHandler.Token).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(AuthMiddleware(tokens))

	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)

	api.HandleFunc("/products", productHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/products", productHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}", productHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", productHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/products/{id}", productHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/customers", customerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/customers", customerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/customers/{id}", customerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", customerHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/customers/{id}", customerHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/rentals", rentalHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/rentals", rentalHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/rentals/preview", rentalHandler.Preview).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id}", rentalHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}", rentalHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/rentals/{id}", rentalHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/rentals/{id}/complete", rentalHandler.Complete).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id}/cancel", rentalHandler.Cancel).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id}/invoice", rentalHandler.Invoice).Methods(http.MethodGet)

	return LogMiddleware(r)
}
