package domain

import "time"

type Customer struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	HomeAddress Address `json:"home_address"`
	// DeliveryAddress is optional; orders fall back to HomeAddress when it
	// is absent.
	DeliveryAddress *Address  `json:"delivery_address,omitempty"`
	JoinDate        time.Time `json:"join_date"`
}

// FullName returns the customer's display name.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// PreferredDeliveryAddress returns the delivery address if set, otherwise
// the home address.
func (c *Customer) PreferredDeliveryAddress() Address {
	if c.DeliveryAddress != nil {
		return *c.DeliveryAddress
	}
	return c.HomeAddress
}
