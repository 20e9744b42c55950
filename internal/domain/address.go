package domain

// Address is a full postal address. Partial addresses are invalid: when an
// address is present at all, every field must be non-empty.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// IsZero reports whether no field of the address has been filled in.
func (a Address) IsZero() bool {
	return a == Address{}
}

// IsComplete reports whether every field of the address is filled in.
func (a Address) IsComplete() bool {
	return a.Street != "" && a.City != "" && a.State != "" && a.ZipCode != "" && a.Country != ""
}
