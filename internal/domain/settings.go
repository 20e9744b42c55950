package domain

// Settings are application-wide display preferences. The engine and the
// invoice formatter pass them through unchanged.
type Settings struct {
	Currency        string          `json:"currency" yaml:"currency"`
	DateFormat      string          `json:"date_format" yaml:"date_format"`
	InvoiceTemplate InvoiceTemplate `json:"invoice_template" yaml:"invoice_template"`
}

type InvoiceTemplate struct {
	CompanyName    string      `json:"company_name" yaml:"company_name"`
	CompanyAddress Address     `json:"company_address" yaml:"company_address"`
	CompanyPhone   string      `json:"company_phone" yaml:"company_phone"`
	CompanyEmail   string      `json:"company_email" yaml:"company_email"`
	VATNumber      string      `json:"vat_number" yaml:"vat_number"`
	BankDetails    BankDetails `json:"bank_details" yaml:"bank_details"`
	Footer         string      `json:"footer" yaml:"footer"`
}

type BankDetails struct {
	BankName      string `json:"bank_name" yaml:"bank_name"`
	AccountName   string `json:"account_name" yaml:"account_name"`
	AccountNumber string `json:"account_number" yaml:"account_number"`
	SwiftCode     string `json:"swift_code" yaml:"swift_code"`
	IBAN          string `json:"iban" yaml:"iban"`
}
