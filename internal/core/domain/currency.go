package domain

// Currency represents a currency accounts can be denominated in.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // ISO 4217 code, Primary Key
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	AuditFields
}
