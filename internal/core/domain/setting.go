package domain

import "github.com/shopspring/decimal"

// DefaultCurrency is used when a shop has not configured one.
const DefaultCurrency = "PKR"

// Setting holds per-shop configuration. OpeningBalance is the ledger
// baseline before any recorded transaction; OpeningBalanceSet is a
// write-once guard, once true further opening-balance writes are ignored.
type Setting struct {
	ShopID            string          `json:"shopID"`
	SiteName          string          `json:"siteName"`
	LogoURL           string          `json:"logoURL,omitempty"`
	Currency          string          `json:"currency"`
	OpeningBalance    decimal.Decimal `json:"openingBalance"`
	OpeningBalanceSet bool            `json:"openingBalanceSet"`
	AuditFields
}

// CurrencyOrDefault returns the configured currency, falling back to PKR.
func (s Setting) CurrencyOrDefault() string {
	if s.Currency == "" {
		return DefaultCurrency
	}
	return s.Currency
}
