package domain

import "github.com/shopspring/decimal"

// Customer belongs to a single shop. Balance is a cached derived value kept
// current by incremental updates on every transaction write; the report
// engine recomputes balances from the transaction log independently, so the
// two sources can drift (known consistency gap, not reconciled here).
type Customer struct {
	CustomerID string          `json:"customerID"`
	ShopID     string          `json:"shopID"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone,omitempty"`
	Balance    decimal.Decimal `json:"balance"`
	AuditFields
}
