package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a ledger entry is money owed to the shop
// (receivable) or owed by the shop (payable). The two are mutually exclusive.
type TransactionType string

const (
	Payable    TransactionType = "payable"
	Receivable TransactionType = "receivable"
)

// DefaultCategory is assigned when a transaction is recorded without one.
const DefaultCategory = "General"

// UncategorizedLabel is the bucket used in report summaries for transactions
// whose category is empty.
const UncategorizedLabel = "Uncategorized"

// Transaction is a single running-balance ledger entry belonging to one shop
// and one customer. Date is the ledger-effective date and is distinct from
// the CreatedAt audit field.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	ShopID          string          `json:"shopID"`
	CustomerID      string          `json:"customerID"`
	TransactionType TransactionType `json:"transactionType"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Payable         decimal.Decimal `json:"payable"`
	Receivable      decimal.Decimal `json:"receivable"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	Date            time.Time       `json:"date"`
	DueDate         *time.Time      `json:"dueDate,omitempty"`
	ImageURL        string          `json:"imageURL,omitempty"`
	AuditFields
}

// Validate enforces the type-exclusivity invariant: exactly one of
// payable/receivable is non-zero, it matches TransactionType, and it equals
// the gross amount.
func (t Transaction) Validate() error {
	if t.TotalAmount.IsNegative() {
		return fmt.Errorf("total amount must not be negative, got %s", t.TotalAmount)
	}
	switch t.TransactionType {
	case Payable:
		if !t.Receivable.IsZero() {
			return fmt.Errorf("payable transaction must not carry a receivable amount")
		}
		if t.Payable.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("payable transaction must carry a positive payable amount")
		}
		if !t.Payable.Equal(t.TotalAmount) {
			return fmt.Errorf("payable amount %s does not match total amount %s", t.Payable, t.TotalAmount)
		}
	case Receivable:
		if !t.Payable.IsZero() {
			return fmt.Errorf("receivable transaction must not carry a payable amount")
		}
		if t.Receivable.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("receivable transaction must carry a positive receivable amount")
		}
		if !t.Receivable.Equal(t.TotalAmount) {
			return fmt.Errorf("receivable amount %s does not match total amount %s", t.Receivable, t.TotalAmount)
		}
	default:
		return fmt.Errorf("unknown transaction type %q", t.TransactionType)
	}
	return nil
}

// SignedAmount returns the transaction's contribution to the ledger balance:
// +receivable for receivable entries, -payable for payable entries.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.TransactionType == Receivable {
		return t.Receivable
	}
	return t.Payable.Neg()
}

// Credit returns the credit leg of the entry (receivable amount, else zero).
func (t Transaction) Credit() decimal.Decimal {
	if t.TransactionType == Receivable {
		return t.Receivable
	}
	return decimal.Zero
}

// Debit returns the debit leg of the entry (payable amount, else zero).
func (t Transaction) Debit() decimal.Decimal {
	if t.TransactionType == Payable {
		return t.Payable
	}
	return decimal.Zero
}

// TypeLabel is the presentation label used in report tables.
func (t Transaction) TypeLabel() string {
	if t.TransactionType == Receivable {
		return "Credit"
	}
	return "Debit"
}

// CategoryOrDefault normalizes an empty category for report bucketing.
func (t Transaction) CategoryOrDefault() string {
	if t.Category == "" {
		return UncategorizedLabel
	}
	return t.Category
}
