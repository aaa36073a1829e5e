package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Advisory alerts attached to a report aggregate. They are informational,
// never errors.
const (
	AlertNoTransactions  = "No transactions recorded for the selected period."
	AlertNegativeBalance = "Negative cash balance detected."
)

// CategoryTotal is one row of the category summary: the signed net amount a
// category contributed to the window (+receivable, -payable).
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// ReportMeta describes the window the aggregate was computed over.
type ReportMeta struct {
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	TransactionCount int        `json:"transactionCount"`
	CustomerID       string     `json:"customerID,omitempty"`
	ShopScope        string     `json:"shopID"`
}

// ReportAggregate is the ephemeral result of one ledger aggregation. It is
// computed fresh per request and discarded after rendering; nothing here is
// persisted. CategorySummary preserves insertion order of first occurrence
// so table rendering is stable.
type ReportAggregate struct {
	TotalReceivables decimal.Decimal `json:"totalReceivables"`
	TotalPayables    decimal.Decimal `json:"totalPayables"`
	Balance          decimal.Decimal `json:"balance"`
	OpeningBalance   decimal.Decimal `json:"openingBalance"`
	CategorySummary  []CategoryTotal `json:"categorySummary"`
	Transactions     []Transaction   `json:"transactions"`
	Alerts           []string        `json:"alerts,omitempty"`
	Meta             ReportMeta      `json:"metadata"`
}

// LedgerLine is one row of a daily statement: a transaction with its credit
// and debit legs and the running balance after applying it.
type LedgerLine struct {
	Transaction    Transaction     `json:"transaction"`
	Credit         decimal.Decimal `json:"credit"`
	Debit          decimal.Decimal `json:"debit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}
