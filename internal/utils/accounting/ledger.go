package accounting

import (
	"sort"

	"github.com/dukaanbook/dukaanbook_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Aggregate folds an already scope/date-filtered transaction set and a
// resolved opening balance into a report aggregate. Input order does not
// matter; sums are pure. All intermediate math keeps full decimal precision;
// 2-decimal rounding happens only at the output boundary (DTO/renderer).
func Aggregate(txns []domain.Transaction, openingBalance decimal.Decimal, meta domain.ReportMeta) domain.ReportAggregate {
	totalReceivables := decimal.Zero
	totalPayables := decimal.Zero

	// Category order is insertion order of first occurrence so table
	// rendering stays stable across runs.
	categoryIndex := make(map[string]int)
	var categories []domain.CategoryTotal

	for _, t := range txns {
		switch t.TransactionType {
		case domain.Receivable:
			totalReceivables = totalReceivables.Add(t.Receivable)
		case domain.Payable:
			totalPayables = totalPayables.Add(t.Payable)
		}

		name := t.CategoryOrDefault()
		idx, ok := categoryIndex[name]
		if !ok {
			idx = len(categories)
			categoryIndex[name] = idx
			categories = append(categories, domain.CategoryTotal{Category: name, Amount: decimal.Zero})
		}
		categories[idx].Amount = categories[idx].Amount.Add(t.SignedAmount())
	}

	closing := openingBalance.Add(totalReceivables).Sub(totalPayables)

	agg := domain.ReportAggregate{
		TotalReceivables: totalReceivables,
		TotalPayables:    totalPayables,
		Balance:          closing,
		OpeningBalance:   openingBalance,
		CategorySummary:  categories,
		Transactions:     txns,
		Meta:             meta,
	}
	agg.Meta.TransactionCount = len(txns)

	if len(txns) == 0 {
		agg.Alerts = append(agg.Alerts, domain.AlertNoTransactions)
	}
	if closing.IsNegative() {
		agg.Alerts = append(agg.Alerts, domain.AlertNegativeBalance)
	}
	return agg
}

// CalculateRunningBalance sorts transactions ascending by ledger-effective
// date and folds them into per-row running balances starting from the
// opening balance. The sort is stable, so same-instant entries keep their
// input order; that tie-break order carries no meaning.
func CalculateRunningBalance(txns []domain.Transaction, openingBalance decimal.Decimal) []domain.LedgerLine {
	sorted := make([]domain.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	lines := make([]domain.LedgerLine, 0, len(sorted))
	running := openingBalance
	for _, t := range sorted {
		credit := t.Credit()
		debit := t.Debit()
		running = running.Add(credit).Sub(debit)
		lines = append(lines, domain.LedgerLine{
			Transaction:    t,
			Credit:         credit,
			Debit:          debit,
			RunningBalance: running,
		})
	}
	return lines
}
