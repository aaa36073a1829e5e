package repositories

import (
	"context"
	"time"

	"github.com/dukaanbook/dukaanbook_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionFilter narrows a ledger query to a shop scope, an optional
// customer and an optional date window (ledger-effective dates, inclusive).
type TransactionFilter struct {
	Scope      domain.ShopScope
	CustomerID string
	From       *time.Time
	To         *time.Time
}

// TransactionRepositoryFacade defines persistence operations for ledger
// entries. Writes that change a transaction's signed contribution also carry
// the delta to apply to the owning customer's cached balance; the repository
// must apply that delta as an atomic increment inside the same database
// transaction, never as a read-modify-write.
type TransactionRepositoryFacade interface {
	// SaveTransaction persists a new entry and applies balanceDelta to the
	// customer's cached balance atomically.
	SaveTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error

	// FindTransactionByID returns the entry or apperrors.ErrNotFound.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// UpdateTransaction overwrites an entry and applies balanceDelta (new
	// signed amount minus old signed amount) atomically.
	UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error

	// DeleteTransaction removes an entry and applies balanceDelta (the
	// reversal of its signed amount) atomically.
	DeleteTransaction(ctx context.Context, transactionID, customerID string, balanceDelta decimal.Decimal) error

	// FindForReport returns all entries matching the filter. Order is not
	// guaranteed; callers sort as needed.
	FindForReport(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)

	// SumPriorNet folds every entry strictly before the given instant (same
	// scope and optional customer) into a single signed net amount
	// (+receivable, -payable). An empty history yields zero, not an error.
	SumPriorNet(ctx context.Context, scope domain.ShopScope, customerID string, before time.Time) (decimal.Decimal, error)
}
