package services

import (
	"context"
	"time"

	"github.com/dukaanbook/dukaanbook_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceResolverSvc determines the opening balance for a report window by
// replaying all prior transactions against the configured baseline.
type BalanceResolverSvc interface {
	// ResolveOpeningBalance returns the opening balance for the scope at
	// windowStart. A nil windowStart means the configured baseline alone.
	// customerID, when set, restricts the prior-transaction replay to that
	// customer. Always returns a finite amount for an empty history.
	ResolveOpeningBalance(ctx context.Context, scope domain.ShopScope, customerID string, windowStart *time.Time) (decimal.Decimal, error)
}
