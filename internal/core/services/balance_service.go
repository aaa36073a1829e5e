package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dukaanbook/dukaanbook_backend/internal/apperrors"
	"github.com/dukaanbook/dukaanbook_backend/internal/core/domain"
	portsrepo "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/repositories"
	portssvc "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// balanceService resolves opening balances for report windows.
type balanceService struct {
	BaseService
	settingRepo portsrepo.SettingRepositoryFacade
	shopRepo    portsrepo.ShopRepositoryFacade
	txnRepo     portsrepo.TransactionRepositoryFacade
}

// NewBalanceService creates the opening-balance resolver.
func NewBalanceService(
	settingRepo portsrepo.SettingRepositoryFacade,
	shopRepo portsrepo.ShopRepositoryFacade,
	txnRepo portsrepo.TransactionRepositoryFacade,
) portssvc.BalanceResolverSvc {
	return &balanceService{
		settingRepo: settingRepo,
		shopRepo:    shopRepo,
		txnRepo:     txnRepo,
	}
}

var _ portssvc.BalanceResolverSvc = (*balanceService)(nil)

// ResolveOpeningBalance computes baseline + Σ(prior signed amounts). The
// baseline always applies: an empty prior history yields the baseline, not
// zero. The result is always finite; only identifier problems fail.
func (s *balanceService) ResolveOpeningBalance(ctx context.Context, scope domain.ShopScope, customerID string, windowStart *time.Time) (decimal.Decimal, error) {
	baseline, err := s.resolveBaseline(ctx, scope)
	if err != nil {
		return decimal.Zero, err
	}

	if windowStart == nil {
		return baseline, nil
	}

	// Pure sum; chronological order of the prior entries does not matter.
	priorNet, err := s.txnRepo.SumPriorNet(ctx, scope, customerID, *windowStart)
	if err != nil {
		s.LogError(ctx, err, "Failed to fold prior transactions for opening balance",
			slog.String("scope", scope.String()))
		return decimal.Zero, fmt.Errorf("failed to fold prior transactions: %w", err)
	}

	return baseline.Add(priorNet), nil
}

func (s *balanceService) resolveBaseline(ctx context.Context, scope domain.ShopScope) (decimal.Decimal, error) {
	if scope.IsAll() {
		// One aggregate query across every shop's settings; the fold is a
		// plain sum, so the result is deterministic regardless of row order.
		total, err := s.settingRepo.SumOpeningBalances(ctx)
		if err != nil {
			s.LogError(ctx, err, "Failed to sum opening balances across shops")
			return decimal.Zero, fmt.Errorf("failed to sum opening balances: %w", err)
		}
		return total, nil
	}

	shopID, _ := scope.ShopID()
	if shopID == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", apperrors.ErrInvalidShopID)
	}

	if _, err := s.shopRepo.FindShopByID(ctx, shopID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrShopNotFound) {
			return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrShopNotFound, shopID)
		}
		return decimal.Zero, fmt.Errorf("failed to look up shop %s: %w", shopID, err)
	}

	setting, err := s.settingRepo.FindSettingByShop(ctx, shopID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSettingsNotFound) || errors.Is(err, apperrors.ErrNotFound) {
			// No settings row yet: the baseline is simply zero.
			return decimal.Zero, nil
		}
		s.LogError(ctx, err, "Failed to load shop settings", slog.String("shop_id", shopID))
		return decimal.Zero, fmt.Errorf("failed to load settings for shop %s: %w", shopID, err)
	}

	return setting.OpeningBalance, nil
}
