package repositories

import (
	"context"

	"github.com/dukaanbook/dukaanbook_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SettingRepositoryFacade defines persistence operations for per-shop
// settings.
type SettingRepositoryFacade interface {
	// FindSettingByShop returns the shop's settings or
	// apperrors.ErrSettingsNotFound.
	FindSettingByShop(ctx context.Context, shopID string) (*domain.Setting, error)

	// SaveSetting upserts a shop's settings row.
	SaveSetting(ctx context.Context, setting domain.Setting) error

	// SumOpeningBalances folds the configured opening balance across every
	// shop's settings. No settings rows at all yields zero.
	SumOpeningBalances(ctx context.Context) (decimal.Decimal, error)
}
