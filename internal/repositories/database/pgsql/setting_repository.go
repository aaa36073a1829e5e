package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/dukaanbook/dukaanbook_backend/internal/apperrors"
	"github.com/dukaanbook/dukaanbook_backend/internal/core/domain"
	portsrepo "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/repositories"
)

type PgxSettingRepository struct {
	BaseRepository
}

func newPgxSettingRepository(db *pgxpool.Pool) portsrepo.SettingRepositoryFacade {
	return &PgxSettingRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.SettingRepositoryFacade = (*PgxSettingRepository)(nil)

func (r *PgxSettingRepository) FindSettingByShop(ctx context.Context, shopID string) (*domain.Setting, error) {
	query := `
		SELECT shop_id, site_name, logo_url, currency, opening_balance, opening_balance_set,
			created_at, created_by, last_updated_at, last_updated_by
		FROM settings
		WHERE shop_id = $1;
	`
	var s domain.Setting
	err := r.Pool.QueryRow(ctx, query, shopID).Scan(
		&s.ShopID,
		&s.SiteName,
		&s.LogoURL,
		&s.Currency,
		&s.OpeningBalance,
		&s.OpeningBalanceSet,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to find settings: %w", err)
	}
	return &s, nil
}

// SaveSetting upserts the shop's settings row. The write-once guard on the
// opening balance is enforced in the conflict clause as well: once
// opening_balance_set is true the stored value wins.
func (r *PgxSettingRepository) SaveSetting(ctx context.Context, setting domain.Setting) error {
	query := `
		INSERT INTO settings (shop_id, site_name, logo_url, currency, opening_balance, opening_balance_set,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (shop_id) DO UPDATE SET
			site_name = EXCLUDED.site_name,
			logo_url = EXCLUDED.logo_url,
			currency = EXCLUDED.currency,
			opening_balance = CASE WHEN settings.opening_balance_set THEN settings.opening_balance ELSE EXCLUDED.opening_balance END,
			opening_balance_set = settings.opening_balance_set OR EXCLUDED.opening_balance_set,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		setting.ShopID,
		setting.SiteName,
		setting.LogoURL,
		setting.Currency,
		setting.OpeningBalance,
		setting.OpeningBalanceSet,
		setting.CreatedAt,
		setting.CreatedBy,
		setting.LastUpdatedAt,
		setting.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (r *PgxSettingRepository) SumOpeningBalances(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(opening_balance), 0) FROM settings;`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum opening balances: %w", err)
	}
	return total, nil
}
