package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dukaanbook/dukaanbook_backend/internal/apperrors"
	"github.com/dukaanbook/dukaanbook_backend/internal/core/domain"
	portsrepo "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/repositories"
)

type PgxShopRepository struct {
	BaseRepository
}

func newPgxShopRepository(db *pgxpool.Pool) portsrepo.ShopRepositoryFacade {
	return &PgxShopRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ShopRepositoryFacade = (*PgxShopRepository)(nil)

func (r *PgxShopRepository) FindShopByID(ctx context.Context, shopID string) (*domain.Shop, error) {
	query := `
		SELECT shop_id, name, owner_user_id, created_at, created_by, last_updated_at, last_updated_by
		FROM shops
		WHERE shop_id = $1;
	`
	var s domain.Shop
	err := r.Pool.QueryRow(ctx, query, shopID).Scan(
		&s.ShopID,
		&s.Name,
		&s.OwnerUserID,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrShopNotFound
		}
		return nil, fmt.Errorf("failed to find shop: %w", err)
	}
	return &s, nil
}

func (r *PgxShopRepository) SaveShop(ctx context.Context, shop domain.Shop) error {
	query := `
		INSERT INTO shops (shop_id, name, owner_user_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (shop_id) DO UPDATE SET
			name = EXCLUDED.name,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		shop.ShopID,
		shop.Name,
		shop.OwnerUserID,
		shop.CreatedAt,
		shop.CreatedBy,
		shop.LastUpdatedAt,
		shop.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save shop: %w", err)
	}
	return nil
}
