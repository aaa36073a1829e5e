package repositories

import (
	"context"

	"github.com/dukaanbook/dukaanbook_backend/internal/core/domain"
)

// ShopRepositoryFacade defines persistence operations for shops.
type ShopRepositoryFacade interface {
	// FindShopByID returns the shop or apperrors.ErrShopNotFound.
	FindShopByID(ctx context.Context, shopID string) (*domain.Shop, error)

	// SaveShop persists a new shop.
	SaveShop(ctx context.Context, shop domain.Shop) error
}
