package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dukaanbook/dukaanbook_backend/internal/apperrors"
	"github.com/dukaanbook/dukaanbook_backend/internal/core/domain"
	portsrepo "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/repositories"
	portssvc "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/services"
	"github.com/dukaanbook/dukaanbook_backend/internal/dto"
)

type settingService struct {
	BaseService
	settingRepo portsrepo.SettingRepositoryFacade
	shopRepo    portsrepo.ShopRepositoryFacade
}

// NewSettingService creates the per-shop settings service.
func NewSettingService(
	settingRepo portsrepo.SettingRepositoryFacade,
	shopRepo portsrepo.ShopRepositoryFacade,
) portssvc.SettingSvcFacade {
	return &settingService{settingRepo: settingRepo, shopRepo: shopRepo}
}

var _ portssvc.SettingSvcFacade = (*settingService)(nil)

func (s *settingService) GetSetting(ctx context.Context, shopID string) (*domain.Setting, error) {
	setting, err := s.settingRepo.FindSettingByShop(ctx, shopID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSettingsNotFound) || errors.Is(err, apperrors.ErrNotFound) {
			// A shop without a settings row still reads as defaults.
			return &domain.Setting{ShopID: shopID, Currency: domain.DefaultCurrency}, nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return setting, nil
}

// UpdateSetting upserts a shop's settings. The opening balance is honored
// only on its first write; once set it is immutable and later values in the
// request are ignored.
func (s *settingService) UpdateSetting(ctx context.Context, shopID string, req dto.UpdateSettingRequest, userID string) (*domain.Setting, error) {
	if _, err := s.shopRepo.FindShopByID(ctx, shopID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrShopNotFound) {
			return nil, fmt.Errorf("%w: shop %s", apperrors.ErrShopNotFound, shopID)
		}
		return nil, fmt.Errorf("failed to verify shop: %w", err)
	}

	now := time.Now()
	setting, err := s.settingRepo.FindSettingByShop(ctx, shopID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrSettingsNotFound) && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		setting = &domain.Setting{
			ShopID:   shopID,
			Currency: domain.DefaultCurrency,
			AuditFields: domain.AuditFields{
				CreatedAt: now,
				CreatedBy: userID,
			},
		}
	}

	if req.SiteName != nil {
		setting.SiteName = *req.SiteName
	}
	if req.LogoURL != nil {
		setting.LogoURL = *req.LogoURL
	}
	if req.Currency != nil {
		setting.Currency = *req.Currency
	}
	if req.OpeningBalance != nil {
		if setting.OpeningBalanceSet {
			s.LogInfo(ctx, "Opening balance already set, ignoring new value",
				slog.String("shopID", shopID))
		} else {
			setting.OpeningBalance = decimal.NewFromFloat(*req.OpeningBalance)
			setting.OpeningBalanceSet = true
		}
	}
	setting.LastUpdatedAt = now
	setting.LastUpdatedBy = userID

	if err := s.settingRepo.SaveSetting(ctx, *setting); err != nil {
		s.LogError(ctx, err, "Failed to save settings", slog.String("shopID", shopID))
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	s.LogInfo(ctx, "Settings updated", slog.String("shopID", shopID))
	return setting, nil
}
