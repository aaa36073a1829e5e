package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dukaanbook/dukaanbook_backend/internal/apperrors"
	"github.com/dukaanbook/dukaanbook_backend/internal/core/domain"
	"github.com/dukaanbook/dukaanbook_backend/internal/core/services"
)

func TestResolveOpeningBalanceBaselinePlusPriorNet(t *testing.T) {
	settingRepo := new(MockSettingRepository)
	shopRepo := new(MockShopRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewBalanceService(settingRepo, shopRepo, txnRepo)

	scope := domain.SingleShop("shop-1")
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	shopRepo.On("FindShopByID", mock.Anything, "shop-1").Return(&domain.Shop{ShopID: "shop-1"}, nil)
	settingRepo.On("FindSettingByShop", mock.Anything, "shop-1").Return(&domain.Setting{
		ShopID:            "shop-1",
		OpeningBalance:    decimal.NewFromInt(1000),
		OpeningBalanceSet: true,
	}, nil)
	txnRepo.On("SumPriorNet", mock.Anything, scope, "", start).Return(decimal.NewFromInt(-250), nil)

	got, err := svc.ResolveOpeningBalance(context.Background(), scope, "", &start)

	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(750)), "got %s", got)
}

func TestResolveOpeningBalanceNoWindowStart(t *testing.T) {
	settingRepo := new(MockSettingRepository)
	shopRepo := new(MockShopRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewBalanceService(settingRepo, shopRepo, txnRepo)

	shopRepo.On("FindShopByID", mock.Anything, "shop-1").Return(&domain.Shop{ShopID: "shop-1"}, nil)
	settingRepo.On("FindSettingByShop", mock.Anything, "shop-1").Return(&domain.Setting{
		ShopID:         "shop-1",
		OpeningBalance: decimal.NewFromInt(1000),
	}, nil)

	got, err := svc.ResolveOpeningBalance(context.Background(), domain.SingleShop("shop-1"), "", nil)

	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(1000)))
	txnRepo.AssertNotCalled(t, "SumPriorNet", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveOpeningBalanceMissingSettingsMeansZeroBaseline(t *testing.T) {
	settingRepo := new(MockSettingRepository)
	shopRepo := new(MockShopRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewBalanceService(settingRepo, shopRepo, txnRepo)

	scope := domain.SingleShop("shop-1")
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	shopRepo.On("FindShopByID", mock.Anything, "shop-1").Return(&domain.Shop{ShopID: "shop-1"}, nil)
	settingRepo.On("FindSettingByShop", mock.Anything, "shop-1").Return(nil, apperrors.ErrSettingsNotFound)
	txnRepo.On("SumPriorNet", mock.Anything, scope, "", start).Return(decimal.NewFromInt(100), nil)

	got, err := svc.ResolveOpeningBalance(context.Background(), scope, "", &start)

	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(100)))
}

func TestResolveOpeningBalanceEmptyPriorHistoryKeepsBaseline(t *testing.T) {
	settingRepo := new(MockSettingRepository)
	shopRepo := new(MockShopRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewBalanceService(settingRepo, shopRepo, txnRepo)

	scope := domain.SingleShop("shop-1")
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	shopRepo.On("FindShopByID", mock.Anything, "shop-1").Return(&domain.Shop{ShopID: "shop-1"}, nil)
	settingRepo.On("FindSettingByShop", mock.Anything, "shop-1").Return(&domain.Setting{
		ShopID:         "shop-1",
		OpeningBalance: decimal.NewFromInt(500),
	}, nil)
	txnRepo.On("SumPriorNet", mock.Anything, scope, "", start).Return(decimal.Zero, nil)

	got, err := svc.ResolveOpeningBalance(context.Background(), scope, "", &start)

	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(500)), "baseline must survive an empty history")
}

func TestResolveOpeningBalanceUnknownShop(t *testing.T) {
	settingRepo := new(MockSettingRepository)
	shopRepo := new(MockShopRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewBalanceService(settingRepo, shopRepo, txnRepo)

	shopRepo.On("FindShopByID", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound)

	_, err := svc.ResolveOpeningBalance(context.Background(), domain.SingleShop("ghost"), "", nil)

	assert.ErrorIs(t, err, apperrors.ErrShopNotFound)
}

func TestResolveOpeningBalanceEmptyShopID(t *testing.T) {
	settingRepo := new(MockSettingRepository)
	shopRepo := new(MockShopRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewBalanceService(settingRepo, shopRepo, txnRepo)

	_, err := svc.ResolveOpeningBalance(context.Background(), domain.SingleShop(""), "", nil)

	assert.ErrorIs(t, err, apperrors.ErrInvalidShopID)
}

func TestResolveOpeningBalanceAllShops(t *testing.T) {
	settingRepo := new(MockSettingRepository)
	shopRepo := new(MockShopRepository)
	txnRepo := new(MockTransactionRepository)
	svc := services.NewBalanceService(settingRepo, shopRepo, txnRepo)

	scope := domain.AllShops()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	// Shop A opens at 100, shop B at 0; prior entries net to -50.
	settingRepo.On("SumOpeningBalances", mock.Anything).Return(decimal.NewFromInt(100), nil)
	txnRepo.On("SumPriorNet", mock.Anything, scope, "", start).Return(decimal.NewFromInt(-50), nil)

	got, err := svc.ResolveOpeningBalance(context.Background(), scope, "", &start)

	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(50)))
	shopRepo.AssertNotCalled(t, "FindShopByID", mock.Anything, mock.Anything)
}
