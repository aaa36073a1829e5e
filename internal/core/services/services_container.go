package services

import (
	portsrepo "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/repositories"
	portssvc "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/services"
	"github.com/dukaanbook/dukaanbook_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, blobs portssvc.BlobStore, images portssvc.ImageFetcher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	balances := NewBalanceService(repos.SettingRepo, repos.ShopRepo, repos.TransactionRepo)

	container.Report = NewReportService(
		repos.TransactionRepo,
		repos.CustomerRepo,
		repos.SettingRepo,
		balances,
		blobs,
		images,
	)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.CustomerRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo, repos.ShopRepo)
	container.Setting = NewSettingService(repos.SettingRepo, repos.ShopRepo)
	container.Auth = NewAuthService(cfg, repos.UserRepo)

	return container
}
