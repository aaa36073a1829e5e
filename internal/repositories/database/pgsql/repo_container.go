package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		CustomerRepo:    newPgxCustomerRepository(dbPool),
		ShopRepo:        newPgxShopRepository(dbPool),
		SettingRepo:     newPgxSettingRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
