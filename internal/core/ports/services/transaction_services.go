package services

import (
	"context"

	"github.com/dukaanbook/dukaanbook_backend/internal/core/domain"
	"github.com/dukaanbook/dukaanbook_backend/internal/dto"
)

// TransactionSvcFacade defines ledger-entry CRUD. Every write keeps the
// owning customer's cached balance in step: create applies the signed delta,
// update reverses the old delta and applies the new one, delete reverses it.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string, userID string) error
	ListTransactions(ctx context.Context, scope domain.ShopScope, customerID string, startDate, endDate string) ([]domain.Transaction, error)
}

// CustomerSvcFacade defines customer management operations.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, shopID string) ([]domain.Customer, error)
}

// SettingSvcFacade defines per-shop settings operations, including the
// write-once opening-balance guard.
type SettingSvcFacade interface {
	GetSetting(ctx context.Context, shopID string) (*domain.Setting, error)
	UpdateSetting(ctx context.Context, shopID string, req dto.UpdateSettingRequest, userID string) (*domain.Setting, error)
}

// AuthSvcFacade authenticates users and issues access tokens.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
