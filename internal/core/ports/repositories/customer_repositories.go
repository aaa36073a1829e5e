package repositories

import (
	"context"

	"github.com/dukaanbook/dukaanbook_backend/internal/core/domain"
)

// CustomerRepositoryFacade defines persistence operations for customers.
// The cached balance column is only ever mutated through the atomic deltas
// carried by transaction writes (see TransactionRepositoryFacade).
type CustomerRepositoryFacade interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// FindCustomerByID returns the customer or apperrors.ErrNotFound.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomersByShop returns all customers of a shop ordered by name.
	ListCustomersByShop(ctx context.Context, shopID string) ([]domain.Customer, error)
}
