package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukaanbook/dukaanbook_backend/internal/apperrors"
	"github.com/dukaanbook/dukaanbook_backend/internal/core/domain"
	portsrepo "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/repositories"
	portssvc "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/services"
	"github.com/dukaanbook/dukaanbook_backend/internal/dto"
)

type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	shopRepo     portsrepo.ShopRepositoryFacade
}

// NewCustomerService creates the customer management service.
func NewCustomerService(
	customerRepo portsrepo.CustomerRepositoryFacade,
	shopRepo portsrepo.ShopRepositoryFacade,
) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo, shopRepo: shopRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error) {
	if _, err := s.shopRepo.FindShopByID(ctx, req.ShopID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrShopNotFound) {
			return nil, fmt.Errorf("%w: shop %s", apperrors.ErrShopNotFound, req.ShopID)
		}
		return nil, fmt.Errorf("failed to verify shop: %w", err)
	}

	now := time.Now()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		ShopID:     req.ShopID,
		Name:       req.Name,
		Phone:      req.Phone,
		Balance:    decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("shopID", req.ShopID))
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	s.LogInfo(ctx, "Customer created", slog.String("customerID", customer.CustomerID))
	return &customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, shopID string) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomersByShop(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}
