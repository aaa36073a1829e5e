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
	"github.com/dukaanbook/dukaanbook_backend/internal/utils"
)

// transactionService manages ledger entries. Every write carries the signed
// delta the repository applies to the customer's cached balance in the same
// database transaction.
type transactionService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewTransactionService creates the ledger entry service.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	customerRepo portsrepo.CustomerRepositoryFacade,
) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo, customerRepo: customerRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %s", apperrors.ErrInvalidCustomerID, req.CustomerID)
		}
		return nil, fmt.Errorf("failed to verify customer: %w", err)
	}

	date, err := utils.ParseStrictDate(req.Date, false)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		d, err := utils.ParseStrictDate(req.DueDate, false)
		if err != nil {
			return nil, fmt.Errorf("invalid dueDate: %w", err)
		}
		dueDate = &d
	}

	category := req.Category
	if category == "" {
		category = domain.DefaultCategory
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		ShopID:          req.ShopID,
		CustomerID:      req.CustomerID,
		TransactionType: domain.TransactionType(req.TransactionType),
		TotalAmount:     utils.ToDecimal(req.Amount, decimal.Zero),
		Category:        category,
		Description:     req.Description,
		Date:            date,
		DueDate:         dueDate,
		ImageURL:        req.ImageURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	switch txn.TransactionType {
	case domain.Payable:
		txn.Payable = txn.TotalAmount
		txn.Receivable = decimal.Zero
	case domain.Receivable:
		txn.Receivable = txn.TotalAmount
		txn.Payable = decimal.Zero
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn, txn.SignedAmount()); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("shopID", req.ShopID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transactionID", txn.TransactionID),
		slog.String("type", string(txn.TransactionType)))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	oldSigned := existing.SignedAmount()

	if req.TransactionType != nil {
		updated.TransactionType = domain.TransactionType(*req.TransactionType)
	}
	if req.Amount != nil {
		updated.TotalAmount = utils.ToDecimal(*req.Amount, decimal.Zero)
	}
	switch updated.TransactionType {
	case domain.Payable:
		updated.Payable = updated.TotalAmount
		updated.Receivable = decimal.Zero
	case domain.Receivable:
		updated.Receivable = updated.TotalAmount
		updated.Payable = decimal.Zero
	}
	if req.Category != nil {
		updated.Category = *req.Category
		if updated.Category == "" {
			updated.Category = domain.DefaultCategory
		}
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Date != nil {
		date, err := utils.ParseStrictDate(*req.Date, false)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		updated.Date = date
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			updated.DueDate = nil
		} else {
			d, err := utils.ParseStrictDate(*req.DueDate, false)
			if err != nil {
				return nil, fmt.Errorf("invalid dueDate: %w", err)
			}
			updated.DueDate = &d
		}
	}
	if req.ImageURL != nil {
		updated.ImageURL = *req.ImageURL
	}
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = userID

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	// The cached balance moves by the difference between the new and old
	// signed contributions.
	delta := updated.SignedAmount().Sub(oldSigned)
	if err := s.txnRepo.UpdateTransaction(ctx, updated, delta); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transactionID", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transactionID", transactionID))
	return &updated, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}

	reversal := existing.SignedAmount().Neg()
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID, existing.CustomerID, reversal); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transactionID", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction deleted",
		slog.String("transactionID", transactionID),
		slog.String("deletedBy", userID))
	return nil
}

func (s *transactionService) ListTransactions(ctx context.Context, scope domain.ShopScope, customerID string, startDate, endDate string) ([]domain.Transaction, error) {
	var from, to *time.Time
	if startDate != "" {
		t, err := utils.ParseStrictDate(startDate, false)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %w", err)
		}
		from = &t
	}
	if endDate != "" {
		t, err := utils.ParseStrictDate(endDate, true)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %w", err)
		}
		to = &t
	}
	if err := utils.ValidateDateRange(from, to); err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.FindForReport(ctx, portsrepo.TransactionFilter{
		Scope:      scope,
		CustomerID: customerID,
		From:       from,
		To:         to,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}
