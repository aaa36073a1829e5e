package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/dukaanbook/dukaanbook_backend/internal/apperrors"
	"github.com/dukaanbook/dukaanbook_backend/internal/core/domain"
	portsrepo "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/repositories"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `
	transaction_id, shop_id, customer_id, transaction_type, total_amount,
	payable, receivable, category, description, date, due_date, image_url,
	created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(
		&t.TransactionID,
		&t.ShopID,
		&t.CustomerID,
		&t.TransactionType,
		&t.TotalAmount,
		&t.Payable,
		&t.Receivable,
		&t.Category,
		&t.Description,
		&t.Date,
		&t.DueDate,
		&t.ImageURL,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	return t, err
}

// SaveTransaction inserts the entry and moves the customer's cached balance
// by balanceDelta inside one database transaction. The balance move is an
// in-place increment so concurrent writers cannot lose updates.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = tx.Exec(ctx, query,
		txn.TransactionID,
		txn.ShopID,
		txn.CustomerID,
		txn.TransactionType,
		txn.TotalAmount,
		txn.Payable,
		txn.Receivable,
		txn.Category,
		txn.Description,
		txn.Date,
		txn.DueDate,
		txn.ImageURL,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	if err := applyBalanceDelta(ctx, tx, txn.CustomerID, balanceDelta); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE transactions SET
			transaction_type = $2,
			total_amount = $3,
			payable = $4,
			receivable = $5,
			category = $6,
			description = $7,
			date = $8,
			due_date = $9,
			image_url = $10,
			last_updated_at = $11,
			last_updated_by = $12
		WHERE transaction_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		txn.TransactionID,
		txn.TransactionType,
		txn.TotalAmount,
		txn.Payable,
		txn.Receivable,
		txn.Category,
		txn.Description,
		txn.Date,
		txn.DueDate,
		txn.ImageURL,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := applyBalanceDelta(ctx, tx, txn.CustomerID, balanceDelta); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID, customerID string, balanceDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := applyBalanceDelta(ctx, tx, customerID, balanceDelta); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxTransactionRepository) FindForReport(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	args := []any{}

	if shopID, ok := filter.Scope.ShopID(); ok {
		args = append(args, shopID)
		query += fmt.Sprintf(" AND shop_id = $%d", len(args))
	}
	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		query += fmt.Sprintf(" AND customer_id = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date ASC, created_at ASC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading transactions: %w", err)
	}
	return txns, nil
}

// SumPriorNet folds every entry strictly before the instant into one signed
// net inside the database; the fold is order-independent by construction.
func (r *PgxTransactionRepository) SumPriorNet(ctx context.Context, scope domain.ShopScope, customerID string, before time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN transaction_type = 'receivable' THEN total_amount ELSE -total_amount END), 0)
		FROM transactions
		WHERE date < $1`
	args := []any{before}

	if shopID, ok := scope.ShopID(); ok {
		args = append(args, shopID)
		query += fmt.Sprintf(" AND shop_id = $%d", len(args))
	}
	if customerID != "" {
		args = append(args, customerID)
		query += fmt.Sprintf(" AND customer_id = $%d", len(args))
	}
	query += ";"

	var net decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&net); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum prior transactions: %w", err)
	}
	return net, nil
}

// applyBalanceDelta moves the customer's cached balance by delta in place.
func applyBalanceDelta(ctx context.Context, tx pgx.Tx, customerID string, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}
	tag, err := tx.Exec(ctx,
		`UPDATE customers SET balance = balance + $2 WHERE customer_id = $1;`,
		customerID, delta,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer for balance update not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
