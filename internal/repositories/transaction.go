package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-payment-links/internal/logger"
	"github.com/sbilibin2017/gw-payment-links/internal/models"
)

// TransactionWriteRepository handles transaction write operations
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

func (r *TransactionWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new transaction row.
func (r *TransactionWriteRepository) Save(ctx context.Context, txn *models.TransactionDB) error {
	query := `
		INSERT INTO transactions
			(transaction_id, user_id, payment_link_id, amount, currency, description, payment_url, status, history, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	args := []any{
		txn.TransactionID, txn.UserID, txn.PaymentLinkID,
		txn.Amount, txn.Currency, txn.Description,
		txn.PaymentURL, txn.Status, txn.History, txn.CreatedAt,
	}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// UpdateStatusIfPending atomically moves a PENDING transaction to a terminal
// status and appends the history entry in the same statement. The status guard
// in the WHERE clause resolves races between the webhook path and the lazy
// sweep: the losing caller matches no row and gets (nil, nil), not an error.
func (r *TransactionWriteRepository) UpdateStatusIfPending(ctx context.Context, transactionID uuid.UUID, status string, entry models.HistoryEntry) (*models.TransactionDB, error) {
	query := `
		UPDATE transactions
		SET status = $2, history = history || $3::jsonb
		WHERE transaction_id = $1 AND status = 'PENDING'
		RETURNING transaction_id, user_id, payment_link_id, amount, currency, description, payment_url, status, history, created_at
	`

	entryJSON, err := json.Marshal(models.History{entry})
	if err != nil {
		return nil, err
	}
	args := []any{transactionID, status, string(entryJSON)}

	var txn models.TransactionDB
	err = sqlx.GetContext(ctx, r.executor(ctx), &txn, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", txn.Status,
		"error", err,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			// Guard matched no row: already terminal, caller treats it as a no-op.
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

// TransactionReadRepository handles transaction read operations
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// GetByPaymentLinkID looks a transaction up by its processor link id.
// Returns (nil, nil) when no transaction matches.
func (r *TransactionReadRepository) GetByPaymentLinkID(ctx context.Context, paymentLinkID string) (*models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, payment_link_id, amount, currency, description, payment_url, status, history, created_at
		FROM transactions
		WHERE payment_link_id = $1
		LIMIT 1
	`

	var txn models.TransactionDB
	err := r.db.GetContext(ctx, &txn, query, paymentLinkID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{paymentLinkID},
		"result", txn.TransactionID,
		"error", err,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

// ListByUserID returns all transactions of a user, newest first.
func (r *TransactionReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, payment_link_id, amount, currency, description, payment_url, status, history, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(txns),
		"error", err,
	)

	return txns, err
}

// ListPendingByUserID returns the user's transactions still awaiting a
// terminal status.
func (r *TransactionReadRepository) ListPendingByUserID(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, payment_link_id, amount, currency, description, payment_url, status, history, created_at
		FROM transactions
		WHERE user_id = $1 AND status = 'PENDING'
	`

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(txns),
		"error", err,
	)

	return txns, err
}

// GetMetricsByUserID aggregates totals over the user's transactions.
func (r *TransactionReadRepository) GetMetricsByUserID(ctx context.Context, userID uuid.UUID) (*models.TransactionMetrics, error) {
	const query = `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE status = 'PAID'), 0) AS total_sales,
			COUNT(*) AS count,
			COUNT(*) FILTER (WHERE status = 'PAID') AS paid_count
		FROM transactions
		WHERE user_id = $1
	`

	var metrics models.TransactionMetrics
	err := r.db.GetContext(ctx, &metrics, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", metrics,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &metrics, nil
}
