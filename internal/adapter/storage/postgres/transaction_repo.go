package postgres

import (
	"context"
	"fmt"

	"clever-bank/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository over the append-only
// transaction log.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

const insertTransactionSQL = `INSERT INTO transaction (date, type, receiver_account_id, sender_account_id, total)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`

// SelectAll fetches the full transaction log; used to seed the cache.
func (r *TransactionRepo) SelectAll(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT id, date, type, receiver_account_id, sender_account_id, total FROM transaction`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.Date, &t.Type, &t.ReceiverAccountID, &t.SenderAccountID, &t.Amount); err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return txns, nil
}

// Insert appends a record outside any caller-managed store transaction.
func (r *TransactionRepo) Insert(ctx context.Context, t domain.Transaction) (domain.Transaction, error) {
	err := r.pool.QueryRow(ctx, insertTransactionSQL,
		t.Date, t.Type, t.ReceiverAccountID, t.SenderAccountID, t.Amount,
	).Scan(&t.ID)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	return t, nil
}

// InsertTx appends a record inside an open store transaction, so the ledger
// can commit the record together with the balance mutation it describes.
func (r *TransactionRepo) InsertTx(ctx context.Context, tx pgx.Tx, t domain.Transaction) (domain.Transaction, error) {
	err := tx.QueryRow(ctx, insertTransactionSQL,
		t.Date, t.Type, t.ReceiverAccountID, t.SenderAccountID, t.Amount,
	).Scan(&t.ID)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	return t, nil
}

// Update corrects a transaction's timestamp. No other column is updatable;
// the log is otherwise immutable.
func (r *TransactionRepo) Update(ctx context.Context, t domain.Transaction) error {
	query := `UPDATE transaction SET date = $1 WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, t.Date, t.ID)
	if err != nil {
		return fmt.Errorf("update transaction date: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %d", t.ID)
	}
	return nil
}

// Delete removes a transaction row.
func (r *TransactionRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM transaction WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}
