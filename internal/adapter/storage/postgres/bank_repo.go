package postgres

import (
	"context"
	"fmt"

	"clever-bank/internal/core/domain"
)

// BankRepo implements ports.BankRepository.
type BankRepo struct {
	pool Pool
}

// NewBankRepo creates a new BankRepo.
func NewBankRepo(pool Pool) *BankRepo {
	return &BankRepo{pool: pool}
}

// SelectAll fetches every bank; used to seed the bank cache at startup.
func (r *BankRepo) SelectAll(ctx context.Context) ([]domain.Bank, error) {
	query := `SELECT id, name FROM bank`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select banks: %w", err)
	}
	defer rows.Close()

	var banks []domain.Bank
	for rows.Next() {
		var b domain.Bank
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("scan bank row: %w", err)
		}
		banks = append(banks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bank rows: %w", err)
	}
	return banks, nil
}

// Insert persists a new bank and returns it with the store-assigned id.
func (r *BankRepo) Insert(ctx context.Context, b domain.Bank) (domain.Bank, error) {
	query := `INSERT INTO bank (name) VALUES ($1) RETURNING id`

	if err := r.pool.QueryRow(ctx, query, b.Name).Scan(&b.ID); err != nil {
		return domain.Bank{}, fmt.Errorf("insert bank: %w", err)
	}
	return b, nil
}

// Update renames a bank.
func (r *BankRepo) Update(ctx context.Context, b domain.Bank) error {
	query := `UPDATE bank SET name = $1 WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, b.Name, b.ID)
	if err != nil {
		return fmt.Errorf("update bank: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("bank not found: %d", b.ID)
	}
	return nil
}

// Delete removes a bank row.
func (r *BankRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM bank WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete bank: %w", err)
	}
	return nil
}
