package postgres

import (
	"context"
	"fmt"

	"clever-bank/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// SelectAll fetches every account; used to seed the account cache at startup.
func (r *AccountRepo) SelectAll(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT id, currency, opening_date, balance, bank_id, user_id FROM account`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.Currency, &a.OpeningDate, &a.Balance, &a.BankID, &a.UserID); err != nil {
			return nil, fmt.Errorf("scan account row: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate account rows: %w", err)
	}
	return accounts, nil
}

// Insert persists a new account and returns it with the store-assigned id.
func (r *AccountRepo) Insert(ctx context.Context, a domain.Account) (domain.Account, error) {
	query := `INSERT INTO account (currency, opening_date, balance, bank_id, user_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		a.Currency, a.OpeningDate, a.Balance, a.BankID, a.UserID,
	).Scan(&a.ID)
	if err != nil {
		return domain.Account{}, fmt.Errorf("insert account: %w", err)
	}
	return a, nil
}

// Update rewrites an account's mutable columns. The opening date is fixed at
// creation and never updated.
func (r *AccountRepo) Update(ctx context.Context, a domain.Account) error {
	query := `UPDATE account SET currency = $1, balance = $2, bank_id = $3, user_id = $4 WHERE id = $5`

	tag, err := r.pool.Exec(ctx, query, a.Currency, a.Balance, a.BankID, a.UserID, a.ID)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account not found: %d", a.ID)
	}
	return nil
}

// Delete removes an account row.
func (r *AccountRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM account WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

// AddToBalance applies a signed delta to an account balance inside the given
// store transaction. A transfer issues two AddToBalance calls on the same tx
// so both legs commit or neither does.
func (r *AccountRepo) AddToBalance(ctx context.Context, tx pgx.Tx, accountID int64, delta decimal.Decimal) error {
	query := `UPDATE account SET balance = balance + $1 WHERE id = $2`

	tag, err := tx.Exec(ctx, query, delta, accountID)
	if err != nil {
		return fmt.Errorf("adjust balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account not found: %d", accountID)
	}
	return nil
}
