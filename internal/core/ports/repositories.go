package ports

import (
	"context"

	"clever-bank/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountRepository defines persistence operations for accounts.
// The SelectAll/Insert/Update/Delete quartet backs the account cache;
// AddToBalance is the ledger's balance mutation and accepts a pgx.Tx so a
// transfer can debit and credit inside one store transaction.
type AccountRepository interface {
	SelectAll(ctx context.Context) ([]domain.Account, error)
	Insert(ctx context.Context, a domain.Account) (domain.Account, error)
	Update(ctx context.Context, a domain.Account) error
	Delete(ctx context.Context, id int64) error
	AddToBalance(ctx context.Context, tx pgx.Tx, accountID int64, delta decimal.Decimal) error
}

// BankRepository defines persistence operations for banks.
type BankRepository interface {
	SelectAll(ctx context.Context) ([]domain.Bank, error)
	Insert(ctx context.Context, b domain.Bank) (domain.Bank, error)
	Update(ctx context.Context, b domain.Bank) error
	Delete(ctx context.Context, id int64) error
}

// UserRepository defines persistence operations for account holders.
type UserRepository interface {
	SelectAll(ctx context.Context) ([]domain.User, error)
	Insert(ctx context.Context, u domain.User) (domain.User, error)
	Update(ctx context.Context, u domain.User) error
	Delete(ctx context.Context, id int64) error
}

// TransactionRepository defines persistence for the append-only transaction log.
// InsertTx writes a record inside an open store transaction so the ledger can
// commit the record together with the balance legs it describes. Update only
// ever touches the date column (timestamp correction).
type TransactionRepository interface {
	SelectAll(ctx context.Context) ([]domain.Transaction, error)
	Insert(ctx context.Context, t domain.Transaction) (domain.Transaction, error)
	InsertTx(ctx context.Context, tx pgx.Tx, t domain.Transaction) (domain.Transaction, error)
	Update(ctx context.Context, t domain.Transaction) error
	Delete(ctx context.Context, id int64) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
