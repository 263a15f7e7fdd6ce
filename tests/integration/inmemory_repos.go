package integration

import (
	"context"
	"fmt"
	"sync"

	"clever-bank/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// --- In-Memory Account Repo ---

type inMemoryAccountRepo struct {
	mu       sync.RWMutex
	nextID   int64
	accounts map[int64]domain.Account
}

func newInMemoryAccountRepo() *inMemoryAccountRepo {
	return &inMemoryAccountRepo{accounts: make(map[int64]domain.Account)}
}

func (r *inMemoryAccountRepo) SelectAll(ctx context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, a)
	}
	return out, nil
}

func (r *inMemoryAccountRepo) Insert(ctx context.Context, a domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	a.ID = r.nextID
	r.accounts[a.ID] = a
	return a, nil
}

func (r *inMemoryAccountRepo) Update(ctx context.Context, a domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[a.ID]; !ok {
		return fmt.Errorf("account not found: %d", a.ID)
	}
	r.accounts[a.ID] = a
	return nil
}

func (r *inMemoryAccountRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.accounts, id)
	return nil
}

func (r *inMemoryAccountRepo) AddToBalance(ctx context.Context, tx pgx.Tx, accountID int64, delta decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[accountID]
	if !ok {
		return fmt.Errorf("account not found: %d", accountID)
	}
	a.Balance = a.Balance.Add(delta)
	r.accounts[accountID] = a
	return nil
}

// storedBalance reads the persisted balance, bypassing the cache.
func (r *inMemoryAccountRepo) storedBalance(id int64) decimal.Decimal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.accounts[id].Balance
}

// --- In-Memory Bank Repo ---

type inMemoryBankRepo struct {
	mu     sync.RWMutex
	nextID int64
	banks  map[int64]domain.Bank
}

func newInMemoryBankRepo() *inMemoryBankRepo {
	return &inMemoryBankRepo{banks: make(map[int64]domain.Bank)}
}

func (r *inMemoryBankRepo) SelectAll(ctx context.Context) ([]domain.Bank, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Bank, 0, len(r.banks))
	for _, b := range r.banks {
		out = append(out, b)
	}
	return out, nil
}

func (r *inMemoryBankRepo) Insert(ctx context.Context, b domain.Bank) (domain.Bank, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	b.ID = r.nextID
	r.banks[b.ID] = b
	return b, nil
}

func (r *inMemoryBankRepo) Update(ctx context.Context, b domain.Bank) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.banks[b.ID]; !ok {
		return fmt.Errorf("bank not found: %d", b.ID)
	}
	r.banks[b.ID] = b
	return nil
}

func (r *inMemoryBankRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.banks, id)
	return nil
}

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]domain.User
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[int64]domain.User)}
}

func (r *inMemoryUserRepo) SelectAll(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *inMemoryUserRepo) Insert(ctx context.Context, u domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	u.ID = r.nextID
	r.users[u.ID] = u
	return u, nil
}

func (r *inMemoryUserRepo) Update(ctx context.Context, u domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return fmt.Errorf("user not found: %d", u.ID)
	}
	r.users[u.ID] = u
	return nil
}

func (r *inMemoryUserRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu     sync.RWMutex
	nextID int64
	txns   map[int64]domain.Transaction
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{txns: make(map[int64]domain.Transaction)}
}

func (r *inMemoryTransactionRepo) SelectAll(ctx context.Context) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Transaction, 0, len(r.txns))
	for _, t := range r.txns {
		out = append(out, t)
	}
	return out, nil
}

func (r *inMemoryTransactionRepo) Insert(ctx context.Context, t domain.Transaction) (domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	t.ID = r.nextID
	r.txns[t.ID] = t
	return t, nil
}

func (r *inMemoryTransactionRepo) InsertTx(ctx context.Context, tx pgx.Tx, t domain.Transaction) (domain.Transaction, error) {
	return r.Insert(ctx, t)
}

func (r *inMemoryTransactionRepo) Update(ctx context.Context, t domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.txns[t.ID]
	if !ok {
		return fmt.Errorf("transaction not found: %d", t.ID)
	}
	existing.Date = t.Date
	r.txns[t.ID] = existing
	return nil
}

func (r *inMemoryTransactionRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.txns, id)
	return nil
}

func (r *inMemoryTransactionRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.txns)
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
