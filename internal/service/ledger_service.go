package service

import (
	"context"
	"fmt"
	"time"

	"clever-bank/internal/cache"
	"clever-bank/internal/core/domain"
	"clever-bank/internal/core/ports"
	"clever-bank/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// LedgerServiceImpl implements ports.LedgerService on top of the account and
// transaction caches. Every mutation serializes on the affected accounts'
// locks, commits its balance legs and transaction record in one store
// transaction, and only then writes the caches back.
type LedgerServiceImpl struct {
	accounts    *cache.Cache[domain.Account]
	txLog       *cache.Cache[domain.Transaction]
	accountRepo ports.AccountRepository
	txRepo      ports.TransactionRepository
	transactor  ports.DBTransactor
	sink        ports.ReceiptSink
	now         func() time.Time
	log         zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl. sink may be nil when no
// receipt consumer is configured.
func NewLedgerService(
	accounts *cache.Cache[domain.Account],
	txLog *cache.Cache[domain.Transaction],
	accountRepo ports.AccountRepository,
	txRepo ports.TransactionRepository,
	transactor ports.DBTransactor,
	sink ports.ReceiptSink,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		accounts:    accounts,
		txLog:       txLog,
		accountRepo: accountRepo,
		txRepo:      txRepo,
		transactor:  transactor,
		sink:        sink,
		now:         time.Now,
		log:         log,
	}
}

// Transfer moves amount from the sender account to the receiver account.
// Both accounts stay locked for the whole operation, so no interleaved
// mutation can observe the money in flight.
func (s *LedgerServiceImpl) Transfer(ctx context.Context, senderID, receiverID int64, amount decimal.Decimal) (*ports.TransferResult, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if senderID == receiverID {
		return nil, apperror.ErrSameAccount()
	}

	// Resolve before locking so garbage ids never touch the lock table.
	if _, ok := s.accounts.FindByID(senderID); !ok {
		return nil, apperror.ErrAccountNotFound()
	}
	if _, ok := s.accounts.FindByID(receiverID); !ok {
		return nil, apperror.ErrAccountNotFound()
	}

	s.accounts.AcquirePair(senderID, receiverID)
	defer s.accounts.Release(senderID, receiverID)

	sender, ok := s.accounts.FindByID(senderID)
	if !ok {
		return nil, apperror.ErrAccountNotFound()
	}
	receiver, ok := s.accounts.FindByID(receiverID)
	if !ok {
		return nil, apperror.ErrAccountNotFound()
	}
	if sender.Currency != receiver.Currency {
		return nil, apperror.ErrInvalidCurrency()
	}
	if sender.Balance.LessThan(amount) {
		return nil, apperror.ErrInsufficientFunds()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.accountRepo.AddToBalance(ctx, dbTx, senderID, amount.Neg()); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("debit sender: %w", err))
	}
	if err := s.accountRepo.AddToBalance(ctx, dbTx, receiverID, amount); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("credit receiver: %w", err))
	}

	record := domain.Transaction{
		Date:              s.now(),
		Type:              domain.TransactionTypeTransfer,
		SenderAccountID:   &senderID,
		ReceiverAccountID: &receiverID,
		Amount:            amount,
	}
	record, err = s.txRepo.InsertTx(ctx, dbTx, record)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("insert transaction: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	sender.Balance = sender.Balance.Sub(amount)
	receiver.Balance = receiver.Balance.Add(amount)
	s.accounts.Put(sender)
	s.accounts.Put(receiver)
	s.txLog.Put(record)
	s.emit(ctx, record)

	s.log.Info().
		Int64("transaction_id", record.ID).
		Int64("sender_id", senderID).
		Int64("receiver_id", receiverID).
		Str("amount", amount.String()).
		Msg("transfer completed")

	return &ports.TransferResult{
		SenderBalance:   sender.Balance,
		ReceiverBalance: receiver.Balance,
	}, nil
}

// Withdraw debits amount from the account and returns the new balance.
func (s *LedgerServiceImpl) Withdraw(ctx context.Context, amount decimal.Decimal, accountID int64) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, apperror.ErrInvalidAmount()
	}

	if _, ok := s.accounts.FindByID(accountID); !ok {
		return decimal.Zero, apperror.ErrAccountNotFound()
	}

	s.accounts.Acquire(accountID)
	defer s.accounts.Release(accountID)

	account, ok := s.accounts.FindByID(accountID)
	if !ok {
		return decimal.Zero, apperror.ErrAccountNotFound()
	}
	if account.Balance.LessThan(amount) {
		return decimal.Zero, apperror.ErrInsufficientFunds()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return decimal.Zero, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.accountRepo.AddToBalance(ctx, dbTx, accountID, amount.Neg()); err != nil {
		return decimal.Zero, apperror.ErrDatabaseError(fmt.Errorf("debit account: %w", err))
	}

	record := domain.Transaction{
		Date:            s.now(),
		Type:            domain.TransactionTypeWithdraw,
		SenderAccountID: &accountID,
		Amount:          amount,
	}
	record, err = s.txRepo.InsertTx(ctx, dbTx, record)
	if err != nil {
		return decimal.Zero, apperror.ErrDatabaseError(fmt.Errorf("insert transaction: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return decimal.Zero, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	account.Balance = account.Balance.Sub(amount)
	s.accounts.Put(account)
	s.txLog.Put(record)
	s.emit(ctx, record)

	s.log.Info().
		Int64("transaction_id", record.ID).
		Int64("account_id", accountID).
		Str("amount", amount.String()).
		Msg("withdrawal completed")

	return account.Balance, nil
}

// Refill credits amount to the account and returns the new balance.
func (s *LedgerServiceImpl) Refill(ctx context.Context, amount decimal.Decimal, accountID int64) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, apperror.ErrInvalidAmount()
	}

	if _, ok := s.accounts.FindByID(accountID); !ok {
		return decimal.Zero, apperror.ErrAccountNotFound()
	}

	s.accounts.Acquire(accountID)
	defer s.accounts.Release(accountID)

	account, ok := s.accounts.FindByID(accountID)
	if !ok {
		return decimal.Zero, apperror.ErrAccountNotFound()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return decimal.Zero, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.accountRepo.AddToBalance(ctx, dbTx, accountID, amount); err != nil {
		return decimal.Zero, apperror.ErrDatabaseError(fmt.Errorf("credit account: %w", err))
	}

	record := domain.Transaction{
		Date:              s.now(),
		Type:              domain.TransactionTypeRefill,
		ReceiverAccountID: &accountID,
		Amount:            amount,
	}
	record, err = s.txRepo.InsertTx(ctx, dbTx, record)
	if err != nil {
		return decimal.Zero, apperror.ErrDatabaseError(fmt.Errorf("insert transaction: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return decimal.Zero, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	account.Balance = account.Balance.Add(amount)
	s.accounts.Put(account)
	s.txLog.Put(record)
	s.emit(ctx, record)

	s.log.Info().
		Int64("transaction_id", record.ID).
		Int64("account_id", accountID).
		Str("amount", amount.String()).
		Msg("refill completed")

	return account.Balance, nil
}

// IncomeByPeriod sums all credits to the account with dates in (from, to].
func (s *LedgerServiceImpl) IncomeByPeriod(_ context.Context, accountID int64, from, to time.Time) (decimal.Decimal, error) {
	if _, ok := s.accounts.FindByID(accountID); !ok {
		return decimal.Zero, apperror.ErrAccountNotFound()
	}

	total := decimal.Zero
	for _, t := range s.txLog.FindAll() {
		if t.Incoming(accountID) && inPeriod(t.Date, from, to) {
			total = total.Add(t.Amount)
		}
	}
	return total, nil
}

// OutgoByPeriod sums all debits from the account with dates in (from, to].
// The result is positive; statement rendering negates it for display.
func (s *LedgerServiceImpl) OutgoByPeriod(_ context.Context, accountID int64, from, to time.Time) (decimal.Decimal, error) {
	if _, ok := s.accounts.FindByID(accountID); !ok {
		return decimal.Zero, apperror.ErrAccountNotFound()
	}

	total := decimal.Zero
	for _, t := range s.txLog.FindAll() {
		if t.Outgoing(accountID) && inPeriod(t.Date, from, to) {
			total = total.Add(t.Amount)
		}
	}
	return total, nil
}

// inPeriod reports whether ts falls in the half-open window (from, to].
func inPeriod(ts, from, to time.Time) bool {
	return ts.After(from) && !ts.After(to)
}

// emit forwards the committed record to the receipt sink. Sink failures are
// logged and never surface to the caller; the financial mutation is already
// durable.
func (s *LedgerServiceImpl) emit(ctx context.Context, record domain.Transaction) {
	if s.sink == nil {
		return
	}
	if err := s.sink.Emit(ctx, record); err != nil {
		s.log.Warn().Err(err).Int64("transaction_id", record.ID).Msg("receipt sink emit failed")
	}
}
