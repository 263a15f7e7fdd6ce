package ports

import (
	"context"
	"time"

	"clever-bank/internal/core/domain"

	"github.com/shopspring/decimal"
)

// LedgerService is the money-movement core. All mutating operations serialize
// on the affected accounts' locks and run their store legs atomically; each
// successful operation produces exactly one transaction record.
type LedgerService interface {
	Transfer(ctx context.Context, senderID, receiverID int64, amount decimal.Decimal) (*TransferResult, error)
	Withdraw(ctx context.Context, amount decimal.Decimal, accountID int64) (decimal.Decimal, error)
	Refill(ctx context.Context, amount decimal.Decimal, accountID int64) (decimal.Decimal, error)
	IncomeByPeriod(ctx context.Context, accountID int64, from, to time.Time) (decimal.Decimal, error)
	OutgoByPeriod(ctx context.Context, accountID int64, from, to time.Time) (decimal.Decimal, error)
}

// TransferResult holds the post-transfer balances of both accounts.
type TransferResult struct {
	SenderBalance   decimal.Decimal `json:"sender_balance"`
	ReceiverBalance decimal.Decimal `json:"receiver_balance"`
}

// ReceiptSink consumes every committed transaction. Sink failures must never
// roll back or fail the financial mutation that produced the record.
type ReceiptSink interface {
	Emit(ctx context.Context, t domain.Transaction) error
}

// StatementPeriod selects the reporting window of an account statement.
type StatementPeriod string

const (
	PeriodCurrentMonth StatementPeriod = "CURRENT_MONTH"
	PeriodCurrentYear  StatementPeriod = "CURRENT_YEAR"
	PeriodWhole        StatementPeriod = "WHOLE_PERIOD"
)

// Valid reports whether p is a known statement period.
func (p StatementPeriod) Valid() bool {
	switch p {
	case PeriodCurrentMonth, PeriodCurrentYear, PeriodWhole:
		return true
	}
	return false
}

// StatementService renders account and money statements as text.
type StatementService interface {
	MoneyStatement(ctx context.Context, accountID int64, from, to time.Time) (string, error)
	AccountStatement(ctx context.Context, accountID int64, period StatementPeriod) (string, error)
}
