package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of money movement.
type TransactionType string

const (
	TransactionTypeTransfer TransactionType = "TRANSFER"
	TransactionTypeRefill   TransactionType = "REFILL"
	TransactionTypeWithdraw TransactionType = "WITHDRAW"
)

// Transaction is an immutable ledger entry for a single money movement.
// REFILL has no sender account, WITHDRAW has no receiver account; a record
// never lacks both. The only legal mutation after insert is correcting Date.
type Transaction struct {
	ID                int64           `json:"id"`
	Date              time.Time       `json:"date"`
	Type              TransactionType `json:"type"`
	SenderAccountID   *int64          `json:"sender_account_id,omitempty"`
	ReceiverAccountID *int64          `json:"receiver_account_id,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
}

// EntityID implements cache.Entity.
func (t Transaction) EntityID() int64 { return t.ID }

// Incoming reports whether the transaction credits the given account.
func (t Transaction) Incoming(accountID int64) bool {
	return t.ReceiverAccountID != nil && *t.ReceiverAccountID == accountID
}

// Outgoing reports whether the transaction debits the given account.
func (t Transaction) Outgoing(accountID int64) bool {
	return t.SenderAccountID != nil && *t.SenderAccountID == accountID
}
