package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest is the request body for opening an account.
type CreateAccountRequest struct {
	Currency string          `json:"currency" binding:"required,len=3"`
	Balance  decimal.Decimal `json:"balance"`
	BankID   int64           `json:"bank_id" binding:"required"`
	UserID   int64           `json:"user_id" binding:"required"`
}

// UpdateAccountRequest is the request body for updating an account.
type UpdateAccountRequest struct {
	Currency string          `json:"currency" binding:"required,len=3"`
	Balance  decimal.Decimal `json:"balance"`
	BankID   int64           `json:"bank_id" binding:"required"`
	UserID   int64           `json:"user_id" binding:"required"`
}

// AccountResponse is the response body for account reads.
type AccountResponse struct {
	ID          int64  `json:"id"`
	Currency    string `json:"currency"`
	OpeningDate string `json:"opening_date"`
	Balance     string `json:"balance"`
	BankID      int64  `json:"bank_id"`
	UserID      int64  `json:"user_id"`
}

// BankRequest is the request body for creating or updating a bank.
type BankRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// BankResponse is the response body for bank reads.
type BankResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserRequest is the request body for creating or updating a user.
type UserRequest struct {
	FullName string `json:"full_name" binding:"required,min=1,max=100"`
}

// UserResponse is the response body for user reads.
type UserResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}

// TransferRequest is the request body for a transfer between accounts.
type TransferRequest struct {
	SenderAccountID   int64           `json:"sender_account_id" binding:"required"`
	ReceiverAccountID int64           `json:"receiver_account_id" binding:"required"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
}

// TransferResponse is the response body for a completed transfer.
type TransferResponse struct {
	SenderBalance   string `json:"sender_balance"`
	ReceiverBalance string `json:"receiver_balance"`
}

// WithdrawRequest is the request body for a cash withdrawal.
type WithdrawRequest struct {
	AccountID int64           `json:"account_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

// RefillRequest is the request body for a cash deposit.
type RefillRequest struct {
	AccountID int64           `json:"account_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

// BalanceResponse is the response body for operations returning one balance.
type BalanceResponse struct {
	AccountID int64  `json:"account_id"`
	Balance   string `json:"balance"`
}

// TransactionResponse is the response body for transaction log reads.
type TransactionResponse struct {
	ID                int64  `json:"id"`
	Date              string `json:"date"`
	Type              string `json:"type"`
	SenderAccountID   *int64 `json:"sender_account_id,omitempty"`
	ReceiverAccountID *int64 `json:"receiver_account_id,omitempty"`
	Amount            string `json:"amount"`
}

// UpdateTransactionDateRequest is the request body for correcting a
// transaction's timestamp.
type UpdateTransactionDateRequest struct {
	Date time.Time `json:"date" binding:"required"`
}

// StatementResponse is the response body carrying a rendered statement.
type StatementResponse struct {
	Statement string `json:"statement"`
}
