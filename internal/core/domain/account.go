package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency enumerates the currencies an account can be denominated in.
type Currency string

const (
	CurrencyBYN Currency = "BYN"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// Valid reports whether c is one of the supported currencies.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyBYN, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

// Account is a customer account held at a bank. Balance mutations must happen
// under the account's lock in the account cache; the balance is never allowed
// to go negative through a withdraw or transfer debit.
type Account struct {
	ID          int64           `json:"id"`
	Currency    Currency        `json:"currency"`
	OpeningDate time.Time       `json:"opening_date"`
	Balance     decimal.Decimal `json:"balance"`
	BankID      int64           `json:"bank_id"`
	UserID      int64           `json:"user_id"`
}

// EntityID implements cache.Entity.
func (a Account) EntityID() int64 { return a.ID }
