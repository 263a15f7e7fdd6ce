package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrency_Valid(t *testing.T) {
	assert.True(t, CurrencyBYN.Valid())
	assert.True(t, CurrencyUSD.Valid())
	assert.True(t, CurrencyEUR.Valid())
	assert.False(t, Currency("GBP").Valid())
	assert.False(t, Currency("").Valid())
	assert.False(t, Currency("usd").Valid(), "currency codes are case sensitive")
}

func TestAccount_EntityID(t *testing.T) {
	a := Account{ID: 7, Currency: CurrencyUSD, Balance: decimal.NewFromInt(100)}
	assert.Equal(t, int64(7), a.EntityID())
}

func TestTransaction_Direction(t *testing.T) {
	sender := int64(1)
	receiver := int64(2)

	transfer := Transaction{
		Type:              TransactionTypeTransfer,
		SenderAccountID:   &sender,
		ReceiverAccountID: &receiver,
		Amount:            decimal.NewFromInt(500),
		Date:              time.Now(),
	}
	assert.True(t, transfer.Outgoing(1))
	assert.True(t, transfer.Incoming(2))
	assert.False(t, transfer.Outgoing(2))
	assert.False(t, transfer.Incoming(1))

	refill := Transaction{
		Type:              TransactionTypeRefill,
		ReceiverAccountID: &receiver,
		Amount:            decimal.NewFromInt(50),
	}
	assert.False(t, refill.Outgoing(1), "refill has no sender")
	assert.True(t, refill.Incoming(2))

	withdraw := Transaction{
		Type:            TransactionTypeWithdraw,
		SenderAccountID: &sender,
		Amount:          decimal.NewFromInt(100),
	}
	assert.True(t, withdraw.Outgoing(1))
	assert.False(t, withdraw.Incoming(2), "withdraw has no receiver")
}
