package receipt

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"clever-bank/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAccounts map[int64]domain.Account

func (s stubAccounts) FindByID(id int64) (domain.Account, bool) {
	a, ok := s[id]
	return a, ok
}

type stubBanks map[int64]domain.Bank

func (s stubBanks) FindByID(id int64) (domain.Bank, bool) {
	b, ok := s[id]
	return b, ok
}

func testPrinter(t *testing.T) (*Printer, string) {
	t.Helper()
	dir := t.TempDir()
	accounts := stubAccounts{
		1: {ID: 1, BankID: 1},
		2: {ID: 2, BankID: 2},
	}
	banks := stubBanks{
		1: {ID: 1, Name: "Clever-Bank"},
		2: {ID: 2, Name: "Horns and Hooves"},
	}
	return NewPrinter(dir, accounts, banks, zerolog.Nop()), dir
}

func transferTxn() domain.Transaction {
	sender := int64(1)
	receiver := int64(2)
	return domain.Transaction{
		ID:                1,
		Date:              time.Date(2023, 8, 15, 12, 30, 45, 0, time.UTC),
		Type:              domain.TransactionTypeTransfer,
		SenderAccountID:   &sender,
		ReceiverAccountID: &receiver,
		Amount:            decimal.NewFromInt(500),
	}
}

func TestPrinter_Render_Transfer(t *testing.T) {
	p, _ := testPrinter(t)

	out := p.Render(transferTxn(), 0)

	assert.Contains(t, out, "Receipt")
	assert.Contains(t, out, "TRANSFER")
	assert.Contains(t, out, "Clever-Bank")
	assert.Contains(t, out, "Horns and Hooves")
	assert.Contains(t, out, "500.00")
	assert.Contains(t, out, "12:30:45")
	assert.Contains(t, out, "15.08.2023")
}

func TestPrinter_Render_RefillHasNoSender(t *testing.T) {
	p, _ := testPrinter(t)
	receiver := int64(2)
	txn := domain.Transaction{
		ID:                2,
		Date:              time.Now(),
		Type:              domain.TransactionTypeRefill,
		ReceiverAccountID: &receiver,
		Amount:            decimal.NewFromInt(50),
	}

	out := p.Render(txn, 1)

	assert.Contains(t, out, "REFILL")
	assert.NotContains(t, out, "Clever-Bank")
	assert.Contains(t, out, "Horns and Hooves")
}

func TestPrinter_Emit_NumbersFilesSequentially(t *testing.T) {
	p, dir := testPrinter(t)
	ctx := context.Background()

	require.NoError(t, p.Emit(ctx, transferTxn()))
	require.NoError(t, p.Emit(ctx, transferTxn()))

	for _, name := range []string{"check0.txt", "check1.txt"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Contains(t, string(data), "Receipt")
	}
}

type sinkFunc func(ctx context.Context, t domain.Transaction) error

func (f sinkFunc) Emit(ctx context.Context, t domain.Transaction) error { return f(ctx, t) }

func TestFanout_ContinuesPastFailingSink(t *testing.T) {
	var delivered int
	failing := sinkFunc(func(context.Context, domain.Transaction) error {
		return errors.New("sink down")
	})
	counting := sinkFunc(func(context.Context, domain.Transaction) error {
		delivered++
		return nil
	})

	err := Fanout{failing, counting}.Emit(context.Background(), transferTxn())

	assert.Error(t, err)
	assert.Equal(t, 1, delivered)
}
