// Package receipt renders committed transactions as fixed-width text
// receipts and writes them to the receipt directory.
package receipt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"clever-bank/internal/core/domain"
	"clever-bank/internal/core/ports"

	"github.com/rs/zerolog"
)

// AccountLookup resolves accounts by id. Satisfied by the account cache.
type AccountLookup interface {
	FindByID(id int64) (domain.Account, bool)
}

// BankLookup resolves banks by id. Satisfied by the bank cache.
type BankLookup interface {
	FindByID(id int64) (domain.Bank, bool)
}

const receiptTemplate = `---------------------------------------------
|                  Receipt                  |
| receipt:                       %10d |
| %s             %20s |
| transaction type:                %8s |
| Senders bank:        %20s |
| Receivers bank:      %20s |
| Senders Account:     %20s |
| Receivers Account:   %20s |
| Total:                  %17s |
---------------------------------------------
`

// Printer implements ports.ReceiptSink by writing one check<N>.txt file per
// committed transaction. Numbering follows the current file count, so the
// writer must be the directory's only producer.
type Printer struct {
	dir      string
	accounts AccountLookup
	banks    BankLookup
	log      zerolog.Logger

	mu sync.Mutex
}

// NewPrinter creates a receipt printer writing into dir.
func NewPrinter(dir string, accounts AccountLookup, banks BankLookup, log zerolog.Logger) *Printer {
	return &Printer{
		dir:      dir,
		accounts: accounts,
		banks:    banks,
		log:      log.With().Str("component", "receipt_printer").Logger(),
	}
}

// Emit renders t and writes it as the next numbered receipt file.
func (p *Printer) Emit(_ context.Context, t domain.Transaction) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("create receipt dir: %w", err)
	}

	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return fmt.Errorf("read receipt dir: %w", err)
	}
	receiptNo := len(entries)

	path := filepath.Join(p.dir, fmt.Sprintf("check%d.txt", receiptNo))
	if err := os.WriteFile(path, []byte(p.Render(t, receiptNo)), 0o644); err != nil {
		return fmt.Errorf("write receipt file: %w", err)
	}

	p.log.Debug().
		Int64("transaction_id", t.ID).
		Str("path", path).
		Msg("receipt written")
	return nil
}

// Render produces the fixed-width receipt text for t.
func (p *Printer) Render(t domain.Transaction, receiptNo int) string {
	var senderBank, receiverBank, senderAcc, receiverAcc string

	if t.SenderAccountID != nil {
		senderAcc = fmt.Sprintf("%d", *t.SenderAccountID)
		if acc, ok := p.accounts.FindByID(*t.SenderAccountID); ok {
			if bank, ok := p.banks.FindByID(acc.BankID); ok {
				senderBank = bank.Name
			}
		}
	}
	if t.ReceiverAccountID != nil {
		receiverAcc = fmt.Sprintf("%d", *t.ReceiverAccountID)
		if acc, ok := p.accounts.FindByID(*t.ReceiverAccountID); ok {
			if bank, ok := p.banks.FindByID(acc.BankID); ok {
				receiverBank = bank.Name
			}
		}
	}

	return fmt.Sprintf(receiptTemplate,
		receiptNo,
		t.Date.Format("15:04:05"),
		t.Date.Format("02.01.2006"),
		t.Type,
		senderBank,
		receiverBank,
		senderAcc,
		receiverAcc,
		t.Amount.StringFixed(2),
	)
}

// Fanout forwards each committed transaction to every sink, collecting errors
// instead of stopping at the first failure.
type Fanout []ports.ReceiptSink

// Emit delivers t to all sinks.
func (f Fanout) Emit(ctx context.Context, t domain.Transaction) error {
	var errs []error
	for _, sink := range f {
		if err := sink.Emit(ctx, t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
