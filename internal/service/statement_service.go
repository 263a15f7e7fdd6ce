package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"clever-bank/internal/cache"
	"clever-bank/internal/core/domain"
	"clever-bank/internal/core/ports"
	"clever-bank/pkg/apperror"

	"github.com/rs/zerolog"
)

const statementDateFormat = "02.01.2006"

const moneyStatementTemplate = `                            Money statement
                                 Clever-Bank
 Client                          %s
 Account                      %d
 Currency                    %s
 Opening date             %s
 Period                        %s
 Current date              %s
 Balance                     %s
-----------------------------------------------------------------------------
 Income                       %s
 Outgo                        %s
`

const accountStatementHeader = `                            Account statement
                                 Clever-Bank
 Client               | %-35s
 Account              | %-20d
 Currency             | %-5s
 Opening date         | %-10s
 Period               | %-23s
 Current date         | %-17s
 Balance              | %-17s
     Date   | Type                             | Amount
---------------------------------------------------------------
`

const accountStatementLine = " %10s | %-10s                       | %-17s\n"

// StatementServiceImpl implements ports.StatementService. Every rendered
// statement is also written to the statement directory as a numbered file.
type StatementServiceImpl struct {
	accounts *cache.Cache[domain.Account]
	users    *cache.Cache[domain.User]
	txLog    *cache.Cache[domain.Transaction]
	ledger   ports.LedgerService
	dir      string
	now      func() time.Time
	log      zerolog.Logger

	mu sync.Mutex
}

// NewStatementService creates a new StatementServiceImpl writing into dir.
func NewStatementService(
	accounts *cache.Cache[domain.Account],
	users *cache.Cache[domain.User],
	txLog *cache.Cache[domain.Transaction],
	ledger ports.LedgerService,
	dir string,
	log zerolog.Logger,
) *StatementServiceImpl {
	return &StatementServiceImpl{
		accounts: accounts,
		users:    users,
		txLog:    txLog,
		ledger:   ledger,
		dir:      dir,
		now:      time.Now,
		log:      log,
	}
}

// MoneyStatement renders the income/outgo summary of the account over
// (from, to]. Outgo is shown negated.
func (s *StatementServiceImpl) MoneyStatement(ctx context.Context, accountID int64, from, to time.Time) (string, error) {
	account, user, err := s.lookup(accountID)
	if err != nil {
		return "", err
	}

	income, err := s.ledger.IncomeByPeriod(ctx, accountID, from, to)
	if err != nil {
		return "", err
	}
	outgo, err := s.ledger.OutgoByPeriod(ctx, accountID, from, to)
	if err != nil {
		return "", err
	}

	statement := fmt.Sprintf(moneyStatementTemplate,
		user.FullName,
		account.ID,
		account.Currency,
		account.OpeningDate.Format(statementDateFormat),
		from.Format(statementDateFormat)+" - "+to.Format(statementDateFormat),
		s.now().Format("02.01.2006 15:04:05"),
		account.Balance.StringFixed(2),
		income.StringFixed(2),
		outgo.Neg().StringFixed(2),
	)

	if err := s.writeStatement("money_statement", statement); err != nil {
		return "", err
	}
	return statement, nil
}

// AccountStatement renders the account header plus every transaction touching
// the account since the period start. Debits are shown negated.
func (s *StatementServiceImpl) AccountStatement(_ context.Context, accountID int64, period ports.StatementPeriod) (string, error) {
	if !period.Valid() {
		return "", apperror.Validation(fmt.Sprintf("unknown statement period: %s", period))
	}

	account, user, err := s.lookup(accountID)
	if err != nil {
		return "", err
	}

	now := s.now()
	start := s.periodStart(period, account, now)

	var b strings.Builder
	b.WriteString(fmt.Sprintf(accountStatementHeader,
		user.FullName,
		account.ID,
		account.Currency,
		account.OpeningDate.Format(statementDateFormat),
		start.Format(statementDateFormat)+" - "+now.Format(statementDateFormat),
		now.Format("02.01.2006 15:04:05"),
		account.Balance.StringFixed(2),
	))

	for _, t := range s.txLog.FindAll() {
		if !t.Incoming(accountID) && !t.Outgoing(accountID) {
			continue
		}
		if !t.Date.After(start) {
			continue
		}
		amount := t.Amount
		if t.Outgoing(accountID) {
			amount = amount.Neg()
		}
		b.WriteString(fmt.Sprintf(accountStatementLine,
			t.Date.Format(statementDateFormat),
			t.Type,
			amount.StringFixed(2),
		))
	}

	statement := b.String()
	if err := s.writeStatement("account_statement", statement); err != nil {
		return "", err
	}
	return statement, nil
}

// periodStart resolves the reporting window's lower bound.
func (s *StatementServiceImpl) periodStart(period ports.StatementPeriod, account domain.Account, now time.Time) time.Time {
	switch period {
	case ports.PeriodCurrentMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case ports.PeriodCurrentYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return account.OpeningDate
	}
}

func (s *StatementServiceImpl) lookup(accountID int64) (domain.Account, domain.User, error) {
	account, ok := s.accounts.FindByID(accountID)
	if !ok {
		return domain.Account{}, domain.User{}, apperror.ErrAccountNotFound()
	}
	user, ok := s.users.FindByID(account.UserID)
	if !ok {
		return domain.Account{}, domain.User{}, apperror.ErrUserNotFound()
	}
	return account, user, nil
}

// writeStatement persists the rendered statement as the next numbered file of
// its kind.
func (s *StatementServiceImpl) writeStatement(kind, statement string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return apperror.InternalError(fmt.Errorf("create statement dir: %w", err))
	}

	matches, err := filepath.Glob(filepath.Join(s.dir, kind+"*.txt"))
	if err != nil {
		return apperror.InternalError(fmt.Errorf("list statement dir: %w", err))
	}

	path := filepath.Join(s.dir, fmt.Sprintf("%s%d.txt", kind, len(matches)))
	if err := os.WriteFile(path, []byte(statement), 0o644); err != nil {
		return apperror.InternalError(fmt.Errorf("write statement file: %w", err))
	}

	s.log.Debug().Str("path", path).Msg("statement written")
	return nil
}
