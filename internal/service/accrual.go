package service

import (
	"context"
	"time"

	"clever-bank/config"
	"clever-bank/internal/cache"
	"clever-bank/internal/core/domain"
	"clever-bank/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// AccrualScheduler credits monthly interest to every account. It polls on a
// short interval and sweeps once per calendar month, on the first tick that
// observes the month change. The month marker is process-local, so a restart
// inside an already-swept month re-arms the sweep; the marker is initialized
// to the current month at construction to prevent an accrual at boot.
type AccrualScheduler struct {
	accounts   *cache.Cache[domain.Account]
	ledger     ports.LedgerService
	percentage decimal.Decimal
	interval   time.Duration
	now        func() time.Time
	log        zerolog.Logger

	lastYear  int
	lastMonth time.Month
}

// NewAccrualScheduler creates a scheduler applying cfg.Percentage per month.
func NewAccrualScheduler(
	accounts *cache.Cache[domain.Account],
	ledger ports.LedgerService,
	cfg config.AccrualConfig,
	log zerolog.Logger,
) *AccrualScheduler {
	s := &AccrualScheduler{
		accounts:   accounts,
		ledger:     ledger,
		percentage: decimal.NewFromInt(cfg.Percentage),
		interval:   cfg.Interval,
		now:        time.Now,
		log:        log,
	}
	s.lastYear, s.lastMonth, _ = s.now().Date()
	return s
}

// Run polls until ctx is canceled. It is meant to be started in its own
// goroutine from main.
func (s *AccrualScheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info().
		Dur("interval", s.interval).
		Str("percentage", s.percentage.String()).
		Msg("accrual scheduler started")

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("accrual scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick sweeps if the calendar month changed since the last sweep.
func (s *AccrualScheduler) tick(ctx context.Context) {
	year, month, _ := s.now().Date()
	if year == s.lastYear && month == s.lastMonth {
		return
	}
	s.lastYear, s.lastMonth = year, month
	s.sweep(ctx)
}

// sweep credits interest to every account with a positive balance. Per-account
// failures are logged and do not stop the sweep.
func (s *AccrualScheduler) sweep(ctx context.Context) {
	var credited int
	for _, account := range s.accounts.FindAll() {
		interest := account.Balance.Mul(s.percentage).Div(decimal.NewFromInt(100))
		if !interest.IsPositive() {
			continue
		}
		if _, err := s.ledger.Refill(ctx, interest, account.ID); err != nil {
			s.log.Error().Err(err).
				Int64("account_id", account.ID).
				Str("interest", interest.String()).
				Msg("interest accrual failed")
			continue
		}
		credited++
	}
	s.log.Info().Int("accounts_credited", credited).Msg("monthly interest sweep completed")
}
