package service

import (
	"context"
	"testing"
	"time"

	"clever-bank/config"
	"clever-bank/internal/core/domain"
	"clever-bank/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// decimalEq matches decimals by value, not representation.
type decimalMatcher struct{ want decimal.Decimal }

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "decimal equal to " + m.want.String()
}

func decimalEq(v int64) gomock.Matcher {
	return decimalMatcher{want: decimal.NewFromInt(v)}
}

type accrualTestDeps struct {
	scheduler *AccrualScheduler
	ledger    *mocks.MockLedgerService
	ctrl      *gomock.Controller
	clock     *time.Time
}

func setupAccrualScheduler(t *testing.T, start time.Time, seed ...domain.Account) *accrualTestDeps {
	ctrl := gomock.NewController(t)
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	accountRepo.EXPECT().SelectAll(gomock.Any()).Return(seed, nil)

	accounts := NewAccountCache(accountRepo)
	require.NoError(t, accounts.Load(context.Background()))

	ledger := mocks.NewMockLedgerService(ctrl)
	clock := start

	d := &accrualTestDeps{ledger: ledger, ctrl: ctrl, clock: &clock}
	d.scheduler = NewAccrualScheduler(accounts, ledger, config.AccrualConfig{
		Percentage: 1,
		Interval:   30 * time.Second,
	}, zerolog.Nop())
	d.scheduler.now = func() time.Time { return *d.clock }
	// Re-arm the marker from the injected clock.
	d.scheduler.lastYear, d.scheduler.lastMonth, _ = clock.Date()
	return d
}

func TestAccrualScheduler_NoSweepWithinSameMonth(t *testing.T) {
	start := time.Date(2023, 8, 10, 12, 0, 0, 0, time.UTC)
	d := setupAccrualScheduler(t, start, domain.Account{ID: 1, Balance: decimal.NewFromInt(1000)})
	defer d.ctrl.Finish()

	// No Refill expectations: any call fails the test.
	*d.clock = start.AddDate(0, 0, 5)
	d.scheduler.tick(context.Background())
}

func TestAccrualScheduler_SweepsOnceOnMonthChange(t *testing.T) {
	start := time.Date(2023, 8, 28, 12, 0, 0, 0, time.UTC)
	d := setupAccrualScheduler(t, start,
		domain.Account{ID: 1, Balance: decimal.NewFromInt(1000)},
		domain.Account{ID: 2, Balance: decimal.NewFromInt(500)},
	)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.ledger.EXPECT().Refill(ctx, decimalEq(10), int64(1)).Return(decimal.NewFromInt(1010), nil)
	d.ledger.EXPECT().Refill(ctx, decimalEq(5), int64(2)).Return(decimal.NewFromInt(505), nil)

	// Month rollover triggers exactly one sweep.
	*d.clock = time.Date(2023, 9, 1, 0, 0, 30, 0, time.UTC)
	d.scheduler.tick(ctx)

	// Later ticks in the same month do not sweep again.
	*d.clock = time.Date(2023, 9, 15, 0, 0, 0, 0, time.UTC)
	d.scheduler.tick(ctx)
}

func TestAccrualScheduler_SkipsZeroBalanceAccounts(t *testing.T) {
	start := time.Date(2023, 8, 28, 0, 0, 0, 0, time.UTC)
	d := setupAccrualScheduler(t, start,
		domain.Account{ID: 1, Balance: decimal.Zero},
		domain.Account{ID: 2, Balance: decimal.NewFromInt(200)},
	)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.ledger.EXPECT().Refill(ctx, decimalEq(2), int64(2)).Return(decimal.NewFromInt(202), nil)

	*d.clock = time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)
	d.scheduler.tick(ctx)
}

func TestAccrualScheduler_ContinuesPastFailedAccount(t *testing.T) {
	start := time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC)
	d := setupAccrualScheduler(t, start,
		domain.Account{ID: 1, Balance: decimal.NewFromInt(100)},
		domain.Account{ID: 2, Balance: decimal.NewFromInt(100)},
	)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.ledger.EXPECT().Refill(ctx, decimalEq(1), int64(1)).Return(decimal.Zero, assert.AnError)
	d.ledger.EXPECT().Refill(ctx, decimalEq(1), int64(2)).Return(decimal.NewFromInt(101), nil)

	// Year boundary counts as a month change.
	*d.clock = time.Date(2024, 1, 1, 0, 0, 30, 0, time.UTC)
	d.scheduler.tick(ctx)
}

func TestAccrualScheduler_RunStopsOnContextCancel(t *testing.T) {
	start := time.Date(2023, 8, 10, 0, 0, 0, 0, time.UTC)
	d := setupAccrualScheduler(t, start, domain.Account{ID: 1, Balance: decimal.NewFromInt(100)})
	defer d.ctrl.Finish()

	d.scheduler.interval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.scheduler.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after context cancellation")
	}
}
