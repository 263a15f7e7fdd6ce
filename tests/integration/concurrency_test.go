package integration

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"clever-bank/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isInsufficientFunds(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.Code == "PAY_001"
}

// TestConcurrentWithdrawals_NoOverdraft fires more withdrawals than the
// balance can fund. Per-account locking must serialize them so exactly the
// affordable number succeed and the balance never goes negative.
func TestConcurrentWithdrawals_NoOverdraft(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	id := app.seedAccount(t, 5000)

	concurrency := 100
	amount := decimal.NewFromInt(100)

	var wg sync.WaitGroup
	var successCount atomic.Int64
	var insufficientCount atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := app.ledgerSvc.Withdraw(ctx, amount, id)
			switch {
			case err == nil:
				successCount.Add(1)
			case isInsufficientFunds(err):
				insufficientCount.Add(1)
			default:
				t.Errorf("unexpected withdraw error: %v", err)
			}
		}()
	}
	wg.Wait()

	t.Logf("withdrawals: %d succeeded, %d insufficient (out of %d)",
		successCount.Load(), insufficientCount.Load(), concurrency)

	assert.Equal(t, int64(50), successCount.Load())
	assert.Equal(t, int64(50), insufficientCount.Load())

	account, ok := app.accounts.FindByID(id)
	require.True(t, ok)
	assert.True(t, account.Balance.IsZero(), "final balance %s, want 0", account.Balance)
	app.cacheMatchesStore(t, id)

	// One record per successful withdrawal, none for the rejected ones.
	assert.Equal(t, 50, app.txRepo.count())
}

// TestConcurrentTransfers_ConservesTotalMoney runs random transfers across a
// pool of accounts and checks that the total amount of money in the system is
// unchanged afterwards, in both the cache and the store.
func TestConcurrentTransfers_ConservesTotalMoney(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	const numAccounts = 8
	ids := make([]int64, 0, numAccounts)
	for i := 0; i < numAccounts; i++ {
		ids = append(ids, app.seedAccount(t, 1000))
	}
	total := decimal.NewFromInt(numAccounts * 1000)

	concurrency := 200
	var wg sync.WaitGroup
	var successCount atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sender := ids[i%numAccounts]
			receiver := ids[(i+1+i%3)%numAccounts]
			if sender == receiver {
				return
			}
			amount := decimal.NewFromInt(int64(1 + i%50))
			_, err := app.ledgerSvc.Transfer(ctx, sender, receiver, amount)
			if err == nil {
				successCount.Add(1)
			} else if !isInsufficientFunds(err) {
				t.Errorf("unexpected transfer error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	t.Logf("transfers: %d of %d succeeded", successCount.Load(), concurrency)

	cachedTotal := decimal.Zero
	storedTotal := decimal.Zero
	for _, id := range ids {
		account, ok := app.accounts.FindByID(id)
		require.True(t, ok)
		assert.False(t, account.Balance.IsNegative(), "account %d went negative", id)
		cachedTotal = cachedTotal.Add(account.Balance)
		storedTotal = storedTotal.Add(app.accountRepo.storedBalance(id))
	}
	assert.True(t, total.Equal(cachedTotal), "cached total %s, want %s", cachedTotal, total)
	assert.True(t, total.Equal(storedTotal), "stored total %s, want %s", storedTotal, total)

	assert.Equal(t, int(successCount.Load()), app.txRepo.count())
}

// TestConcurrentDeleteDuringLedgerOps races account deletion against
// withdrawals on the same account. Whatever the interleaving, both sides must
// finish cleanly: either the withdraw lands before the delete or it reports
// the account missing, and the process must survive a waiter waking up on the
// deleted account's lock.
func TestConcurrentDeleteDuringLedgerOps(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		id := app.seedAccount(t, 1000)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := app.ledgerSvc.Withdraw(ctx, decimal.NewFromInt(10), id)
			if err != nil {
				var appErr *apperror.AppError
				assert.True(t, errors.As(err, &appErr), "unexpected withdraw error: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			ok, err := app.accounts.Delete(ctx, id)
			assert.NoError(t, err)
			assert.True(t, ok)
		}()
		wg.Wait()

		_, found := app.accounts.FindByID(id)
		assert.False(t, found, "account must be gone once the delete returns")
	}
}

// TestOpposedTransfers_NoDeadlock hammers two accounts with transfers in both
// directions at once. Pair acquisition must not deadlock regardless of the
// order the two sides name the accounts in.
func TestOpposedTransfers_NoDeadlock(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	a := app.seedAccount(t, 100000)
	b := app.seedAccount(t, 100000)

	iterations := 200
	amount := decimal.NewFromInt(1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		var wg sync.WaitGroup
		for i := 0; i < iterations; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, _ = app.ledgerSvc.Transfer(ctx, a, b, amount)
			}()
			go func() {
				defer wg.Done()
				_, _ = app.ledgerSvc.Transfer(ctx, b, a, amount)
			}()
		}
		wg.Wait()
	}()

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("opposed transfers did not finish, likely deadlocked")
	}

	// Every opposed pair moves the same amount each way, so both balances
	// end where they started.
	accountA, _ := app.accounts.FindByID(a)
	accountB, _ := app.accounts.FindByID(b)
	assert.True(t, decimal.NewFromInt(100000).Equal(accountA.Balance))
	assert.True(t, decimal.NewFromInt(100000).Equal(accountB.Balance))
	assert.Equal(t, 2*iterations, app.txRepo.count())
}
