package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"clever-bank/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptStream_Emit(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	stream := NewReceiptStream(client)
	ctx := context.Background()

	sender := int64(1)
	receiver := int64(2)
	txn := domain.Transaction{
		ID:                42,
		Date:              time.Date(2023, 8, 15, 12, 30, 0, 0, time.UTC),
		Type:              domain.TransactionTypeTransfer,
		SenderAccountID:   &sender,
		ReceiverAccountID: &receiver,
		Amount:            decimal.NewFromInt(500),
	}

	err := stream.Emit(ctx, txn)
	require.NoError(t, err)

	raw, err := s.Lpop(receiptStreamKey)
	require.NoError(t, err)

	var msg receiptMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &msg))
	assert.Equal(t, int64(42), msg.ID)
	assert.Equal(t, "TRANSFER", msg.Type)
	assert.Equal(t, "500", msg.Amount)
	require.NotNil(t, msg.SenderAccountID)
	assert.Equal(t, sender, *msg.SenderAccountID)
}

func TestReceiptStream_Emit_PreservesOrder(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	stream := NewReceiptStream(client)
	ctx := context.Background()

	receiver := int64(3)
	for i := int64(1); i <= 3; i++ {
		txn := domain.Transaction{
			ID:                i,
			Date:              time.Now(),
			Type:              domain.TransactionTypeRefill,
			ReceiverAccountID: &receiver,
			Amount:            decimal.NewFromInt(i * 10),
		}
		require.NoError(t, stream.Emit(ctx, txn))
	}

	for i := int64(1); i <= 3; i++ {
		raw, err := s.Lpop(receiptStreamKey)
		require.NoError(t, err)
		var msg receiptMessage
		require.NoError(t, json.Unmarshal([]byte(raw), &msg))
		assert.Equal(t, i, msg.ID)
	}
}
