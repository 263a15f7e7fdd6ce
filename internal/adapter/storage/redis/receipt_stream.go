package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"clever-bank/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// receiptStreamKey is the list downstream consumers read committed
// transactions from.
const receiptStreamKey = "receipts:committed"

// receiptMessage is the wire form of a committed transaction.
type receiptMessage struct {
	ID                int64  `json:"id"`
	Date              string `json:"date"`
	Type              string `json:"type"`
	SenderAccountID   *int64 `json:"sender_account_id,omitempty"`
	ReceiverAccountID *int64 `json:"receiver_account_id,omitempty"`
	Amount            string `json:"amount"`
}

// ReceiptStream implements ports.ReceiptSink by publishing committed
// transactions to a Redis list for downstream consumers.
type ReceiptStream struct {
	client *goredis.Client
}

// NewReceiptStream creates a Redis-backed receipt sink.
func NewReceiptStream(client *goredis.Client) *ReceiptStream {
	return &ReceiptStream{client: client}
}

// Emit appends the transaction to the receipt stream.
func (s *ReceiptStream) Emit(ctx context.Context, t domain.Transaction) error {
	msg := receiptMessage{
		ID:                t.ID,
		Date:              t.Date.Format(time.RFC3339),
		Type:              string(t.Type),
		SenderAccountID:   t.SenderAccountID,
		ReceiverAccountID: t.ReceiverAccountID,
		Amount:            t.Amount.String(),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal receipt message: %w", err)
	}

	if err := s.client.RPush(ctx, receiptStreamKey, payload).Err(); err != nil {
		return fmt.Errorf("redis receipt push: %w", err)
	}
	return nil
}
