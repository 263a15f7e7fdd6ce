package handler

import (
	"time"

	"clever-bank/internal/adapter/http/dto"
	"clever-bank/internal/cache"
	"clever-bank/internal/core/domain"
	"clever-bank/pkg/apperror"
	"clever-bank/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction log endpoints.
type TransactionHandler struct {
	txLog *cache.Cache[domain.Transaction]
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(txLog *cache.Cache[domain.Transaction]) *TransactionHandler {
	return &TransactionHandler{txLog: txLog}
}

// List handles GET /api/v1/transactions.
func (h *TransactionHandler) List(c *gin.Context) {
	all := h.txLog.FindAll()
	out := make([]dto.TransactionResponse, 0, len(all))
	for _, t := range all {
		out = append(out, toTransactionResponse(t))
	}
	response.OK(c, out)
}

// Get handles GET /api/v1/transactions/:id.
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	txn, ok := h.txLog.FindByID(id)
	if !ok {
		response.Error(c, apperror.ErrTransactionNotFound())
		return
	}
	response.OK(c, toTransactionResponse(txn))
}

// UpdateDate handles PATCH /api/v1/transactions/:id/date. The timestamp is
// the only mutable field of a committed record.
func (h *TransactionHandler) UpdateDate(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateTransactionDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	found, err := h.txLog.Update(c.Request.Context(), domain.Transaction{ID: id, Date: req.Date})
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	if !found {
		response.Error(c, apperror.ErrTransactionNotFound())
		return
	}

	txn, _ := h.txLog.FindByID(id)
	response.OK(c, toTransactionResponse(txn))
}

func toTransactionResponse(t domain.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:                t.ID,
		Date:              t.Date.Format(time.RFC3339),
		Type:              string(t.Type),
		SenderAccountID:   t.SenderAccountID,
		ReceiverAccountID: t.ReceiverAccountID,
		Amount:            t.Amount.String(),
	}
}
