package handler

import (
	"time"

	"clever-bank/internal/adapter/http/dto"
	"clever-bank/internal/core/ports"
	"clever-bank/pkg/apperror"
	"clever-bank/pkg/response"

	"github.com/gin-gonic/gin"
)

// LedgerHandler handles money-movement endpoints.
type LedgerHandler struct {
	ledgerSvc ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerSvc ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

// Transfer handles POST /api/v1/ledger/transfer.
func (h *LedgerHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.ledgerSvc.Transfer(c.Request.Context(), req.SenderAccountID, req.ReceiverAccountID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.TransferResponse{
		SenderBalance:   result.SenderBalance.String(),
		ReceiverBalance: result.ReceiverBalance.String(),
	})
}

// Withdraw handles POST /api/v1/ledger/withdraw.
func (h *LedgerHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	balance, err := h.ledgerSvc.Withdraw(c.Request.Context(), req.Amount, req.AccountID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{AccountID: req.AccountID, Balance: balance.String()})
}

// Refill handles POST /api/v1/ledger/refill.
func (h *LedgerHandler) Refill(c *gin.Context) {
	var req dto.RefillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	balance, err := h.ledgerSvc.Refill(c.Request.Context(), req.Amount, req.AccountID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{AccountID: req.AccountID, Balance: balance.String()})
}

// Income handles GET /api/v1/ledger/accounts/:id/income.
func (h *LedgerHandler) Income(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	from, to, err := periodQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	income, err := h.ledgerSvc.IncomeByPeriod(c.Request.Context(), id, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{AccountID: id, Balance: income.String()})
}

// Outgo handles GET /api/v1/ledger/accounts/:id/outgo.
func (h *LedgerHandler) Outgo(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	from, to, err := periodQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	outgo, err := h.ledgerSvc.OutgoByPeriod(c.Request.Context(), id, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{AccountID: id, Balance: outgo.String()})
}

// periodQuery parses the from/to RFC3339 query parameters.
func periodQuery(c *gin.Context) (time.Time, time.Time, error) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, apperror.Validation("from must be an RFC3339 timestamp")
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, apperror.Validation("to must be an RFC3339 timestamp")
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, apperror.Validation("to must be after from")
	}
	return from, to, nil
}
