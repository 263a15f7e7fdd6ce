package handler

import (
	"clever-bank/internal/adapter/http/dto"
	"clever-bank/internal/core/ports"
	"clever-bank/pkg/apperror"
	"clever-bank/pkg/response"

	"github.com/gin-gonic/gin"
)

// StatementHandler handles statement rendering endpoints.
type StatementHandler struct {
	statementSvc ports.StatementService
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(statementSvc ports.StatementService) *StatementHandler {
	return &StatementHandler{statementSvc: statementSvc}
}

// Money handles GET /api/v1/statements/money/:id.
func (h *StatementHandler) Money(c *gin.Context) {
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

	statement, err := h.statementSvc.MoneyStatement(c.Request.Context(), id, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.StatementResponse{Statement: statement})
}

// Account handles GET /api/v1/statements/account/:id.
func (h *StatementHandler) Account(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	period := ports.StatementPeriod(c.DefaultQuery("period", string(ports.PeriodWhole)))
	if !period.Valid() {
		response.Error(c, apperror.Validation("period must be CURRENT_MONTH, CURRENT_YEAR or WHOLE_PERIOD"))
		return
	}

	statement, err := h.statementSvc.AccountStatement(c.Request.Context(), id, period)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.StatementResponse{Statement: statement})
}
