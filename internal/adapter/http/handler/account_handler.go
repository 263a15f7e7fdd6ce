package handler

import (
	"strconv"
	"time"

	"clever-bank/internal/adapter/http/dto"
	"clever-bank/internal/cache"
	"clever-bank/internal/core/domain"
	"clever-bank/pkg/apperror"
	"clever-bank/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles account CRUD endpoints.
type AccountHandler struct {
	accounts *cache.Cache[domain.Account]
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accounts *cache.Cache[domain.Account]) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// List handles GET /api/v1/accounts.
func (h *AccountHandler) List(c *gin.Context) {
	all := h.accounts.FindAll()
	out := make([]dto.AccountResponse, 0, len(all))
	for _, a := range all {
		out = append(out, toAccountResponse(a))
	}
	response.OK(c, out)
}

// Get handles GET /api/v1/accounts/:id.
func (h *AccountHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	account, ok := h.accounts.FindByID(id)
	if !ok {
		response.Error(c, apperror.ErrAccountNotFound())
		return
	}
	response.OK(c, toAccountResponse(account))
}

// Create handles POST /api/v1/accounts.
func (h *AccountHandler) Create(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	currency := domain.Currency(req.Currency)
	if !currency.Valid() {
		response.Error(c, apperror.ErrInvalidCurrency())
		return
	}
	if req.Balance.IsNegative() {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	account, err := h.accounts.Save(c.Request.Context(), domain.Account{
		Currency:    currency,
		OpeningDate: time.Now(),
		Balance:     req.Balance,
		BankID:      req.BankID,
		UserID:      req.UserID,
	})
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	response.Created(c, toAccountResponse(account))
}

// Update handles PUT /api/v1/accounts/:id.
func (h *AccountHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	currency := domain.Currency(req.Currency)
	if !currency.Valid() {
		response.Error(c, apperror.ErrInvalidCurrency())
		return
	}

	found, err := h.accounts.Update(c.Request.Context(), domain.Account{
		ID:       id,
		Currency: currency,
		Balance:  req.Balance,
		BankID:   req.BankID,
		UserID:   req.UserID,
	})
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	if !found {
		response.Error(c, apperror.ErrAccountNotFound())
		return
	}

	account, _ := h.accounts.FindByID(id)
	response.OK(c, toAccountResponse(account))
}

// Delete handles DELETE /api/v1/accounts/:id.
func (h *AccountHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	found, err := h.accounts.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	if !found {
		response.Error(c, apperror.ErrAccountNotFound())
		return
	}
	response.OK(c, gin.H{"deleted": id})
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.Validation("id must be a positive integer")
	}
	return id, nil
}

func toAccountResponse(a domain.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:          a.ID,
		Currency:    string(a.Currency),
		OpeningDate: a.OpeningDate.Format(time.RFC3339),
		Balance:     a.Balance.String(),
		BankID:      a.BankID,
		UserID:      a.UserID,
	}
}
