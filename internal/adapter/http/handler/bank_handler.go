package handler

import (
	"clever-bank/internal/adapter/http/dto"
	"clever-bank/internal/cache"
	"clever-bank/internal/core/domain"
	"clever-bank/pkg/apperror"
	"clever-bank/pkg/response"

	"github.com/gin-gonic/gin"
)

// BankHandler handles bank CRUD endpoints.
type BankHandler struct {
	banks *cache.Cache[domain.Bank]
}

// NewBankHandler creates a new BankHandler.
func NewBankHandler(banks *cache.Cache[domain.Bank]) *BankHandler {
	return &BankHandler{banks: banks}
}

// List handles GET /api/v1/banks.
func (h *BankHandler) List(c *gin.Context) {
	all := h.banks.FindAll()
	out := make([]dto.BankResponse, 0, len(all))
	for _, b := range all {
		out = append(out, dto.BankResponse{ID: b.ID, Name: b.Name})
	}
	response.OK(c, out)
}

// Get handles GET /api/v1/banks/:id.
func (h *BankHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	bank, ok := h.banks.FindByID(id)
	if !ok {
		response.Error(c, apperror.ErrBankNotFound())
		return
	}
	response.OK(c, dto.BankResponse{ID: bank.ID, Name: bank.Name})
}

// Create handles POST /api/v1/banks.
func (h *BankHandler) Create(c *gin.Context) {
	var req dto.BankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	bank, err := h.banks.Save(c.Request.Context(), domain.Bank{Name: req.Name})
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	response.Created(c, dto.BankResponse{ID: bank.ID, Name: bank.Name})
}

// Update handles PUT /api/v1/banks/:id.
func (h *BankHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.BankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	found, err := h.banks.Update(c.Request.Context(), domain.Bank{ID: id, Name: req.Name})
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	if !found {
		response.Error(c, apperror.ErrBankNotFound())
		return
	}
	response.OK(c, dto.BankResponse{ID: id, Name: req.Name})
}

// Delete handles DELETE /api/v1/banks/:id.
func (h *BankHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	found, err := h.banks.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	if !found {
		response.Error(c, apperror.ErrBankNotFound())
		return
	}
	response.OK(c, gin.H{"deleted": id})
}
