package handler

import (
	"time"

	"equity-registry/internal/adapter/http/dto"
	"equity-registry/internal/core/domain"
	"equity-registry/internal/core/ports"
	"equity-registry/pkg/apperror"
	"equity-registry/pkg/response"

	"github.com/gin-gonic/gin"
)

// LedgerHandler handles balance, allowance and transfer endpoints.
type LedgerHandler struct {
	ledgerSvc ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerSvc ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

// Transfer handles POST /api/v1/transfers.
func (h *LedgerHandler) Transfer(c *gin.Context) {
	sender, ok := senderAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	event, err := h.ledgerSvc.Transfer(c.Request.Context(), ports.TransferRequest{
		From:        sender,
		To:          req.To,
		Amount:      req.Amount,
		ReferenceID: req.ReferenceID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toEventResponse(*event))
}

// TransferFrom handles POST /api/v1/transfers/delegated. The caller acts as
// spender against a previously approved allowance.
func (h *LedgerHandler) TransferFrom(c *gin.Context) {
	spender, ok := senderAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.TransferFromRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	event, err := h.ledgerSvc.TransferFrom(c.Request.Context(), spender, req.From, req.To, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toEventResponse(*event))
}

// Mint handles POST /api/v1/supply/mint (emitter only).
func (h *LedgerHandler) Mint(c *gin.Context) {
	sender, ok := senderAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SupplyChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	supply, err := h.ledgerSvc.Mint(c.Request.Context(), sender, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SupplyChangeResponse{TotalSupply: supply})
}

// Burn handles POST /api/v1/supply/burn (emitter only).
func (h *LedgerHandler) Burn(c *gin.Context) {
	sender, ok := senderAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SupplyChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	supply, err := h.ledgerSvc.Burn(c.Request.Context(), sender, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SupplyChangeResponse{TotalSupply: supply})
}

// Approve handles POST /api/v1/allowances.
func (h *LedgerHandler) Approve(c *gin.Context) {
	owner, ok := senderAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.ledgerSvc.Approve(c.Request.Context(), owner, req.Spender, req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AllowanceResponse{
		Owner:   owner,
		Spender: req.Spender,
		Amount:  req.Amount,
	})
}

// UpdateApprove handles PATCH /api/v1/allowances. The delta may be negative;
// the resulting allowance never drops below zero.
func (h *LedgerHandler) UpdateApprove(c *gin.Context) {
	owner, ok := senderAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.UpdateApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	amount, err := h.ledgerSvc.UpdateApprove(c.Request.Context(), owner, req.Spender, req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AllowanceResponse{
		Owner:   owner,
		Spender: req.Spender,
		Amount:  amount,
	})
}

// Allowance handles GET /api/v1/allowances/:spender for the caller's grant.
func (h *LedgerHandler) Allowance(c *gin.Context) {
	owner, ok := senderAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	spender := c.Param("spender")

	amount, err := h.ledgerSvc.Allowance(c.Request.Context(), owner, spender)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AllowanceResponse{
		Owner:   owner,
		Spender: spender,
		Amount:  amount,
	})
}

// MyBalance handles GET /api/v1/me/balance.
func (h *LedgerHandler) MyBalance(c *gin.Context) {
	sender, ok := senderAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	h.balance(c, sender)
}

// HolderBalance handles GET /api/v1/holders/:address/balance.
func (h *LedgerHandler) HolderBalance(c *gin.Context) {
	h.balance(c, c.Param("address"))
}

func (h *LedgerHandler) balance(c *gin.Context, address string) {
	balance, err := h.ledgerSvc.Balance(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		Address:     address,
		Balance:     balance,
		Shareholder: balance > 0,
	})
}

func toEventResponse(e domain.RegistryEvent) dto.EventResponse {
	return dto.EventResponse{
		ID:           e.ID.String(),
		Kind:         string(e.Kind),
		Address:      e.Address,
		Counterparty: e.Counterparty,
		Amount:       e.Amount,
		NewSupply:    e.NewSupply,
		Factor:       e.Factor,
		Reference:    e.Reference,
		CreatedAt:    e.CreatedAt.UTC().Format(time.RFC3339),
	}
}
