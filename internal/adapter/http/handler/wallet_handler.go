package handler

import (
	"currency-wallet/internal/adapter/http/dto"
	"currency-wallet/internal/adapter/http/middleware"
	"currency-wallet/internal/core/domain"
	"currency-wallet/internal/core/ports"
	"currency-wallet/pkg/apperror"
	"currency-wallet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// WalletHandler handles wallet retrieval and mutation endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// GetOriginal handles GET /wallet/original, returning stored balances
// without conversion.
func (h *WalletHandler) GetOriginal(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	wallet, err := h.walletSvc.GetOriginalWallet(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.OriginalWalletResponse{Balances: wallet.Balances})
}

// GetConverted handles GET /wallet, returning balances converted to the
// wallet's local currency plus their total.
func (h *WalletHandler) GetConverted(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	view, err := h.walletSvc.GetLocalCurrencyWallet(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ConvertedWalletResponse{
		Balances: view.Balances,
		Total:    view.Total,
	})
}

// Add handles POST /wallet/add/:currency_code/:amount.
func (h *WalletHandler) Add(c *gin.Context) {
	h.mutate(c, func(ctx *gin.Context, userID string, code domain.Currency, amount decimal.Decimal) error {
		return h.walletSvc.AddToWallet(ctx.Request.Context(), userID, code, amount)
	})
}

// Subtract handles POST /wallet/subtract/:currency_code/:amount.
func (h *WalletHandler) Subtract(c *gin.Context) {
	h.mutate(c, func(ctx *gin.Context, userID string, code domain.Currency, amount decimal.Decimal) error {
		return h.walletSvc.SubtractFromWallet(ctx.Request.Context(), userID, code, amount)
	})
}

// mutate shares path-parameter validation between add and subtract. Both
// parameters are rejected at the boundary before any store access.
func (h *WalletHandler) mutate(c *gin.Context, op func(*gin.Context, string, domain.Currency, decimal.Decimal) error) {
	userID, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	code, err := dto.ParseCurrencyParam(c.Param("currency_code"))
	if err != nil {
		response.Error(c, err)
		return
	}

	amount, err := dto.ParseAmountParam(c.Param("amount"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := op(c, userID, code, amount); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{})
}

func callerID(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.CtxUserID)
	return userID, userID != ""
}
