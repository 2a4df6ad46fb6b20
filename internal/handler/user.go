package handler

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/osse101/SlotMock_Go/internal/domain"
)

// LedgerService defines the balance operations the user endpoints need
type LedgerService interface {
	GetBalance(ctx context.Context, userID int) (decimal.Decimal, string, error)
	SetBalance(ctx context.Context, userID int, newBalance decimal.Decimal) (domain.Player, error)
}

// UserHandler handles balance lookup and overwrite requests
type UserHandler struct {
	ledger LedgerService
}

// NewUserHandler creates a new user handler
func NewUserHandler(ledger LedgerService) *UserHandler {
	return &UserHandler{ledger: ledger}
}

// BalanceResponse is the wire shape of a balance read or write
type BalanceResponse struct {
	UserID   int     `json:"userId"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

// UpdateBalanceRequest overwrites a user's balance
type UpdateBalanceRequest struct {
	UserID     *int     `json:"userId" validate:"required"`
	NewBalance *float64 `json:"newBalance" validate:"required,gte=0"`
}

// HandleGetBalance returns the current balance for a user
// @Summary Get user balance
// @Tags user
// @Produce json
// @Param userId query int true "User ID"
// @Success 200 {object} BalanceResponse
// @Failure 404 {object} ErrorResponse
// @Router /user/balance [get]
func (h *UserHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetIntQueryParam(r, w, "userId")
	if !ok {
		return
	}

	balance, currency, err := h.ledger.GetBalance(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get balance", err)
		return
	}

	respondJSON(w, http.StatusOK, BalanceResponse{
		UserID:   userID,
		Balance:  balance.InexactFloat64(),
		Currency: currency,
	})
}

// HandleUpdateBalance unconditionally overwrites a user's balance
// @Summary Set user balance
// @Tags user
// @Accept json
// @Produce json
// @Param request body UpdateBalanceRequest true "New balance"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /user/update-balance [post]
func (h *UserHandler) HandleUpdateBalance(w http.ResponseWriter, r *http.Request) {
	var req UpdateBalanceRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update balance"); err != nil {
		return
	}

	player, err := h.ledger.SetBalance(r.Context(), *req.UserID, decimal.NewFromFloat(*req.NewBalance))
	if err != nil {
		respondServiceError(w, r, "Update balance", err)
		return
	}

	respondJSON(w, http.StatusOK, BalanceResponse{
		UserID:   player.UserID,
		Balance:  player.Balance.InexactFloat64(),
		Currency: player.Currency,
	})
}
