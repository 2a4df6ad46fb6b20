package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/osse101/SlotMock_Go/internal/metrics"
	"github.com/osse101/SlotMock_Go/internal/round"
)

// SlotHandler handles slot spin requests
type SlotHandler struct {
	rounds round.Service
}

// NewSlotHandler creates a new slot handler
func NewSlotHandler(rounds round.Service) *SlotHandler {
	return &SlotHandler{rounds: rounds}
}

// SpinRequest spins the reels for a placed bet
type SpinRequest struct {
	UserID        *int     `json:"userId" validate:"required"`
	BetAmount     *float64 `json:"betAmount" validate:"required"`
	TransactionID string   `json:"transactionId" validate:"required"`
}

// SpinResponse is the wire shape of a spin result
type SpinResponse struct {
	UserID    int      `json:"userId"`
	Outcome   string   `json:"outcome"`
	WinAmount float64  `json:"winAmount"`
	Reels     []string `json:"reels"`
	Message   string   `json:"message"`
}

// HandleSpin draws the reels for a transaction and returns the outcome
// @Summary Spin the slot machine
// @Tags slot
// @Accept json
// @Produce json
// @Param request body SpinRequest true "Spin"
// @Success 200 {object} SpinResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /slot/spin [post]
func (h *SlotHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	var req SpinRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin"); err != nil {
		return
	}

	result, err := h.rounds.Spin(r.Context(), *req.UserID, decimal.NewFromFloat(*req.BetAmount), req.TransactionID)
	if err != nil {
		respondServiceError(w, r, "Spin", err)
		return
	}

	metrics.Spins.WithLabelValues(string(result.Outcome)).Inc()

	respondJSON(w, http.StatusOK, SpinResponse{
		UserID:    result.UserID,
		Outcome:   string(result.Outcome),
		WinAmount: result.WinAmount.InexactFloat64(),
		Reels:     result.Reels[:],
		Message:   result.Message,
	})
}
