package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/osse101/SlotMock_Go/internal/domain"
	"github.com/osse101/SlotMock_Go/internal/metrics"
	"github.com/osse101/SlotMock_Go/internal/round"
)

// PaymentHandler handles bet placement and payout requests
type PaymentHandler struct {
	rounds round.Service
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(rounds round.Service) *PaymentHandler {
	return &PaymentHandler{rounds: rounds}
}

// PlaceBetRequest debits a bet from a user's balance
type PlaceBetRequest struct {
	UserID    *int     `json:"userId" validate:"required"`
	BetAmount *float64 `json:"betAmount" validate:"required"`
}

// PlaceBetResponse is the wire shape of a successful bet placement
type PlaceBetResponse struct {
	UserID        int     `json:"userId"`
	TransactionID string  `json:"transactionId"`
	Status        string  `json:"status"`
	NewBalance    float64 `json:"newBalance"`
}

// PayoutRequest settles a round and credits the winnings
type PayoutRequest struct {
	UserID        *int     `json:"userId" validate:"required"`
	TransactionID string   `json:"transactionId" validate:"required"`
	WinAmount     *float64 `json:"winAmount" validate:"required"`
}

// PayoutResponse is the wire shape of a successful settlement
type PayoutResponse struct {
	UserID        int     `json:"userId"`
	TransactionID string  `json:"transactionId"`
	Status        string  `json:"status"`
	NewBalance    float64 `json:"newBalance"`
}

// HandlePlaceBet places a bet: debits the ledger and opens a round
// @Summary Place a bet
// @Tags payment
// @Accept json
// @Produce json
// @Param request body PlaceBetRequest true "Bet"
// @Success 200 {object} PlaceBetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /payment/placeBet [post]
func (h *PaymentHandler) HandlePlaceBet(w http.ResponseWriter, r *http.Request) {
	var req PlaceBetRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Place bet"); err != nil {
		return
	}

	betAmount := decimal.NewFromFloat(*req.BetAmount)
	receipt, err := h.rounds.PlaceBet(r.Context(), *req.UserID, betAmount)
	if err != nil {
		respondServiceError(w, r, "Place bet", err)
		return
	}

	metrics.BetsPlaced.Inc()
	metrics.MoneyWagered.Add(betAmount.InexactFloat64())

	respondJSON(w, http.StatusOK, PlaceBetResponse{
		UserID:        *req.UserID,
		TransactionID: receipt.TransactionID,
		Status:        domain.TransactionStatusSuccess,
		NewBalance:    receipt.NewBalance.InexactFloat64(),
	})
}

// HandlePayout settles a round and credits the win amount
// @Summary Pay out a round
// @Tags payment
// @Accept json
// @Produce json
// @Param request body PayoutRequest true "Payout"
// @Success 200 {object} PayoutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /payment/payout [post]
func (h *PaymentHandler) HandlePayout(w http.ResponseWriter, r *http.Request) {
	var req PayoutRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Payout"); err != nil {
		return
	}

	winAmount := decimal.NewFromFloat(*req.WinAmount)
	receipt, err := h.rounds.Payout(r.Context(), *req.UserID, req.TransactionID, winAmount)
	if err != nil {
		respondServiceError(w, r, "Payout", err)
		return
	}

	metrics.Payouts.Inc()
	metrics.MoneyPaidOut.Add(winAmount.InexactFloat64())

	respondJSON(w, http.StatusOK, PayoutResponse{
		UserID:        *req.UserID,
		TransactionID: receipt.TransactionID,
		Status:        domain.TransactionStatusSuccess,
		NewBalance:    receipt.NewBalance.InexactFloat64(),
	})
}
