package handler

import (
	"net/http"

	"github.com/osse101/SlotMock_Go/internal/domain"
	"github.com/osse101/SlotMock_Go/internal/metrics"
	"github.com/osse101/SlotMock_Go/internal/round"
)

// NotificationHandler handles notification dispatch requests
type NotificationHandler struct {
	rounds round.Service
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(rounds round.Service) *NotificationHandler {
	return &NotificationHandler{rounds: rounds}
}

// NotifyRequest dispatches a notification referencing a round
type NotifyRequest struct {
	UserID        *int   `json:"userId" validate:"required"`
	TransactionID string `json:"transactionId" validate:"required"`
	Message       string `json:"message" validate:"required"`
}

// NotifyResponse is the wire shape of a dispatched notification
type NotifyResponse struct {
	Status         string `json:"status"`
	NotificationID string `json:"notificationId"`
}

// HandleNotify appends a notification to the log
// @Summary Dispatch a notification
// @Tags notify
// @Accept json
// @Produce json
// @Param request body NotifyRequest true "Notification"
// @Success 200 {object} NotifyResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /notify [post]
func (h *NotificationHandler) HandleNotify(w http.ResponseWriter, r *http.Request) {
	var req NotifyRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Notify"); err != nil {
		return
	}

	notificationID, err := h.rounds.Notify(r.Context(), *req.UserID, req.TransactionID, req.Message)
	if err != nil {
		respondServiceError(w, r, "Notify", err)
		return
	}

	metrics.NotificationsSent.Inc()

	respondJSON(w, http.StatusOK, NotifyResponse{
		Status:         domain.NotificationStatusSent,
		NotificationID: notificationID,
	})
}
