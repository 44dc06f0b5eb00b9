package handler

import (
	"errors"
	"net/http"
	"time"

	"avia-booking/internal/bonus/usecase"
	"avia-booking/internal/httpx/httperr"
	"avia-booking/internal/httpx/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PrivilegeHandler struct {
	privilegeUseCase usecase.PrivilegeUseCase
}

func NewPrivilegeHandler(privilegeUseCase usecase.PrivilegeUseCase) *PrivilegeHandler {
	return &PrivilegeHandler{privilegeUseCase: privilegeUseCase}
}

// The uids below deliberately carry no `required` binding: the gateway keys
// purchase-time operations by the all-zero uid before the ticket exists.
type BonusOperationRequest struct {
	TicketUID       uuid.UUID `json:"ticketUid"`
	Price           int       `json:"price" binding:"required"`
	PaidFromBalance *bool     `json:"paidFromBalance" binding:"required"`
}

type RollbackRequest struct {
	TicketUID uuid.UUID `json:"ticketUid"`
}

type PrivilegeShortResponse struct {
	Balance int    `json:"balance"`
	Status  string `json:"status"`
}

type HistoryItemResponse struct {
	Date          time.Time `json:"date"`
	TicketUID     uuid.UUID `json:"ticketUid"`
	BalanceDiff   int       `json:"balanceDiff"`
	OperationType string    `json:"operationType"`
}

type PrivilegeInfoResponse struct {
	Balance int                   `json:"balance"`
	Status  string                `json:"status"`
	History []HistoryItemResponse `json:"history"`
}

type BonusOperationResponse struct {
	PaidByBonuses int                    `json:"paidByBonuses"`
	BalanceDiff   int                    `json:"balanceDiff"`
	Privilege     PrivilegeShortResponse `json:"privilege"`
}

// GetPrivilege handles GET /api/v1/privilege. The read path is strict: an
// unknown username is 404, never implicitly created.
func (h *PrivilegeHandler) GetPrivilege(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
		return
	}

	privilege, err := h.privilegeUseCase.GetPrivilege(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, usecase.ErrPrivilegeNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Privilege not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	history := make([]HistoryItemResponse, len(privilege.History))
	for i, entry := range privilege.History {
		history[i] = HistoryItemResponse{
			Date:          entry.Date,
			TicketUID:     entry.TicketUID,
			BalanceDiff:   entry.BalanceDiff,
			OperationType: entry.OperationType,
		}
	}

	c.JSON(http.StatusOK, PrivilegeInfoResponse{
		Balance: privilege.Balance,
		Status:  privilege.Status,
		History: history,
	})
}

// Calculate handles POST /api/v1/privilege/calculate: debit when
// paidFromBalance, cashback accrual otherwise.
func (h *PrivilegeHandler) Calculate(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
		return
	}

	var req BonusOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.privilegeUseCase.ApplyOperation(c.Request.Context(), username, req.TicketUID, req.Price, *req.PaidFromBalance)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidPrice) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Price must be positive", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, BonusOperationResponse{
		PaidByBonuses: result.PaidByBonuses,
		BalanceDiff:   result.BalanceDiff,
		Privilege: PrivilegeShortResponse{
			Balance: result.Balance,
			Status:  result.Status,
		},
	})
}

// Rollback handles POST /api/v1/privilege/rollback.
func (h *PrivilegeHandler) Rollback(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
		return
	}

	var req RollbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.privilegeUseCase.Rollback(c.Request.Context(), username, req.TicketUID); err != nil {
		if errors.Is(err, usecase.ErrHistoryNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No bonus history for ticket", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
