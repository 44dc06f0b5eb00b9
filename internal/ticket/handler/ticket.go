package handler

import (
	"errors"
	"net/http"

	"avia-booking/internal/httpx/httperr"
	"avia-booking/internal/httpx/middleware"
	"avia-booking/internal/ticket/domain"
	"avia-booking/internal/ticket/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TicketHandler struct {
	ticketUseCase usecase.TicketUseCase
}

func NewTicketHandler(ticketUseCase usecase.TicketUseCase) *TicketHandler {
	return &TicketHandler{ticketUseCase: ticketUseCase}
}

type CreateTicketRequest struct {
	FlightNumber string `json:"flightNumber" binding:"required"`
	Price        int    `json:"price" binding:"required,gt=0"`
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type TicketResponse struct {
	TicketUID    uuid.UUID `json:"ticketUid"`
	FlightNumber string    `json:"flightNumber"`
	Price        int       `json:"price"`
	Status       string    `json:"status"`
}

func toTicketResponse(rm *usecase.TicketRM) TicketResponse {
	return TicketResponse{
		TicketUID:    rm.TicketUID,
		FlightNumber: rm.FlightNumber,
		Price:        rm.Price,
		Status:       rm.Status,
	}
}

func (h *TicketHandler) Create(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	ticket, err := h.ticketUseCase.Create(c.Request.Context(), username, req.FlightNumber, req.Price)
	if err != nil {
		if errors.Is(err, usecase.ErrValidationFailed) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ticket data", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, toTicketResponse(ticket))
}

func (h *TicketHandler) List(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
		return
	}

	tickets, err := h.ticketUseCase.List(c.Request.Context(), username)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]TicketResponse, len(tickets))
	for i, ticket := range tickets {
		response[i] = toTicketResponse(ticket)
	}

	c.JSON(http.StatusOK, response)
}

func (h *TicketHandler) Get(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
		return
	}

	ticketUID, ok := h.parseTicketUID(c)
	if !ok {
		return
	}

	ticket, err := h.ticketUseCase.Get(c.Request.Context(), username, ticketUID)
	if err != nil {
		if errors.Is(err, usecase.ErrTicketNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Ticket not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, toTicketResponse(ticket))
}

func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
		return
	}

	ticketUID, ok := h.parseTicketUID(c)
	if !ok {
		return
	}

	var req UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown status", nil)
		return
	}

	ticket, err := h.ticketUseCase.UpdateStatus(c.Request.Context(), username, ticketUID, status)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTicketNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Ticket not found", nil)
		case errors.Is(err, usecase.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Only PAID tickets can be canceled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, toTicketResponse(ticket))
}

func (h *TicketHandler) Delete(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
		return
	}

	ticketUID, ok := h.parseTicketUID(c)
	if !ok {
		return
	}

	if err := h.ticketUseCase.Cancel(c.Request.Context(), username, ticketUID); err != nil {
		if errors.Is(err, usecase.ErrTicketNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Ticket not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TicketHandler) parseTicketUID(c *gin.Context) (uuid.UUID, bool) {
	ticketUID, err := uuid.Parse(c.Param("ticketUid"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ticketUid format", nil)
		return uuid.Nil, false
	}
	return ticketUID, true
}
