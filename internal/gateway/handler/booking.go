package handler

import (
	"errors"
	"net/http"
	"strconv"

	"avia-booking/internal/gateway/usecase"
	"avia-booking/internal/httpx/httperr"
	"avia-booking/internal/httpx/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PurchaseTicketRequest struct {
	FlightNumber    string `json:"flightNumber" binding:"required"`
	Price           int    `json:"price" binding:"required,gt=0"`
	PaidFromBalance *bool  `json:"paidFromBalance" binding:"required"`
}

type FlightResponse struct {
	FlightNumber string `json:"flightNumber"`
	FromAirport  string `json:"fromAirport"`
	ToAirport    string `json:"toAirport"`
	Date         string `json:"date"`
	Price        int    `json:"price"`
}

type FlightPageResponse struct {
	Page          int              `json:"page"`
	PageSize      int              `json:"pageSize"`
	TotalElements int64            `json:"totalElements"`
	Items         []FlightResponse `json:"items"`
}

type TicketResponse struct {
	TicketUID    uuid.UUID `json:"ticketUid"`
	FlightNumber string    `json:"flightNumber"`
	FromAirport  string    `json:"fromAirport"`
	ToAirport    string    `json:"toAirport"`
	Date         string    `json:"date"`
	Status       string    `json:"status"`
	Price        int       `json:"price"`
}

type PrivilegeShortResponse struct {
	Balance int    `json:"balance"`
	Status  string `json:"status"`
}

type PrivilegeHistoryResponse struct {
	Date          string    `json:"date"`
	TicketUID     uuid.UUID `json:"ticketUid"`
	BalanceDiff   int       `json:"balanceDiff"`
	OperationType string    `json:"operationType"`
}

type PrivilegeResponse struct {
	Balance int                        `json:"balance"`
	Status  string                     `json:"status"`
	History []PrivilegeHistoryResponse `json:"history"`
}

type PurchaseTicketResponse struct {
	TicketUID     uuid.UUID              `json:"ticketUid"`
	FlightNumber  string                 `json:"flightNumber"`
	FromAirport   string                 `json:"fromAirport"`
	ToAirport     string                 `json:"toAirport"`
	Date          string                 `json:"date"`
	Price         int                    `json:"price"`
	PaidByMoney   int                    `json:"paidByMoney"`
	PaidByBonuses int                    `json:"paidByBonuses"`
	Status        string                 `json:"status"`
	Privilege     PrivilegeShortResponse `json:"privilege"`
}

type UserInfoResponse struct {
	Tickets   []TicketResponse       `json:"tickets"`
	Privilege PrivilegeShortResponse `json:"privilege"`
}

type BookingHandler struct {
	booking usecase.BookingUseCase
}

func NewBookingHandler(booking usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{booking: booking}
}

// GetFlights proxies the flight catalog page through unchanged.
func (h *BookingHandler) GetFlights(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	flightPage, err := h.booking.GetFlights(c.Request.Context(), page, size)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	items := make([]FlightResponse, len(flightPage.Items))
	for i, f := range flightPage.Items {
		items[i] = FlightResponse{
			FlightNumber: f.FlightNumber,
			FromAirport:  f.FromAirport,
			ToAirport:    f.ToAirport,
			Date:         f.Date,
			Price:        f.Price,
		}
	}

	c.JSON(http.StatusOK, FlightPageResponse{
		Page:          flightPage.Page,
		PageSize:      flightPage.PageSize,
		TotalElements: flightPage.TotalElements,
		Items:         items,
	})
}

func (h *BookingHandler) GetUserTickets(c *gin.Context) {
	username, _ := middleware.GetUsername(c)

	tickets, err := h.booking.GetUserTickets(c.Request.Context(), username)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTicketResponses(tickets))
}

func (h *BookingHandler) GetTicket(c *gin.Context) {
	username, _ := middleware.GetUsername(c)
	ticketUID, ok := parseTicketUID(c)
	if !ok {
		return
	}

	ticket, err := h.booking.GetTicketInfo(c.Request.Context(), username, ticketUID)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTicketResponse(ticket))
}

func (h *BookingHandler) PurchaseTicket(c *gin.Context) {
	username, _ := middleware.GetUsername(c)

	var req PurchaseTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	purchase, err := h.booking.PurchaseTicket(c.Request.Context(), username, req.FlightNumber, req.Price, *req.PaidFromBalance)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	ticket, err := h.booking.GetTicketInfo(c.Request.Context(), username, purchase.TicketUID)
	fromAirport, toAirport, date := usecase.UnknownField, usecase.UnknownField, usecase.UnknownField
	if err == nil {
		fromAirport, toAirport, date = ticket.FromAirport, ticket.ToAirport, ticket.Date
	}

	c.JSON(http.StatusOK, PurchaseTicketResponse{
		TicketUID:     purchase.TicketUID,
		FlightNumber:  purchase.FlightNumber,
		FromAirport:   fromAirport,
		ToAirport:     toAirport,
		Date:          date,
		Price:         purchase.Price,
		PaidByMoney:   purchase.PaidByMoney,
		PaidByBonuses: purchase.PaidByBonuses,
		Status:        purchase.Status,
		Privilege: PrivilegeShortResponse{
			Balance: purchase.Privilege.Balance,
			Status:  purchase.Privilege.Status,
		},
	})
}

func (h *BookingHandler) RefundTicket(c *gin.Context) {
	username, _ := middleware.GetUsername(c)
	ticketUID, ok := parseTicketUID(c)
	if !ok {
		return
	}

	if err := h.booking.RefundTicket(c.Request.Context(), username, ticketUID); err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) GetUserInfo(c *gin.Context) {
	username, _ := middleware.GetUsername(c)

	info, err := h.booking.GetUserInfo(c.Request.Context(), username)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserInfoResponse{
		Tickets: toTicketResponses(info.Tickets),
		Privilege: PrivilegeShortResponse{
			Balance: info.Privilege.Balance,
			Status:  info.Privilege.Status,
		},
	})
}

func (h *BookingHandler) GetPrivilege(c *gin.Context) {
	username, _ := middleware.GetUsername(c)

	privilege, err := h.booking.GetUserPrivilege(c.Request.Context(), username)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	history := make([]PrivilegeHistoryResponse, len(privilege.History))
	for i, entry := range privilege.History {
		history[i] = PrivilegeHistoryResponse{
			Date:          entry.Date,
			TicketUID:     entry.TicketUID,
			BalanceDiff:   entry.BalanceDiff,
			OperationType: entry.OperationType,
		}
	}

	c.JSON(http.StatusOK, PrivilegeResponse{
		Balance: privilege.Balance,
		Status:  privilege.Status,
		History: history,
	})
}

func abortWithMappedError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrFlightNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Flight not found", nil)
	case errors.Is(err, usecase.ErrTicketNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Ticket not found", nil)
	case errors.Is(err, usecase.ErrPrivilegeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Privilege not found", nil)
	case errors.Is(err, usecase.ErrBonusUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Bonus Service unavailable", nil)
	case errors.Is(err, usecase.ErrTicketUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Ticket Service unavailable", nil)
	case errors.Is(err, usecase.ErrFlightUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Flight Service unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func parseTicketUID(c *gin.Context) (uuid.UUID, bool) {
	ticketUID, err := uuid.Parse(c.Param("ticketUid"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ticketUid format", nil)
		return uuid.Nil, false
	}
	return ticketUID, true
}

func toTicketResponse(t *usecase.TicketView) TicketResponse {
	return TicketResponse{
		TicketUID:    t.TicketUID,
		FlightNumber: t.FlightNumber,
		FromAirport:  t.FromAirport,
		ToAirport:    t.ToAirport,
		Date:         t.Date,
		Status:       t.Status,
		Price:        t.Price,
	}
}

func toTicketResponses(tickets []*usecase.TicketView) []TicketResponse {
	responses := make([]TicketResponse, len(tickets))
	for i, t := range tickets {
		responses[i] = toTicketResponse(t)
	}
	return responses
}
