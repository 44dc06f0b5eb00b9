package handler

import (
	"errors"
	"net/http"
	"strconv"

	"avia-booking/internal/flight/usecase"
	"avia-booking/internal/httpx/httperr"

	"github.com/gin-gonic/gin"
)

// DateLayout is the wire format for flight departure times.
const DateLayout = "2006-01-02 15:04"

type FlightHandler struct {
	flightQueries usecase.FlightQueries
}

func NewFlightHandler(flightQueries usecase.FlightQueries) *FlightHandler {
	return &FlightHandler{flightQueries: flightQueries}
}

type FlightResponse struct {
	FlightNumber string `json:"flightNumber"`
	FromAirport  string `json:"fromAirport"`
	ToAirport    string `json:"toAirport"`
	Date         string `json:"date"`
	Price        int    `json:"price"`
}

type PaginationResponse struct {
	Page          int              `json:"page"`
	PageSize      int              `json:"pageSize"`
	TotalElements int64            `json:"totalElements"`
	Items         []FlightResponse `json:"items"`
}

func toFlightResponse(rm *usecase.FlightRM) FlightResponse {
	return FlightResponse{
		FlightNumber: rm.FlightNumber,
		FromAirport:  rm.FromAirport,
		ToAirport:    rm.ToAirport,
		Date:         rm.Date.Format(DateLayout),
		Price:        rm.Price,
	}
}

func (h *FlightHandler) GetFlights(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	flightPage, err := h.flightQueries.GetFlights(c.Request.Context(), page, size)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	items := make([]FlightResponse, len(flightPage.Items))
	for i, flight := range flightPage.Items {
		items[i] = toFlightResponse(flight)
	}

	c.JSON(http.StatusOK, PaginationResponse{
		Page:          flightPage.Page,
		PageSize:      flightPage.PageSize,
		TotalElements: flightPage.TotalElements,
		Items:         items,
	})
}

func (h *FlightHandler) GetFlight(c *gin.Context) {
	flightNumber := c.Param("flightNumber")

	flight, err := h.flightQueries.GetFlight(c.Request.Context(), flightNumber)
	if err != nil {
		if errors.Is(err, usecase.ErrFlightNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Flight not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, toFlightResponse(flight))
}
