package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type Flight struct {
	FlightNumber string `json:"flightNumber"`
	FromAirport  string `json:"fromAirport"`
	ToAirport    string `json:"toAirport"`
	Date         string `json:"date"`
	Price        int    `json:"price"`
}

type FlightPage struct {
	Page          int      `json:"page"`
	PageSize      int      `json:"pageSize"`
	TotalElements int64    `json:"totalElements"`
	Items         []Flight `json:"items"`
}

type FlightClient struct {
	httpCaller
}

func NewFlightClient(cfg Config) *FlightClient {
	return &FlightClient{httpCaller: newHTTPCaller(cfg)}
}

func (c *FlightClient) GetFlights(ctx context.Context, page, size int) (*FlightPage, error) {
	var flightPage FlightPage
	path := fmt.Sprintf("/api/v1/flights?page=%d&size=%d", page, size)
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &flightPage); err != nil {
		return nil, err
	}
	return &flightPage, nil
}

func (c *FlightClient) GetFlight(ctx context.Context, flightNumber string) (*Flight, error) {
	var flight Flight
	path := "/api/v1/flights/" + url.PathEscape(flightNumber)
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &flight); err != nil {
		return nil, err
	}
	return &flight, nil
}
