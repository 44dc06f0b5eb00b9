package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type Ticket struct {
	TicketUID    uuid.UUID `json:"ticketUid"`
	FlightNumber string    `json:"flightNumber"`
	Price        int       `json:"price"`
	Status       string    `json:"status"`
}

type createTicketRequest struct {
	FlightNumber string `json:"flightNumber"`
	Price        int    `json:"price"`
}

type TicketClient struct {
	httpCaller
}

func NewTicketClient(cfg Config) *TicketClient {
	return &TicketClient{httpCaller: newHTTPCaller(cfg)}
}

func (c *TicketClient) GetTickets(ctx context.Context, username string) ([]Ticket, error) {
	var tickets []Ticket
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/tickets", username, nil, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (c *TicketClient) GetTicket(ctx context.Context, username string, ticketUID uuid.UUID) (*Ticket, error) {
	var ticket Ticket
	path := "/api/v1/tickets/" + ticketUID.String()
	if err := c.doJSON(ctx, http.MethodGet, path, username, nil, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (c *TicketClient) CreateTicket(ctx context.Context, username, flightNumber string, price int) (*Ticket, error) {
	var ticket Ticket
	body := createTicketRequest{FlightNumber: flightNumber, Price: price}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/tickets", username, body, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (c *TicketClient) CancelTicket(ctx context.Context, username string, ticketUID uuid.UUID) error {
	path := "/api/v1/tickets/" + ticketUID.String()
	return c.doJSON(ctx, http.MethodDelete, path, username, nil, nil)
}
