package domain

import (
	"errors"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPaid     Status = "PAID"
	StatusCanceled Status = "CANCELED"
)

var (
	ErrUnknownStatus     = errors.New("unknown ticket status")
	ErrInvalidTransition = errors.New("only PAID tickets can be canceled")
	ErrEmptyFlightNumber = errors.New("flight number is required")
	ErrNonPositivePrice  = errors.New("price must be positive")
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPaid, StatusCanceled:
		return Status(s), nil
	default:
		return "", ErrUnknownStatus
	}
}

// CanTransitionTo guards the status machine: PAID -> CANCELED is the only
// legal move; rows are never deleted.
func (s Status) CanTransitionTo(to Status) bool {
	return s == StatusPaid && to == StatusCanceled
}

type Ticket struct {
	ID           int64
	TicketUID    uuid.UUID
	Username     string
	FlightNumber string
	Price        int
	Status       Status
}

func NewTicket(username, flightNumber string, price int) (*Ticket, error) {
	if flightNumber == "" {
		return nil, ErrEmptyFlightNumber
	}
	if price <= 0 {
		return nil, ErrNonPositivePrice
	}

	return &Ticket{
		TicketUID:    uuid.New(),
		Username:     username,
		FlightNumber: flightNumber,
		Price:        price,
		Status:       StatusPaid,
	}, nil
}
