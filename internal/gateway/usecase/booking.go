package usecase

import (
	"context"
	"errors"
	"log/slog"

	"avia-booking/internal/gateway/client"
	"avia-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrFlightNotFound    = errors.New("flight not found")
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrPrivilegeNotFound = errors.New("privilege not found")

	ErrBonusUnavailable  = errors.New("bonus service unavailable")
	ErrTicketUnavailable = errors.New("ticket service unavailable")
	ErrFlightUnavailable = errors.New("flight service unavailable")
)

// UnknownField substitutes flight details when enrichment fails; read
// paths degrade per field instead of failing the aggregate.
const UnknownField = "Unknown"

type FlightAPI interface {
	GetFlights(ctx context.Context, page, size int) (*client.FlightPage, error)
	GetFlight(ctx context.Context, flightNumber string) (*client.Flight, error)
}

type TicketAPI interface {
	GetTickets(ctx context.Context, username string) ([]client.Ticket, error)
	GetTicket(ctx context.Context, username string, ticketUID uuid.UUID) (*client.Ticket, error)
	CreateTicket(ctx context.Context, username, flightNumber string, price int) (*client.Ticket, error)
	CancelTicket(ctx context.Context, username string, ticketUID uuid.UUID) error
}

type BonusAPI interface {
	GetPrivilege(ctx context.Context, username string) (*client.Privilege, error)
	Calculate(ctx context.Context, username string, ticketUID uuid.UUID, price int, paidFromBalance bool) (*client.OperationResult, error)
	Rollback(ctx context.Context, username string, ticketUID uuid.UUID) error
}

type TicketView struct {
	TicketUID    uuid.UUID
	FlightNumber string
	FromAirport  string
	ToAirport    string
	Date         string
	Status       string
	Price        int
}

type PrivilegeView struct {
	Balance int
	Status  string
}

type UserInfoView struct {
	Tickets   []*TicketView
	Privilege PrivilegeView
}

type PurchaseView struct {
	TicketUID     uuid.UUID
	FlightNumber  string
	Price         int
	Status        string
	PaidByMoney   int
	PaidByBonuses int
	Privilege     PrivilegeView
}

type BookingUseCase interface {
	GetFlights(ctx context.Context, page, size int) (*client.FlightPage, error)
	GetUserTickets(ctx context.Context, username string) ([]*TicketView, error)
	GetTicketInfo(ctx context.Context, username string, ticketUID uuid.UUID) (*TicketView, error)
	GetUserInfo(ctx context.Context, username string) (*UserInfoView, error)
	GetUserPrivilege(ctx context.Context, username string) (*client.Privilege, error)
	PurchaseTicket(ctx context.Context, username, flightNumber string, price int, paidFromBalance bool) (*PurchaseView, error)
	RefundTicket(ctx context.Context, username string, ticketUID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	flights FlightAPI
	tickets TicketAPI
	bonuses BonusAPI
}

func NewBookingUseCase(flights FlightAPI, tickets TicketAPI, bonuses BonusAPI) BookingUseCase {
	return &bookingUseCaseImpl{
		flights: flights,
		tickets: tickets,
		bonuses: bonuses,
	}
}

func (u *bookingUseCaseImpl) GetFlights(ctx context.Context, page, size int) (*client.FlightPage, error) {
	flightPage, err := u.flights.GetFlights(ctx, page, size)
	if err != nil {
		return nil, errs.Mark(err, ErrFlightUnavailable)
	}
	return flightPage, nil
}

func (u *bookingUseCaseImpl) GetUserTickets(ctx context.Context, username string) ([]*TicketView, error) {
	tickets, err := u.tickets.GetTickets(ctx, username)
	if err != nil {
		// Availability over completeness on the read path: an unreachable
		// ticket service yields an empty list, not an error.
		slog.Warn("ticket service unavailable, returning empty list", "username", username, "error", err)
		return []*TicketView{}, nil
	}

	views := make([]*TicketView, len(tickets))
	for i, ticket := range tickets {
		views[i] = u.enrichTicket(ctx, ticket)
	}

	return views, nil
}

func (u *bookingUseCaseImpl) GetTicketInfo(ctx context.Context, username string, ticketUID uuid.UUID) (*TicketView, error) {
	ticket, err := u.tickets.GetTicket(ctx, username, ticketUID)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, errs.Mark(err, ErrTicketUnavailable)
	}

	return u.enrichTicket(ctx, *ticket), nil
}

func (u *bookingUseCaseImpl) GetUserInfo(ctx context.Context, username string) (*UserInfoView, error) {
	tickets, err := u.GetUserTickets(ctx, username)
	if err != nil {
		return nil, err
	}

	privilege := PrivilegeView{Balance: 0, Status: "BRONZE"}
	if p, err := u.bonuses.GetPrivilege(ctx, username); err != nil {
		slog.Warn("bonus service unavailable, using default privilege", "username", username, "error", err)
	} else {
		privilege = PrivilegeView{Balance: p.Balance, Status: p.Status}
	}

	return &UserInfoView{Tickets: tickets, Privilege: privilege}, nil
}

// GetUserPrivilege passes the full privilege with history through; unlike
// GetUserInfo it does not degrade, a user with no privilege row gets 404.
func (u *bookingUseCaseImpl) GetUserPrivilege(ctx context.Context, username string) (*client.Privilege, error) {
	privilege, err := u.bonuses.GetPrivilege(ctx, username)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return nil, ErrPrivilegeNotFound
		}
		return nil, errs.Mark(err, ErrBonusUnavailable)
	}
	return privilege, nil
}

// PurchaseTicket runs the purchase saga: flight existence check, bonus
// operation, ticket creation.
//
// The bonus ledger entry is keyed by uuid.Nil because the ticket does not
// exist yet when the operation is applied; history rows for purchases
// therefore never reference the real ticket uid. Known defect, kept
// because fixing it changes observable ledger records.
func (u *bookingUseCaseImpl) PurchaseTicket(ctx context.Context, username, flightNumber string, price int, paidFromBalance bool) (*PurchaseView, error) {
	if _, err := u.flights.GetFlight(ctx, flightNumber); err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, errs.Mark(err, ErrFlightUnavailable)
	}

	operation, err := u.bonuses.Calculate(ctx, username, uuid.Nil, price, paidFromBalance)
	if err != nil {
		return nil, errs.Mark(err, ErrBonusUnavailable)
	}

	ticket, err := u.tickets.CreateTicket(ctx, username, flightNumber, price)
	if err != nil {
		// The bonus step already mutated the balance; compensate before
		// failing so the ledger does not leak a debit/credit for a ticket
		// that never existed.
		if rbErr := u.bonuses.Rollback(ctx, username, uuid.Nil); rbErr != nil {
			slog.Error("failed to compensate bonus operation after ticket creation failure",
				"username", username, "error", rbErr)
		}
		return nil, errs.Mark(err, ErrTicketUnavailable)
	}

	return &PurchaseView{
		TicketUID:     ticket.TicketUID,
		FlightNumber:  ticket.FlightNumber,
		Price:         ticket.Price,
		Status:        ticket.Status,
		PaidByMoney:   price - operation.PaidByBonuses,
		PaidByBonuses: operation.PaidByBonuses,
		Privilege: PrivilegeView{
			Balance: operation.Privilege.Balance,
			Status:  operation.Privilege.Status,
		},
	}, nil
}

// RefundTicket cancels the ticket and then reverses the bonus operation.
// The rollback is fire-and-forget: its outcome never changes the refund
// result.
func (u *bookingUseCaseImpl) RefundTicket(ctx context.Context, username string, ticketUID uuid.UUID) error {
	if err := u.tickets.CancelTicket(ctx, username, ticketUID); err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return ErrTicketNotFound
		}
		return errs.Mark(err, ErrTicketUnavailable)
	}

	if err := u.bonuses.Rollback(ctx, username, ticketUID); err != nil {
		slog.Warn("bonus rollback failed during refund", "username", username, "ticket_uid", ticketUID, "error", err)
	}

	return nil
}

func (u *bookingUseCaseImpl) enrichTicket(ctx context.Context, ticket client.Ticket) *TicketView {
	view := &TicketView{
		TicketUID:    ticket.TicketUID,
		FlightNumber: ticket.FlightNumber,
		FromAirport:  UnknownField,
		ToAirport:    UnknownField,
		Date:         UnknownField,
		Status:       ticket.Status,
		Price:        ticket.Price,
	}

	flight, err := u.flights.GetFlight(ctx, ticket.FlightNumber)
	if err != nil {
		return view
	}

	view.FromAirport = flight.FromAirport
	view.ToAirport = flight.ToAirport
	view.Date = flight.Date

	return view
}
