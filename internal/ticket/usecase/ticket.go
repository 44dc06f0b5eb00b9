package usecase

import (
	"context"
	"errors"

	"avia-booking/internal/infra"
	"avia-booking/internal/pkg/errs"
	"avia-booking/internal/ticket/domain"

	"github.com/google/uuid"
)

var (
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrValidationFailed  = errors.New("ticket validation failed")

	ErrStorageFailed = errors.New("storage operation failed")
)

type TicketRM struct {
	TicketUID    uuid.UUID
	FlightNumber string
	Price        int
	Status       string
}

type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	FindByUID(ctx context.Context, username string, ticketUID uuid.UUID) (*TicketRM, error)
	FindByUsername(ctx context.Context, username string) ([]*TicketRM, error)
	UpdateStatus(ctx context.Context, username string, ticketUID uuid.UUID, status domain.Status) error
}

type TicketUseCase interface {
	Create(ctx context.Context, username, flightNumber string, price int) (*TicketRM, error)
	List(ctx context.Context, username string) ([]*TicketRM, error)
	Get(ctx context.Context, username string, ticketUID uuid.UUID) (*TicketRM, error)
	UpdateStatus(ctx context.Context, username string, ticketUID uuid.UUID, to domain.Status) (*TicketRM, error)
	Cancel(ctx context.Context, username string, ticketUID uuid.UUID) error
}

type ticketUseCaseImpl struct {
	repo TicketRepository
}

func NewTicketUseCase(repo TicketRepository) TicketUseCase {
	return &ticketUseCaseImpl{repo: repo}
}

func (u *ticketUseCaseImpl) Create(ctx context.Context, username, flightNumber string, price int) (*TicketRM, error) {
	ticket, err := domain.NewTicket(username, flightNumber, price)
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	if err := u.repo.Create(ctx, ticket); err != nil {
		return nil, errs.Mark(err, ErrStorageFailed)
	}

	return &TicketRM{
		TicketUID:    ticket.TicketUID,
		FlightNumber: ticket.FlightNumber,
		Price:        ticket.Price,
		Status:       string(ticket.Status),
	}, nil
}

func (u *ticketUseCaseImpl) List(ctx context.Context, username string) ([]*TicketRM, error) {
	tickets, err := u.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailed)
	}
	return tickets, nil
}

func (u *ticketUseCaseImpl) Get(ctx context.Context, username string, ticketUID uuid.UUID) (*TicketRM, error) {
	ticket, err := u.repo.FindByUID(ctx, username, ticketUID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailed)
	}
	return ticket, nil
}

func (u *ticketUseCaseImpl) UpdateStatus(ctx context.Context, username string, ticketUID uuid.UUID, to domain.Status) (*TicketRM, error) {
	ticket, err := u.Get(ctx, username, ticketUID)
	if err != nil {
		return nil, err
	}

	from, err := domain.ParseStatus(ticket.Status)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailed)
	}
	if !from.CanTransitionTo(to) {
		return nil, ErrInvalidTransition
	}

	if err := u.repo.UpdateStatus(ctx, username, ticketUID, to); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailed)
	}

	ticket.Status = string(to)
	return ticket, nil
}

// Cancel flips the ticket to CANCELED for a refund. Canceling an already
// canceled ticket stays a success so refund retries are harmless.
func (u *ticketUseCaseImpl) Cancel(ctx context.Context, username string, ticketUID uuid.UUID) error {
	ticket, err := u.Get(ctx, username, ticketUID)
	if err != nil {
		return err
	}

	if ticket.Status == string(domain.StatusCanceled) {
		return nil
	}

	if err := u.repo.UpdateStatus(ctx, username, ticketUID, domain.StatusCanceled); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTicketNotFound
		}
		return errs.Mark(err, ErrStorageFailed)
	}

	return nil
}
