package repository

import (
	"context"

	"avia-booking/internal/infra"
	"avia-booking/internal/pkg/pgconv"
	"avia-booking/internal/ticket/domain"
	"avia-booking/internal/ticket/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) usecase.TicketRepository {
	return &TicketRepository{pool: pool}
}

func (r *TicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO ticket (ticket_uid, username, flight_number, price, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		pgconv.UUIDToPgtype(ticket.TicketUID), ticket.Username, ticket.FlightNumber,
		ticket.Price, string(ticket.Status),
	).Scan(&ticket.ID)
	if err != nil {
		return infra.WrapRepoErr("failed to create ticket", err)
	}
	return nil
}

func (r *TicketRepository) FindByUID(ctx context.Context, username string, ticketUID uuid.UUID) (*usecase.TicketRM, error) {
	var (
		uid    pgtype.UUID
		ticket usecase.TicketRM
	)
	err := r.pool.QueryRow(ctx,
		`SELECT ticket_uid, flight_number, price, status
		 FROM ticket
		 WHERE ticket_uid = $1 AND username = $2`,
		pgconv.UUIDToPgtype(ticketUID), username,
	).Scan(&uid, &ticket.FlightNumber, &ticket.Price, &ticket.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ticket", err)
	}
	ticket.TicketUID = pgconv.UUIDFromPgtype(uid)

	return &ticket, nil
}

func (r *TicketRepository) FindByUsername(ctx context.Context, username string) ([]*usecase.TicketRM, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT ticket_uid, flight_number, price, status
		 FROM ticket
		 WHERE username = $1
		 ORDER BY id`,
		username,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tickets", err)
	}
	defer rows.Close()

	tickets := make([]*usecase.TicketRM, 0)
	for rows.Next() {
		var (
			uid    pgtype.UUID
			ticket usecase.TicketRM
		)
		if err := rows.Scan(&uid, &ticket.FlightNumber, &ticket.Price, &ticket.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ticket", err)
		}
		ticket.TicketUID = pgconv.UUIDFromPgtype(uid)
		tickets = append(tickets, &ticket)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate tickets", rows.Err())
	}

	return tickets, nil
}

func (r *TicketRepository) UpdateStatus(ctx context.Context, username string, ticketUID uuid.UUID, status domain.Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE ticket SET status = $1 WHERE ticket_uid = $2 AND username = $3`,
		string(status), pgconv.UUIDToPgtype(ticketUID), username,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update ticket status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ticket not found", nil, infra.KindNotFound)
	}
	return nil
}
