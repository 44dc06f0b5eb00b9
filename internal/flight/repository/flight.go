package repository

import (
	"context"

	"avia-booking/internal/flight/usecase"
	"avia-booking/internal/infra"
	"avia-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository struct {
	pool *pgxpool.Pool
}

func NewFlightRepository(pool *pgxpool.Pool) usecase.FlightRepository {
	return &FlightRepository{pool: pool}
}

// Airports render as "Name City", matching the public flight listing.
const flightSelect = `
	SELECT f.flight_number,
	       fa.name || ' ' || fa.city,
	       ta.name || ' ' || ta.city,
	       f.datetime,
	       f.price
	FROM flight f
	JOIN airport fa ON fa.id = f.from_airport_id
	JOIN airport ta ON ta.id = f.to_airport_id`

func (r *FlightRepository) FindPage(ctx context.Context, page, size int) ([]*usecase.FlightRM, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM flight`).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count flights", err)
	}

	rows, err := r.pool.Query(ctx,
		flightSelect+` ORDER BY f.id LIMIT $1 OFFSET $2`,
		size, (page-1)*size,
	)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list flights", err)
	}
	defer rows.Close()

	flights := make([]*usecase.FlightRM, 0, size)
	for rows.Next() {
		flight, err := scanFlight(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		flights = append(flights, flight)
	}
	if rows.Err() != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate flights", rows.Err())
	}

	return flights, total, nil
}

func (r *FlightRepository) FindByNumber(ctx context.Context, flightNumber string) (*usecase.FlightRM, error) {
	row := r.pool.QueryRow(ctx, flightSelect+` WHERE f.flight_number = $1`, flightNumber)
	return scanFlight(row.Scan)
}

func scanFlight(scan func(dest ...any) error) (*usecase.FlightRM, error) {
	var (
		flight usecase.FlightRM
		at     pgtype.Timestamptz
	)
	if err := scan(&flight.FlightNumber, &flight.FromAirport, &flight.ToAirport, &at, &flight.Price); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("flight not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan flight", err)
	}
	flight.Date = pgconv.TimeFromPgtype(at)

	return &flight, nil
}
