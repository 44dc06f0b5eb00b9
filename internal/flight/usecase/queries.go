package usecase

import (
	"context"
	"errors"
	"time"

	"avia-booking/internal/infra"
	"avia-booking/internal/pkg/errs"
)

var (
	ErrFlightNotFound = errors.New("flight not found")
	ErrStorageFailed  = errors.New("storage operation failed")
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type FlightRM struct {
	FlightNumber string
	FromAirport  string
	ToAirport    string
	Date         time.Time
	Price        int
}

type FlightPageRM struct {
	Page          int
	PageSize      int
	TotalElements int64
	Items         []*FlightRM
}

type FlightRepository interface {
	FindPage(ctx context.Context, page, size int) ([]*FlightRM, int64, error)
	FindByNumber(ctx context.Context, flightNumber string) (*FlightRM, error)
}

type FlightQueries interface {
	GetFlights(ctx context.Context, page, size int) (*FlightPageRM, error)
	GetFlight(ctx context.Context, flightNumber string) (*FlightRM, error)
}

type flightQueriesImpl struct {
	repo FlightRepository
}

func NewFlightQueries(repo FlightRepository) FlightQueries {
	return &flightQueriesImpl{repo: repo}
}

func (q *flightQueriesImpl) GetFlights(ctx context.Context, page, size int) (*FlightPageRM, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	flights, total, err := q.repo.FindPage(ctx, page, size)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailed)
	}

	return &FlightPageRM{
		Page:          page,
		PageSize:      size,
		TotalElements: total,
		Items:         flights,
	}, nil
}

func (q *flightQueriesImpl) GetFlight(ctx context.Context, flightNumber string) (*FlightRM, error) {
	flight, err := q.repo.FindByNumber(ctx, flightNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailed)
	}
	return flight, nil
}
