//go:build integration

package integration

import (
	"context"
	"testing"

	"avia-booking/internal/flight/repository"
	"avia-booking/internal/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flightMigration = "migrations/flight/001_initial_schema.sql"

func TestFlightRepository_FindByNumber(t *testing.T) {
	pool := setupDatabase(t, flightMigration)
	repo := repository.NewFlightRepository(pool)
	ctx := context.Background()

	flight, err := repo.FindByNumber(ctx, "AFL031")
	require.NoError(t, err)
	assert.Equal(t, "Пулково Санкт-Петербург", flight.FromAirport)
	assert.Equal(t, "Шереметьево Москва", flight.ToAirport)
	assert.Equal(t, 1500, flight.Price)

	_, err = repo.FindByNumber(ctx, "NOPE01")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestFlightRepository_FindPage(t *testing.T) {
	pool := setupDatabase(t, flightMigration)
	repo := repository.NewFlightRepository(pool)
	ctx := context.Background()

	flights, total, err := repo.FindPage(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, flights, 1)
	assert.Equal(t, "AFL031", flights[0].FlightNumber)

	flights, total, err = repo.FindPage(ctx, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Empty(t, flights)
}
