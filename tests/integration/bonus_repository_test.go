//go:build integration

package integration

import (
	"context"
	"sync"
	"testing"

	"avia-booking/internal/bonus/repository"
	"avia-booking/internal/infra"
	"avia-booking/internal/pkg/clock"
	"avia-booking/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bonusMigration = "migrations/bonus/001_initial_schema.sql"

func TestPrivilegeRepository_StrictReadVsLazyWrite(t *testing.T) {
	pool := setupDatabase(t, bonusMigration)
	repo := repository.NewPrivilegeRepository(pool, clock.NewRealClock())
	ctx := context.Background()

	// Read of an unseen user never provisions.
	_, err := repo.FindWithHistory(ctx, "Fresh User")
	require.True(t, infra.IsKind(err, infra.KindNotFound))

	// Write provisions with BRONZE/0 and applies the cashback in one step.
	result, err := repo.ApplyOperation(ctx, "Fresh User", uuid.Nil, 1500, false)
	require.NoError(t, err)
	assert.Equal(t, 0, result.PaidByBonuses)
	assert.Equal(t, 150, result.BalanceDiff)
	assert.Equal(t, 150, result.Balance)
	assert.Equal(t, "BRONZE", result.Status)

	privilege, err := repo.FindWithHistory(ctx, "Fresh User")
	require.NoError(t, err)
	assert.Equal(t, 150, privilege.Balance)
	require.Len(t, privilege.History, 1)
	assert.Equal(t, 150, privilege.History[0].BalanceDiff)
	assert.Equal(t, "FILL_IN_BALANCE", privilege.History[0].OperationType)
	assert.Equal(t, uuid.Nil, privilege.History[0].TicketUID)
}

func TestPrivilegeRepository_DebitNeverOverdraws(t *testing.T) {
	pool := setupDatabase(t, bonusMigration)
	repo := repository.NewPrivilegeRepository(pool, clock.NewRealClock())
	ctx := context.Background()

	dbtest.CreatePrivilege(t, pool, "Test Max", 100, "BRONZE")

	result, err := repo.ApplyOperation(ctx, "Test Max", uuid.Nil, 1500, true)
	require.NoError(t, err)
	assert.Equal(t, 100, result.PaidByBonuses)
	assert.Equal(t, -100, result.BalanceDiff)
	assert.Equal(t, 0, result.Balance)
	assert.Equal(t, 0, dbtest.PrivilegeBalance(t, pool, "Test Max"))
}

// Concurrent debits against one username must serialize on the row lock;
// the balance ends at zero, never negative.
func TestPrivilegeRepository_ConcurrentDebitsSerialize(t *testing.T) {
	pool := setupDatabase(t, bonusMigration)
	repo := repository.NewPrivilegeRepository(pool, clock.NewRealClock())
	ctx := context.Background()

	dbtest.CreatePrivilege(t, pool, "Test Max", 500, "BRONZE")

	const workers = 8
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			_, err := repo.ApplyOperation(ctx, "Test Max", uuid.New(), 1000, true)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, dbtest.PrivilegeBalance(t, pool, "Test Max"))
}

func TestPrivilegeRepository_ReverseOperation(t *testing.T) {
	pool := setupDatabase(t, bonusMigration)
	repo := repository.NewPrivilegeRepository(pool, clock.NewRealClock())
	ctx := context.Background()

	ticketUID := uuid.New()
	dbtest.CreatePrivilege(t, pool, "Test Max", 300, "BRONZE")

	// Debit 300 for the ticket, then reverse it.
	_, err := repo.ApplyOperation(ctx, "Test Max", ticketUID, 1500, true)
	require.NoError(t, err)
	require.Equal(t, 0, dbtest.PrivilegeBalance(t, pool, "Test Max"))

	require.NoError(t, repo.ReverseOperation(ctx, "Test Max", ticketUID))
	assert.Equal(t, 300, dbtest.PrivilegeBalance(t, pool, "Test Max"))
	assert.Equal(t, 2, dbtest.HistoryCount(t, pool, ticketUID))

	// Reversing again nets to zero: no balance change, no new entry.
	require.NoError(t, repo.ReverseOperation(ctx, "Test Max", ticketUID))
	assert.Equal(t, 300, dbtest.PrivilegeBalance(t, pool, "Test Max"))
	assert.Equal(t, 2, dbtest.HistoryCount(t, pool, ticketUID))
}

func TestPrivilegeRepository_ReverseCashbackCapsAtZero(t *testing.T) {
	pool := setupDatabase(t, bonusMigration)
	repo := repository.NewPrivilegeRepository(pool, clock.NewRealClock())
	ctx := context.Background()

	ticketUID := uuid.New()

	// Accrue 150, then spend it all on another purchase.
	_, err := repo.ApplyOperation(ctx, "Test Max", ticketUID, 1500, false)
	require.NoError(t, err)
	_, err = repo.ApplyOperation(ctx, "Test Max", uuid.New(), 1500, true)
	require.NoError(t, err)
	require.Equal(t, 0, dbtest.PrivilegeBalance(t, pool, "Test Max"))

	// Reversing the accrual would go negative; it caps at zero instead.
	require.NoError(t, repo.ReverseOperation(ctx, "Test Max", ticketUID))
	assert.Equal(t, 0, dbtest.PrivilegeBalance(t, pool, "Test Max"))
}

func TestPrivilegeRepository_ReverseWithoutHistoryIsNotFound(t *testing.T) {
	pool := setupDatabase(t, bonusMigration)
	repo := repository.NewPrivilegeRepository(pool, clock.NewRealClock())
	ctx := context.Background()

	err := repo.ReverseOperation(ctx, "Nobody", uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	dbtest.CreatePrivilege(t, pool, "Test Max", 100, "BRONZE")
	err = repo.ReverseOperation(ctx, "Test Max", uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestPrivilegeRepository_HistoryMagnitudesStayNonNegative(t *testing.T) {
	pool := setupDatabase(t, bonusMigration)
	repo := repository.NewPrivilegeRepository(pool, clock.NewRealClock())
	ctx := context.Background()

	dbtest.CreatePrivilege(t, pool, "Test Max", 200, "BRONZE")
	ticketUID := uuid.New()

	_, err := repo.ApplyOperation(ctx, "Test Max", ticketUID, 1500, true)
	require.NoError(t, err)

	privilege, err := repo.FindWithHistory(ctx, "Test Max")
	require.NoError(t, err)
	for _, entry := range privilege.History {
		assert.GreaterOrEqual(t, entry.BalanceDiff, 0)
	}

	require.Len(t, privilege.History, 1)
	assert.Equal(t, "DEBIT_THE_ACCOUNT", privilege.History[0].OperationType)
}
