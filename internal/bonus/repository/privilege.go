package repository

import (
	"context"
	"errors"
	"log/slog"

	"avia-booking/internal/bonus/domain"
	"avia-booking/internal/bonus/usecase"
	"avia-booking/internal/infra"
	"avia-booking/internal/pkg/clock"
	"avia-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PrivilegeRepository struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func NewPrivilegeRepository(pool *pgxpool.Pool, clock clock.Clock) usecase.PrivilegeRepository {
	return &PrivilegeRepository{pool: pool, clock: clock}
}

func (r *PrivilegeRepository) FindWithHistory(ctx context.Context, username string) (*usecase.PrivilegeRM, error) {
	var (
		privilegeID int64
		balance     int
		status      string
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, balance, status FROM privilege WHERE username = $1`,
		username,
	).Scan(&privilegeID, &balance, &status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("privilege not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find privilege", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT ticket_uid, datetime, balance_diff, operation_type
		 FROM privilege_history
		 WHERE privilege_id = $1
		 ORDER BY id`,
		privilegeID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load privilege history", err)
	}
	defer rows.Close()

	history := make([]usecase.HistoryEntryRM, 0)
	for rows.Next() {
		var (
			ticketUID pgtype.UUID
			at        pgtype.Timestamptz
			diff      int
			opType    string
		)
		if err := rows.Scan(&ticketUID, &at, &diff, &opType); err != nil {
			return nil, infra.WrapRepoErr("failed to scan history entry", err)
		}
		history = append(history, usecase.HistoryEntryRM{
			Date:          pgconv.TimeFromPgtype(at),
			TicketUID:     pgconv.UUIDFromPgtype(ticketUID),
			BalanceDiff:   diff,
			OperationType: opType,
		})
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate history", rows.Err())
	}

	return &usecase.PrivilegeRM{Balance: balance, Status: status, History: history}, nil
}

func (r *PrivilegeRepository) ApplyOperation(ctx context.Context, username string, ticketUID uuid.UUID, price int, paidFromBalance bool) (*usecase.OperationResultRM, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer rollbackQuietly(ctx, tx)

	privilege, err := lockPrivilege(ctx, tx, username)
	if err != nil {
		return nil, err
	}

	op, err := domain.Calculate(privilege.Balance, price, paidFromBalance)
	if err != nil {
		return nil, err
	}

	var (
		newBalance int
		status     string
	)
	err = tx.QueryRow(ctx,
		`UPDATE privilege SET balance = balance + $1 WHERE id = $2 RETURNING balance, status`,
		op.BalanceDiff, privilege.ID,
	).Scan(&newBalance, &status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update balance", err)
	}

	if err := insertHistory(ctx, tx, privilege.ID, ticketUID, op.Magnitude(), string(op.Type), r.clock); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit bonus operation", err)
	}

	return &usecase.OperationResultRM{
		PaidByBonuses: op.PaidByBonuses,
		BalanceDiff:   op.BalanceDiff,
		Balance:       newBalance,
		Status:        status,
	}, nil
}

func (r *PrivilegeRepository) ReverseOperation(ctx context.Context, username string, ticketUID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer rollbackQuietly(ctx, tx)

	var (
		privilegeID int64
		balance     int
	)
	err = tx.QueryRow(ctx,
		`SELECT id, balance FROM privilege WHERE username = $1 FOR UPDATE`,
		username,
	).Scan(&privilegeID, &balance)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("privilege not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock privilege", err)
	}

	rows, err := tx.Query(ctx,
		`SELECT balance_diff, operation_type FROM privilege_history
		 WHERE privilege_id = $1 AND ticket_uid = $2`,
		privilegeID, pgconv.UUIDToPgtype(ticketUID),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to load ticket history", err)
	}

	net := 0
	entries := 0
	for rows.Next() {
		var entry domain.HistoryEntry
		var opType string
		if err := rows.Scan(&entry.BalanceDiff, &opType); err != nil {
			rows.Close()
			return infra.WrapRepoErr("failed to scan history entry", err)
		}
		entry.OperationType = domain.OperationType(opType)
		net += entry.SignedDiff()
		entries++
	}
	rows.Close()
	if rows.Err() != nil {
		return infra.WrapRepoErr("failed to iterate ticket history", rows.Err())
	}

	if entries == 0 {
		return infra.WrapRepoErr("no history for ticket", nil, infra.KindNotFound)
	}

	// Compensating entries count toward the net, so reversing an already
	// reversed ticket is a no-op.
	inverse := -net
	if inverse == 0 {
		return tx.Commit(ctx)
	}
	// The invariant balance >= 0 wins over exact reversal: a debit larger
	// than the current balance is capped.
	if balance+inverse < 0 {
		inverse = -balance
	}

	opType := domain.OpFillInBalance
	magnitude := inverse
	if inverse < 0 {
		opType = domain.OpDebitTheAccount
		magnitude = -inverse
	}

	_, err = tx.Exec(ctx,
		`UPDATE privilege SET balance = balance + $1 WHERE id = $2`,
		inverse, privilegeID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to reverse balance", err)
	}

	if err := insertHistory(ctx, tx, privilegeID, ticketUID, magnitude, string(opType), r.clock); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit rollback", err)
	}

	return nil
}

// lockPrivilege provisions the row on first use and takes a row lock so
// concurrent operations for one username serialize.
func lockPrivilege(ctx context.Context, tx pgx.Tx, username string) (*domain.Privilege, error) {
	_, err := tx.Exec(ctx,
		`INSERT INTO privilege (username, status, balance) VALUES ($1, 'BRONZE', 0)
		 ON CONFLICT (username) DO NOTHING`,
		username,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to provision privilege", err)
	}

	privilege := &domain.Privilege{Username: username}
	var status string
	err = tx.QueryRow(ctx,
		`SELECT id, balance, status FROM privilege WHERE username = $1 FOR UPDATE`,
		username,
	).Scan(&privilege.ID, &privilege.Balance, &status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock privilege", err)
	}
	privilege.Status = domain.Status(status)

	return privilege, nil
}

func insertHistory(ctx context.Context, tx pgx.Tx, privilegeID int64, ticketUID uuid.UUID, magnitude int, opType string, clk clock.Clock) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO privilege_history (privilege_id, ticket_uid, datetime, balance_diff, operation_type)
		 VALUES ($1, $2, $3, $4, $5)`,
		privilegeID, pgconv.UUIDToPgtype(ticketUID), pgconv.TimeToPgtype(clk.Now()), magnitude, opType,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert history entry", err)
	}
	return nil
}

func rollbackQuietly(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("failed to rollback transaction", "error", err)
	}
}
