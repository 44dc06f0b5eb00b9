//go:build integration

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func CreatePrivilege(t *testing.T, db DBLike, username string, balance int, status string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO privilege (username, balance, status) VALUES ($1, $2, $3) RETURNING id",
		username, balance, status).Scan(&id)
	require.NoError(t, err)
	return id
}

func InsertHistory(t *testing.T, db DBLike, privilegeID int64, ticketUID uuid.UUID, diff int, opType string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO privilege_history (privilege_id, ticket_uid, datetime, balance_diff, operation_type) VALUES ($1, $2, $3, $4, $5)",
		privilegeID, ticketUID, time.Now(), diff, opType)
	require.NoError(t, err)
}

func CreateTicket(t *testing.T, db DBLike, username, flightNumber string, price int, status string) uuid.UUID {
	t.Helper()

	ticketUID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO ticket (ticket_uid, username, flight_number, price, status) VALUES ($1, $2, $3, $4, $5)",
		ticketUID, username, flightNumber, price, status)
	require.NoError(t, err)
	return ticketUID
}

func PrivilegeBalance(t *testing.T, db DBLike, username string) int {
	t.Helper()

	var balance int
	err := db.QueryRow(context.Background(),
		"SELECT balance FROM privilege WHERE username = $1", username).Scan(&balance)
	require.NoError(t, err)
	return balance
}

func HistoryCount(t *testing.T, db DBLike, ticketUID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM privilege_history WHERE ticket_uid = $1", ticketUID).Scan(&count)
	require.NoError(t, err)
	return count
}
