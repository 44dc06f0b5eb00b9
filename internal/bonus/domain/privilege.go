package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusBronze Status = "BRONZE"
	StatusSilver Status = "SILVER"
	StatusGold   Status = "GOLD"
)

type OperationType string

const (
	// OpFillInBalance credits cashback onto the account.
	OpFillInBalance OperationType = "FILL_IN_BALANCE"
	// OpDebitTheAccount spends balance toward a purchase.
	OpDebitTheAccount OperationType = "DEBIT_THE_ACCOUNT"
)

// CashbackPercent of the ticket price is credited when a purchase is paid
// with money.
const CashbackPercent = 10

var ErrNonPositivePrice = errors.New("price must be positive")

// Privilege is a user's loyalty account. Rows are created lazily on the
// first write operation and never deleted.
type Privilege struct {
	ID       int64
	Username string
	Balance  int
	Status   Status
}

// HistoryEntry is an append-only ledger record. BalanceDiff always holds
// the non-negative magnitude; the direction lives in OperationType.
type HistoryEntry struct {
	ID            int64
	PrivilegeID   int64
	TicketUID     uuid.UUID
	Timestamp     time.Time
	BalanceDiff   int
	OperationType OperationType
}

// Operation is the outcome of applying a bonus operation against a balance.
// BalanceDiff is signed; negative means a debit.
type Operation struct {
	PaidByBonuses int
	BalanceDiff   int
	Type          OperationType
}

// Calculate derives the bonus operation for a purchase. A debit never
// overdraws: at most the available balance is consumed and the shortfall is
// covered by money. A money purchase accrues floor(price * 10%) cashback.
func Calculate(balance, price int, paidFromBalance bool) (Operation, error) {
	if price <= 0 {
		return Operation{}, ErrNonPositivePrice
	}

	if paidFromBalance {
		paid := min(balance, price)
		return Operation{
			PaidByBonuses: paid,
			BalanceDiff:   -paid,
			Type:          OpDebitTheAccount,
		}, nil
	}

	return Operation{
		PaidByBonuses: 0,
		BalanceDiff:   price * CashbackPercent / 100,
		Type:          OpFillInBalance,
	}, nil
}

// Magnitude is the non-negative value persisted in the history ledger.
func (o Operation) Magnitude() int {
	if o.BalanceDiff < 0 {
		return -o.BalanceDiff
	}
	return o.BalanceDiff
}

// SignedDiff reconstructs the signed balance change of a persisted entry.
func (h HistoryEntry) SignedDiff() int {
	if h.OperationType == OpDebitTheAccount {
		return -h.BalanceDiff
	}
	return h.BalanceDiff
}
