//go:build unit

package domain_test

import (
	"testing"

	"avia-booking/internal/bonus/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_DebitNeverOverdraws(t *testing.T) {
	cases := []struct {
		name        string
		balance     int
		price       int
		wantPaid    int
		wantDiff    int
	}{
		{name: "balance covers price", balance: 500, price: 300, wantPaid: 300, wantDiff: -300},
		{name: "price exceeds balance", balance: 100, price: 300, wantPaid: 100, wantDiff: -100},
		{name: "exact balance", balance: 300, price: 300, wantPaid: 300, wantDiff: -300},
		{name: "empty balance", balance: 0, price: 300, wantPaid: 0, wantDiff: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			op, err := domain.Calculate(tc.balance, tc.price, true)
			require.NoError(t, err)

			assert.Equal(t, tc.wantPaid, op.PaidByBonuses)
			assert.Equal(t, tc.wantDiff, op.BalanceDiff)
			assert.Equal(t, domain.OpDebitTheAccount, op.Type)
			assert.GreaterOrEqual(t, tc.balance+op.BalanceDiff, 0, "debit must not overdraw")
		})
	}
}

func TestCalculate_CashbackIsTenPercentFloored(t *testing.T) {
	cases := []struct {
		price    int
		wantDiff int
	}{
		{price: 100, wantDiff: 10},
		{price: 1500, wantDiff: 150},
		{price: 99, wantDiff: 9},
		{price: 9, wantDiff: 0},
	}

	for _, tc := range cases {
		op, err := domain.Calculate(0, tc.price, false)
		require.NoError(t, err)

		assert.Equal(t, tc.wantDiff, op.BalanceDiff)
		assert.Zero(t, op.PaidByBonuses)
		assert.Equal(t, domain.OpFillInBalance, op.Type)
	}
}

func TestCalculate_RejectsNonPositivePrice(t *testing.T) {
	for _, price := range []int{0, -100} {
		_, err := domain.Calculate(500, price, true)
		assert.ErrorIs(t, err, domain.ErrNonPositivePrice)
	}
}

func TestOperation_MagnitudeIsNonNegative(t *testing.T) {
	debit, err := domain.Calculate(500, 300, true)
	require.NoError(t, err)
	credit, err := domain.Calculate(500, 300, false)
	require.NoError(t, err)

	assert.Equal(t, 300, debit.Magnitude())
	assert.Equal(t, 30, credit.Magnitude())
}

func TestHistoryEntry_SignedDiff(t *testing.T) {
	debit := domain.HistoryEntry{BalanceDiff: 120, OperationType: domain.OpDebitTheAccount}
	credit := domain.HistoryEntry{BalanceDiff: 45, OperationType: domain.OpFillInBalance}

	assert.Equal(t, -120, debit.SignedDiff())
	assert.Equal(t, 45, credit.SignedDiff())
}
