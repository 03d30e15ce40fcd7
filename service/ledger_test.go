package service

import (
	"testing"

	"butce/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings(balance, debtFund, savingsFund int64) *models.UserSettings {
	s := models.DefaultSettings(1)
	s.Balance = decimal.NewFromInt(balance)
	s.DebtFund = decimal.NewFromInt(debtFund)
	s.SavingsFund = decimal.NewFromInt(savingsFund)
	return &s
}

func totalFunds(s *models.UserSettings) decimal.Decimal {
	return s.Balance.Add(s.DebtFund).Add(s.SavingsFund)
}

func TestCredit(t *testing.T) {
	s := testSettings(100, 0, 0)

	require.NoError(t, Credit(s, models.FundDebt, decimal.NewFromInt(50)))
	assert.True(t, s.DebtFund.Equal(decimal.NewFromInt(50)))

	assert.ErrorIs(t, Credit(s, models.FundDebt, decimal.Zero), ErrInvalidAmount)
	assert.ErrorIs(t, Credit(s, models.FundDebt, decimal.NewFromInt(-5)), ErrInvalidAmount)
	assert.ErrorIs(t, Credit(s, models.Fund("piggy_bank"), decimal.NewFromInt(5)), ErrInvalidFund)
}

func TestDebit(t *testing.T) {
	s := testSettings(100, 30, 0)

	require.NoError(t, Debit(s, models.FundBalance, decimal.NewFromInt(40)))
	assert.True(t, s.Balance.Equal(decimal.NewFromInt(60)))

	// exact drain allowed, one cent past it refused
	require.NoError(t, Debit(s, models.FundDebt, decimal.NewFromInt(30)))
	assert.True(t, s.DebtFund.IsZero())
	assert.ErrorIs(t, Debit(s, models.FundDebt, decimal.NewFromFloat(0.01)), ErrInsufficientFunds)

	// failed debit leaves the bucket unchanged
	assert.ErrorIs(t, Debit(s, models.FundBalance, decimal.NewFromInt(1000)), ErrInsufficientFunds)
	assert.True(t, s.Balance.Equal(decimal.NewFromInt(60)))
}

func TestDebitClamped(t *testing.T) {
	s := testSettings(0, 30, 0)

	DebitClamped(s, models.FundDebt, decimal.NewFromInt(100))
	assert.True(t, s.DebtFund.IsZero())

	s.DebtFund = decimal.NewFromInt(30)
	DebitClamped(s, models.FundDebt, decimal.NewFromInt(10))
	assert.True(t, s.DebtFund.Equal(decimal.NewFromInt(20)))
}

func TestMoveConservation(t *testing.T) {
	s := testSettings(500, 300, 200)
	before := totalFunds(s)

	require.NoError(t, Move(s, models.FundBalance, models.FundSavings, decimal.NewFromInt(150)))
	assert.True(t, s.Balance.Equal(decimal.NewFromInt(350)))
	assert.True(t, s.SavingsFund.Equal(decimal.NewFromInt(350)))
	assert.True(t, totalFunds(s).Equal(before), "transfer must conserve total funds")

	// inverse restores both buckets
	require.NoError(t, Move(s, models.FundSavings, models.FundBalance, decimal.NewFromInt(150)))
	assert.True(t, s.Balance.Equal(decimal.NewFromInt(500)))
	assert.True(t, s.SavingsFund.Equal(decimal.NewFromInt(200)))
}

func TestMoveValidation(t *testing.T) {
	s := testSettings(500, 300, 200)

	assert.ErrorIs(t, Move(s, models.FundDebt, models.FundDebt, decimal.NewFromInt(10)), ErrSameFund)
	assert.ErrorIs(t, Move(s, models.Fund("x"), models.FundDebt, decimal.NewFromInt(10)), ErrInvalidFund)
	assert.ErrorIs(t, Move(s, models.FundDebt, models.FundBalance, decimal.NewFromInt(10000)), ErrInsufficientFunds)

	// failed move changes nothing
	assert.True(t, s.Balance.Equal(decimal.NewFromInt(500)))
	assert.True(t, s.DebtFund.Equal(decimal.NewFromInt(300)))
	assert.True(t, s.SavingsFund.Equal(decimal.NewFromInt(200)))
}
