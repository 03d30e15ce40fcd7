package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSplit(t *testing.T) {
	// 1000 at 30/20 -> 300 / 200 / 500
	split := ComputeSplit(decimal.NewFromInt(1000), decimal.NewFromInt(30), decimal.NewFromInt(20))
	assert.True(t, split.DebtAmount.Equal(decimal.NewFromInt(300)))
	assert.True(t, split.SavingsAmount.Equal(decimal.NewFromInt(200)))
	assert.True(t, split.RemainderAmount.Equal(decimal.NewFromInt(500)))
}

func TestComputeSplitSumsExactly(t *testing.T) {
	cases := []struct {
		amount  string
		debtPct string
		savPct  string
	}{
		{"1000", "30", "20"},
		{"999.99", "33.33", "33.33"},
		{"0.01", "50", "50"},
		{"123.45", "17.5", "12.5"},
		{"1000", "0", "0"},
		{"1000", "100", "0"},
	}
	for _, tc := range cases {
		amount := decimal.RequireFromString(tc.amount)
		split := ComputeSplit(amount,
			decimal.RequireFromString(tc.debtPct),
			decimal.RequireFromString(tc.savPct))
		sum := split.DebtAmount.Add(split.SavingsAmount).Add(split.RemainderAmount)
		assert.True(t, sum.Equal(amount),
			"split of %s at %s/%s must sum back exactly, got %s", tc.amount, tc.debtPct, tc.savPct, sum)
	}
}

func TestComputeSplitOverHundredPercent(t *testing.T) {
	// percentages summing past 100 are allowed; the remainder goes negative
	split := ComputeSplit(decimal.NewFromInt(100), decimal.NewFromInt(70), decimal.NewFromInt(50))
	assert.True(t, split.DebtAmount.Equal(decimal.NewFromInt(70)))
	assert.True(t, split.SavingsAmount.Equal(decimal.NewFromInt(50)))
	assert.True(t, split.RemainderAmount.Equal(decimal.NewFromInt(-20)))
}

func TestDistribute(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `user_settings` .*FOR UPDATE").
		WillReturnRows(settingsRow(sqlmockRows(settingsColumns()), "0.00", "0.00", "0.00"))
	mock.ExpectExec("INSERT INTO `incomes`").
		WillReturnResult(resultOK(1))
	mock.ExpectExec("UPDATE `user_settings`").
		WillReturnResult(resultOK(1))
	mock.ExpectExec("INSERT INTO `transfers`").
		WillReturnResult(resultOK(2))
	mock.ExpectCommit()

	svc := NewDistributionService(db)
	income, err := svc.Distribute(1, IncomeInput{
		Description: "Maaş",
		Amount:      decimal.NewFromInt(1000),
		IncomeDate:  time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local),
		Category:    "salary",
	})
	require.NoError(t, err)

	// percentages in force are snapshotted on the income
	assert.True(t, income.DebtPercentage.Equal(decimal.NewFromInt(30)))
	assert.True(t, income.SavingsPercentage.Equal(decimal.NewFromInt(20)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDistributeRejectsNonPositiveAmount(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	svc := NewDistributionService(db)
	_, err := svc.Distribute(1, IncomeInput{Amount: decimal.Zero, IncomeDate: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidAmount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteIncomeReversesDistribution(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	incomeDate := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	incomeColumns := []string{
		"id", "user_id", "description", "amount", "income_date", "category",
		"monthly_repeat", "debt_percentage", "savings_percentage",
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(sqlmockRows(incomeColumns).
			AddRow(7, 1, "Maaş", "1000.00", incomeDate, "salary", false, "30.00", "20.00"))
	// buckets hold exactly the distributed amounts
	mock.ExpectQuery("SELECT .* FROM `user_settings` .*FOR UPDATE").
		WillReturnRows(settingsRow(sqlmockRows(settingsColumns()), "500.00", "300.00", "200.00"))
	mock.ExpectExec("UPDATE `user_settings`").
		WithArgs("0", "0", "0", sqlmock.AnyArg(), 1).
		WillReturnResult(resultOK(1))
	mock.ExpectExec("DELETE FROM `transfers`").
		WillReturnResult(resultOK(2))
	// soft delete of the income row
	mock.ExpectExec("UPDATE `incomes`").
		WillReturnResult(resultOK(1))
	mock.ExpectCommit()

	svc := NewDistributionService(db)
	require.NoError(t, svc.DeleteIncome(1, 7))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteIncomeNotFound(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(sqlmockRows([]string{"id"}))
	mock.ExpectRollback()

	svc := NewDistributionService(db)
	assert.ErrorIs(t, svc.DeleteIncome(1, 99), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
