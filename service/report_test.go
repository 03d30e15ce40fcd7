package service

import (
	"testing"

	"butce/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDebtToIncomeRatio(t *testing.T) {
	assert.True(t, DebtToIncomeRatio(mustDecimal("3000"), mustDecimal("10000")).Equal(mustDecimal("0.3")))
	assert.True(t, DebtToIncomeRatio(mustDecimal("3000"), decimal.Zero).IsZero())
	assert.True(t, DebtToIncomeRatio(mustDecimal("-50"), mustDecimal("10000")).IsZero())
}

func TestSavingsRate(t *testing.T) {
	assert.True(t, SavingsRate(mustDecimal("2000"), mustDecimal("10000")).Equal(mustDecimal("0.2")))
	assert.True(t, SavingsRate(mustDecimal("2000"), decimal.Zero).IsZero())
}

func TestHealthScore(t *testing.T) {
	// no debt, saving a quarter of income: perfect score
	assert.Equal(t, 100, HealthScore(decimal.Zero, mustDecimal("0.25")))
	// no debt, no savings: only the savings penalty applies
	assert.Equal(t, 60, HealthScore(decimal.Zero, decimal.Zero))
	// fully indebted, no savings: floor
	assert.Equal(t, 0, HealthScore(decimal.NewFromInt(1), decimal.Zero))
	// ratios beyond the caps saturate instead of going negative
	assert.Equal(t, 0, HealthScore(decimal.NewFromInt(5), decimal.Zero))
	assert.Equal(t, 100, HealthScore(decimal.Zero, decimal.NewFromInt(1)))
	// mixed case: dti 0.5 costs 30, savings rate 0.125 costs 20
	assert.Equal(t, 50, HealthScore(mustDecimal("0.5"), mustDecimal("0.125")))
}

func TestPayoffProjectionMonths(t *testing.T) {
	assert.Equal(t, 0, PayoffProjectionMonths(decimal.Zero, mustDecimal("300")))
	assert.Equal(t, -1, PayoffProjectionMonths(mustDecimal("1200"), decimal.Zero))
	assert.Equal(t, 4, PayoffProjectionMonths(mustDecimal("1200"), mustDecimal("300")))
	// partial month rounds up
	assert.Equal(t, 5, PayoffProjectionMonths(mustDecimal("1201"), mustDecimal("300")))
}

func TestSortDebts(t *testing.T) {
	debts := []models.Debt{
		{ID: 1, Description: "kredi kartı", TotalAmount: mustDecimal("5000")},
		{ID: 2, Description: "araba", TotalAmount: mustDecimal("20000")},
		{ID: 3, Description: "telefon", TotalAmount: mustDecimal("1000")},
	}

	SortDebts(debts, models.StrategySnowball)
	assert.Equal(t, uint(3), debts[0].ID)
	assert.Equal(t, uint(2), debts[2].ID)

	SortDebts(debts, models.StrategyAvalanche)
	assert.Equal(t, uint(2), debts[0].ID)
	assert.Equal(t, uint(3), debts[2].ID)
}
