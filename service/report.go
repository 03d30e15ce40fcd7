package service

import "github.com/shopspring/decimal"

// Summary ratios. All inputs are lifetime totals; callers decide the
// window by what they sum.

// DebtToIncomeRatio returns remaining debt over total income, zero when
// there is no income.
func DebtToIncomeRatio(totalDebtRemaining, totalIncome decimal.Decimal) decimal.Decimal {
	if !totalIncome.IsPositive() {
		return decimal.Zero
	}
	if totalDebtRemaining.IsNegative() {
		return decimal.Zero
	}
	return totalDebtRemaining.Div(totalIncome).Round(4)
}

// SavingsRate returns saved money over total income, zero when there is
// no income.
func SavingsRate(totalSaved, totalIncome decimal.Decimal) decimal.Decimal {
	if !totalIncome.IsPositive() {
		return decimal.Zero
	}
	if totalSaved.IsNegative() {
		return decimal.Zero
	}
	return totalSaved.Div(totalIncome).Round(4)
}

var (
	pointTwoFive = decimal.NewFromFloat(0.25)
	sixty        = decimal.NewFromInt(60)
	forty        = decimal.NewFromInt(40)
)

// HealthScore condenses the two ratios into 0..100. Debt load costs up
// to 60 points (linear, saturating at a debt-to-income ratio of 1);
// saving less than 25% of income costs up to 40 points (linear down to
// zero savings).
func HealthScore(debtToIncome, savingsRate decimal.Decimal) int {
	if debtToIncome.GreaterThan(decimal.NewFromInt(1)) {
		debtToIncome = decimal.NewFromInt(1)
	}
	if debtToIncome.IsNegative() {
		debtToIncome = decimal.Zero
	}
	if savingsRate.GreaterThan(pointTwoFive) {
		savingsRate = pointTwoFive
	}
	if savingsRate.IsNegative() {
		savingsRate = decimal.Zero
	}

	debtPenalty := debtToIncome.Mul(sixty)
	savingsPenalty := pointTwoFive.Sub(savingsRate).Div(pointTwoFive).Mul(forty)

	score := decimal.NewFromInt(100).Sub(debtPenalty).Sub(savingsPenalty)
	if score.IsNegative() {
		return 0
	}
	return int(score.Round(0).IntPart())
}

// PayoffProjectionMonths estimates how many months of the given monthly
// debt budget it takes to clear the remaining debt. Returns 0 when
// nothing remains and -1 when the budget is zero (never pays off).
func PayoffProjectionMonths(totalRemaining, monthlyBudget decimal.Decimal) int {
	if !totalRemaining.IsPositive() {
		return 0
	}
	if !monthlyBudget.IsPositive() {
		return -1
	}
	months := totalRemaining.Div(monthlyBudget).Ceil()
	return int(months.IntPart())
}
