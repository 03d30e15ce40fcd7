package api

import (
	"time"

	"butce/database"
	"butce/middleware"
	"butce/models"
	"butce/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SummaryHandler serves the financial overview.
type SummaryHandler struct{}

// NewSummaryHandler creates the handler.
func NewSummaryHandler() *SummaryHandler {
	return &SummaryHandler{}
}

// SummaryResponse is the overview payload.
type SummaryResponse struct {
	Balance           decimal.Decimal `json:"balance"`
	DebtFund          decimal.Decimal `json:"debt_fund"`
	SavingsFund       decimal.Decimal `json:"savings_fund"`
	TotalIncome       decimal.Decimal `json:"total_income"`
	MonthlyIncome     decimal.Decimal `json:"monthly_income"`
	TotalDebt         decimal.Decimal `json:"total_debt"`
	RemainingDebt     decimal.Decimal `json:"remaining_debt"`
	TotalSaved        decimal.Decimal `json:"total_saved"`
	ActiveDebts       int             `json:"active_debts"`
	ActiveGoals       int             `json:"active_goals"`
	DebtToIncome      decimal.Decimal `json:"debt_to_income"`
	SavingsRate       decimal.Decimal `json:"savings_rate"`
	HealthScore       int             `json:"health_score"`
	PayoffMonths      int             `json:"payoff_months"`
	DebtStrategy      string          `json:"debt_strategy"`
	DebtPercentage    decimal.Decimal `json:"debt_percentage"`
	SavingsPercentage decimal.Decimal `json:"savings_percentage"`
}

// Get returns fund balances, lifetime totals and the derived health
// ratios. The payoff projection budgets the configured debt percentage
// of the current month's income.
// @Summary Financial summary
// @Tags summary
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=SummaryResponse}
// @Failure 401 {object} Response
// @Router /api/v1/summary [get]
func (h *SummaryHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	settings, err := service.NewLedger(database.DB).EnsureSettings(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Özet yüklenemedi"))
		return
	}

	var totalIncome decimal.Decimal
	row := database.DB.Model(&models.Income{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").Row()
	if err := row.Scan(&totalIncome); err != nil {
		InternalError(c, SafeErrorMessage(err, "Özet yüklenemedi"))
		return
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	var monthlyIncome decimal.Decimal
	row = database.DB.Model(&models.Income{}).
		Where("user_id = ? AND income_date >= ?", userID, monthStart).
		Select("COALESCE(SUM(amount), 0)").Row()
	if err := row.Scan(&monthlyIncome); err != nil {
		InternalError(c, SafeErrorMessage(err, "Özet yüklenemedi"))
		return
	}

	var debts []models.Debt
	if err := database.DB.Preload("Payments").
		Where("user_id = ?", userID).Find(&debts).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Özet yüklenemedi"))
		return
	}
	totalDebt := decimal.Zero
	remainingDebt := decimal.Zero
	activeDebts := 0
	for i := range debts {
		totalDebt = totalDebt.Add(debts[i].TotalAmount)
		remainingDebt = remainingDebt.Add(debts[i].Remaining())
		if !debts[i].IsPaidOff() {
			activeDebts++
		}
	}

	var goals []models.SavingGoal
	if err := database.DB.Where("user_id = ?", userID).Find(&goals).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Özet yüklenemedi"))
		return
	}
	totalSaved := decimal.Zero
	activeGoals := 0
	for i := range goals {
		totalSaved = totalSaved.Add(goals[i].CurrentAmount)
		if goals[i].CurrentAmount.LessThan(goals[i].TargetAmount) {
			activeGoals++
		}
	}
	totalSaved = totalSaved.Add(settings.SavingsFund)

	dti := service.DebtToIncomeRatio(remainingDebt, totalIncome)
	sr := service.SavingsRate(totalSaved, totalIncome)
	monthlyBudget := monthlyIncome.Mul(settings.DebtPercentage).Div(decimal.NewFromInt(100)).Round(2)

	Success(c, SummaryResponse{
		Balance:           settings.Balance,
		DebtFund:          settings.DebtFund,
		SavingsFund:       settings.SavingsFund,
		TotalIncome:       totalIncome,
		MonthlyIncome:     monthlyIncome,
		TotalDebt:         totalDebt,
		RemainingDebt:     remainingDebt,
		TotalSaved:        totalSaved,
		ActiveDebts:       activeDebts,
		ActiveGoals:       activeGoals,
		DebtToIncome:      dti,
		SavingsRate:       sr,
		HealthScore:       service.HealthScore(dti, sr),
		PayoffMonths:      service.PayoffProjectionMonths(remainingDebt, monthlyBudget),
		DebtStrategy:      string(settings.DebtStrategy),
		DebtPercentage:    settings.DebtPercentage,
		SavingsPercentage: settings.SavingsPercentage,
	})
}
