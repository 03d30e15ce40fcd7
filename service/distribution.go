package service

import (
	"errors"
	"time"

	"butce/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Auto-generated journal descriptions for distribution credits.
const (
	AutoDebtDescription    = "Otomatik borç fonu dağıtımı"
	AutoSavingsDescription = "Otomatik birikim fonu dağıtımı"
)

var oneHundred = decimal.NewFromInt(100)

// Split is the three-way division of an income amount.
type Split struct {
	DebtAmount      decimal.Decimal `json:"debt_amount"`
	SavingsAmount   decimal.Decimal `json:"savings_amount"`
	RemainderAmount decimal.Decimal `json:"remainder_amount"`
}

// ComputeSplit divides amount by the given percentages. Debt and savings
// parts are rounded to currency precision; the remainder is derived by
// subtraction so the three parts always sum back to amount exactly. When
// the percentages sum past 100 the remainder goes negative; that is
// applied as computed, not clamped.
func ComputeSplit(amount, debtPct, savingsPct decimal.Decimal) Split {
	debt := amount.Mul(debtPct).Div(oneHundred).Round(2)
	savings := amount.Mul(savingsPct).Div(oneHundred).Round(2)
	return Split{
		DebtAmount:      debt,
		SavingsAmount:   savings,
		RemainderAmount: amount.Sub(debt).Sub(savings),
	}
}

// IncomeInput is what the API collects to record an income.
type IncomeInput struct {
	Description    string
	Amount         decimal.Decimal
	IncomeDate     time.Time
	Category       string
	MonthlyRepeat  bool
	NextIncomeDate *time.Time
}

// DistributionService records incomes, splits them across the fund
// buckets and journals the automatic transfers, all in one transaction.
type DistributionService struct {
	db     *gorm.DB
	ledger *Ledger
}

// NewDistributionService creates the service.
func NewDistributionService(db *gorm.DB) *DistributionService {
	return &DistributionService{db: db, ledger: NewLedger(db)}
}

// Distribute creates the income row and applies its split to the ledger.
// The percentages in force are snapshotted onto the income so deletion
// can reverse exactly what was applied.
func (s *DistributionService) Distribute(userID uint, in IncomeInput) (*models.Income, error) {
	if !in.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var income models.Income
	err := s.db.Transaction(func(tx *gorm.DB) error {
		settings, err := s.ledger.LockSettings(tx, userID)
		if err != nil {
			return err
		}

		split := ComputeSplit(in.Amount, settings.DebtPercentage, settings.SavingsPercentage)

		income = models.Income{
			UserID:            userID,
			Description:       in.Description,
			Amount:            in.Amount,
			IncomeDate:        in.IncomeDate,
			Category:          in.Category,
			MonthlyRepeat:     in.MonthlyRepeat,
			NextIncomeDate:    in.NextIncomeDate,
			DebtPercentage:    settings.DebtPercentage,
			SavingsPercentage: settings.SavingsPercentage,
		}
		if err := tx.Create(&income).Error; err != nil {
			return err
		}

		// remainder is credited as computed, negative included
		settings.Balance = settings.Balance.Add(split.RemainderAmount)

		var journal []models.Transfer
		if split.DebtAmount.IsPositive() {
			if err := Credit(settings, models.FundDebt, split.DebtAmount); err != nil {
				return err
			}
			journal = append(journal, models.Transfer{
				UserID:       userID,
				FromFund:     models.FundBalance,
				ToFund:       models.FundDebt,
				Amount:       split.DebtAmount,
				Description:  AutoDebtDescription,
				TransferType: models.TransferAutomatic,
			})
		}
		if split.SavingsAmount.IsPositive() {
			if err := Credit(settings, models.FundSavings, split.SavingsAmount); err != nil {
				return err
			}
			journal = append(journal, models.Transfer{
				UserID:       userID,
				FromFund:     models.FundBalance,
				ToFund:       models.FundSavings,
				Amount:       split.SavingsAmount,
				Description:  AutoSavingsDescription,
				TransferType: models.TransferAutomatic,
			})
		}

		if err := s.ledger.SaveFunds(tx, settings); err != nil {
			return err
		}
		if len(journal) > 0 {
			if err := tx.Create(&journal).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &income, nil
}

// DeleteIncome removes an income and reverses its distribution effect:
// the split is recomputed from the snapshotted percentages and debited
// with a zero floor, and automatic transfers journaled on the income's
// calendar day are removed (best effort, date-bucketed).
func (s *DistributionService) DeleteIncome(userID, incomeID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var income models.Income
		err := tx.Where("id = ? AND user_id = ?", incomeID, userID).First(&income).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		settings, err := s.ledger.LockSettings(tx, userID)
		if err != nil {
			return err
		}

		split := ComputeSplit(income.Amount, income.DebtPercentage, income.SavingsPercentage)

		settings.Balance = settings.Balance.Sub(split.RemainderAmount)
		if settings.Balance.IsNegative() {
			settings.Balance = decimal.Zero
		}
		DebitClamped(settings, models.FundDebt, split.DebtAmount)
		DebitClamped(settings, models.FundSavings, split.SavingsAmount)

		if err := s.ledger.SaveFunds(tx, settings); err != nil {
			return err
		}

		dayStart := time.Date(
			income.IncomeDate.Year(), income.IncomeDate.Month(), income.IncomeDate.Day(),
			0, 0, 0, 0, income.IncomeDate.Location(),
		)
		dayEnd := dayStart.Add(24 * time.Hour)
		if err := tx.Where(
			"user_id = ? AND transfer_type = ? AND created_at >= ? AND created_at < ?",
			userID, models.TransferAutomatic, dayStart, dayEnd,
		).Delete(&models.Transfer{}).Error; err != nil {
			return err
		}

		return tx.Delete(&income).Error
	})
}
