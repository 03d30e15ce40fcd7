package service

import (
	"errors"
	"time"

	"butce/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GoalService handles saving-goal contributions. The goal's current
// amount is written only here, so it always equals the contribution sum.
// A contribution spends from the savings fund with a zero floor; deleting
// one credits the fund back and decrements the goal by the same amount.
type GoalService struct {
	db     *gorm.DB
	ledger *Ledger
}

// NewGoalService creates the service.
func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db, ledger: NewLedger(db)}
}

// AddContribution appends a contribution to an owned goal.
func (s *GoalService) AddContribution(userID, goalID uint, amount decimal.Decimal, date time.Time, description string) (*models.SavingContribution, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var contribution models.SavingContribution
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var goal models.SavingGoal
		err := tx.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
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
		DebitClamped(settings, models.FundSavings, amount)
		if err := s.ledger.SaveFunds(tx, settings); err != nil {
			return err
		}

		contribution = models.SavingContribution{
			SavingGoalID:     goalID,
			Amount:           amount,
			ContributionDate: date,
			Description:      description,
		}
		if err := tx.Create(&contribution).Error; err != nil {
			return err
		}

		return tx.Model(&models.SavingGoal{}).
			Where("id = ?", goalID).
			Update("current_amount", goal.CurrentAmount.Add(amount)).Error
	})
	if err != nil {
		return nil, err
	}
	return &contribution, nil
}

// DeleteContribution removes a contribution, credits the savings fund
// back and decrements the goal's current amount by the exact same value.
func (s *GoalService) DeleteContribution(userID, goalID, contributionID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var goal models.SavingGoal
		err := tx.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var contribution models.SavingContribution
		err = tx.Where("id = ? AND saving_goal_id = ?", contributionID, goalID).First(&contribution).Error
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
		if err := Credit(settings, models.FundSavings, contribution.Amount); err != nil {
			return err
		}
		if err := s.ledger.SaveFunds(tx, settings); err != nil {
			return err
		}

		next := goal.CurrentAmount.Sub(contribution.Amount)
		if next.IsNegative() {
			next = decimal.Zero
		}
		if err := tx.Model(&models.SavingGoal{}).
			Where("id = ?", goalID).
			Update("current_amount", next).Error; err != nil {
			return err
		}
		return tx.Delete(&contribution).Error
	})
}
