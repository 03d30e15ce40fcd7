package service

import (
	"errors"

	"butce/config"
	"butce/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Ledger owns the three fund buckets stored on a user's settings row.
// Mutating operations load the row under FOR UPDATE inside the caller's
// transaction, change the in-memory value through the pure Credit/Debit/
// Move functions and persist the result once. The row lock is what makes
// overlapping requests from the same user serialize instead of losing
// updates.
type Ledger struct {
	db *gorm.DB
}

// NewLedger creates a ledger over the given database handle.
func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// defaultSettings builds a first-access settings row, honoring configured
// distribution defaults when present.
func defaultSettings(userID uint) models.UserSettings {
	s := models.DefaultSettings(userID)
	if cfg := config.GlobalConfig; cfg != nil {
		if cfg.Distribution.DefaultDebtPercentage > 0 {
			s.DebtPercentage = decimal.NewFromFloat(cfg.Distribution.DefaultDebtPercentage)
		}
		if cfg.Distribution.DefaultSavingsPercentage > 0 {
			s.SavingsPercentage = decimal.NewFromFloat(cfg.Distribution.DefaultSavingsPercentage)
		}
		if cfg.Distribution.DefaultStrategy != "" {
			s.DebtStrategy = models.DebtStrategy(cfg.Distribution.DefaultStrategy)
		}
	}
	return s
}

// EnsureSettings returns the user's settings row, creating it with
// defaults on first access.
func (l *Ledger) EnsureSettings(userID uint) (*models.UserSettings, error) {
	var s models.UserSettings
	err := l.db.Where("user_id = ?", userID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = defaultSettings(userID)
		if err := l.db.Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// LockSettings loads the user's settings row FOR UPDATE within tx,
// creating it first when the user has none yet.
func (l *Ledger) LockSettings(tx *gorm.DB, userID uint) (*models.UserSettings, error) {
	var s models.UserSettings
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = defaultSettings(userID)
		if err := tx.Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveFunds persists the three fund columns of a mutated settings value.
func (l *Ledger) SaveFunds(tx *gorm.DB, s *models.UserSettings) error {
	return tx.Model(&models.UserSettings{}).
		Where("id = ?", s.ID).
		Updates(map[string]interface{}{
			"balance":      s.Balance,
			"debt_fund":    s.DebtFund,
			"savings_fund": s.SavingsFund,
		}).Error
}

// Credit adds amount to the given fund. Amount must be positive.
func Credit(s *models.UserSettings, fund models.Fund, amount decimal.Decimal) error {
	if !fund.Valid() {
		return ErrInvalidFund
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	s.SetFundBalance(fund, s.FundBalance(fund).Add(amount))
	return nil
}

// Debit removes amount from the given fund. This is the authoritative
// non-negativity check: it fails with ErrInsufficientFunds rather than
// letting a bucket go below zero, regardless of what any UI pre-check
// concluded.
func Debit(s *models.UserSettings, fund models.Fund, amount decimal.Decimal) error {
	if !fund.Valid() {
		return ErrInvalidFund
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	current := s.FundBalance(fund)
	if amount.GreaterThan(current) {
		return ErrInsufficientFunds
	}
	s.SetFundBalance(fund, current.Sub(amount))
	return nil
}

// DebitClamped removes up to amount from the fund, flooring at zero.
// Only the explicitly forgiving reversal paths (income delete, payment
// add) use this; everything else goes through Debit.
func DebitClamped(s *models.UserSettings, fund models.Fund, amount decimal.Decimal) {
	if !fund.Valid() || !amount.IsPositive() {
		return
	}
	next := s.FundBalance(fund).Sub(amount)
	if next.IsNegative() {
		next = decimal.Zero
	}
	s.SetFundBalance(fund, next)
}

// Move transfers amount between two distinct funds, debit then credit;
// either both apply or neither does.
func Move(s *models.UserSettings, from, to models.Fund, amount decimal.Decimal) error {
	if !from.Valid() || !to.Valid() {
		return ErrInvalidFund
	}
	if from == to {
		return ErrSameFund
	}
	if err := Debit(s, from, amount); err != nil {
		return err
	}
	// credit cannot fail once the debit validated the amount
	return Credit(s, to, amount)
}
