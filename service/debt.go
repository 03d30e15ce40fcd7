package service

import (
	"errors"
	"sort"
	"time"

	"butce/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DebtService handles installment payments. A payment spends from the
// debt fund (zero floor, the fund is a planning bucket and payments made
// with outside money are still recorded); deleting a payment credits the
// fund back.
type DebtService struct {
	db     *gorm.DB
	ledger *Ledger
}

// NewDebtService creates the service.
func NewDebtService(db *gorm.DB) *DebtService {
	return &DebtService{db: db, ledger: NewLedger(db)}
}

// AddPayment appends a payment to an owned debt and debits the debt fund.
func (s *DebtService) AddPayment(userID, debtID uint, amount decimal.Decimal, date time.Time) (*models.Payment, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var payment models.Payment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var debt models.Debt
		err := tx.Where("id = ? AND user_id = ?", debtID, userID).First(&debt).Error
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
		DebitClamped(settings, models.FundDebt, amount)
		if err := s.ledger.SaveFunds(tx, settings); err != nil {
			return err
		}

		payment = models.Payment{
			DebtID:      debtID,
			Amount:      amount,
			PaymentDate: date,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// DeletePayment removes a payment and credits its amount back to the
// debt fund.
func (s *DebtService) DeletePayment(userID, debtID, paymentID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var debt models.Debt
		err := tx.Where("id = ? AND user_id = ?", debtID, userID).First(&debt).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var payment models.Payment
		err = tx.Where("id = ? AND debt_id = ?", paymentID, debtID).First(&payment).Error
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
		if err := Credit(settings, models.FundDebt, payment.Amount); err != nil {
			return err
		}
		if err := s.ledger.SaveFunds(tx, settings); err != nil {
			return err
		}
		return tx.Delete(&payment).Error
	})
}

// SortDebts orders debts by the configured payoff strategy: snowball
// pays the smallest remaining balance first, avalanche attacks the
// largest debt first.
func SortDebts(debts []models.Debt, strategy models.DebtStrategy) {
	less := func(a, b *models.Debt) bool {
		return a.Remaining().LessThan(b.Remaining())
	}
	if strategy == models.StrategyAvalanche {
		less = func(a, b *models.Debt) bool {
			return a.TotalAmount.GreaterThan(b.TotalAmount)
		}
	}
	sort.SliceStable(debts, func(i, j int) bool {
		return less(&debts[i], &debts[j])
	})
}
