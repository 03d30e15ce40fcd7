package service

import (
	"errors"

	"butce/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransferService handles user-initiated fund movements and their
// reversal. Validation and apply happen in one transaction with the
// settings row locked, so the sufficiency check is authoritative rather
// than a racy pre-check.
type TransferService struct {
	db     *gorm.DB
	ledger *Ledger
}

// NewTransferService creates the service.
func NewTransferService(db *gorm.DB) *TransferService {
	return &TransferService{db: db, ledger: NewLedger(db)}
}

// RequestTransfer validates and applies a manual transfer. Validation
// order is fixed: amount, fund choice, sufficiency. On any failure
// nothing is applied.
func (s *TransferService) RequestTransfer(userID uint, from, to models.Fund, amount decimal.Decimal, description string) (*models.Transfer, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if !from.Valid() || !to.Valid() {
		return nil, ErrInvalidFund
	}
	if from == to {
		return nil, ErrSameFund
	}

	var record models.Transfer
	err := s.db.Transaction(func(tx *gorm.DB) error {
		settings, err := s.ledger.LockSettings(tx, userID)
		if err != nil {
			return err
		}
		if err := Move(settings, from, to, amount); err != nil {
			return err
		}
		if err := s.ledger.SaveFunds(tx, settings); err != nil {
			return err
		}
		record = models.Transfer{
			UserID:       userID,
			FromFund:     from,
			ToFund:       to,
			Amount:       amount,
			Description:  description,
			TransferType: models.TransferManual,
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteTransfer removes a journal entry and replays its inverse against
// the ledger. When intervening activity drained the destination bucket
// below the original amount the inverse debit fails and the deletion is
// refused, leaving ledger and journal untouched.
func (s *TransferService) DeleteTransfer(userID, transferID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var record models.Transfer
		err := tx.Where("id = ? AND user_id = ?", transferID, userID).First(&record).Error
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
		if err := Move(settings, record.ToFund, record.FromFund, record.Amount); err != nil {
			return err
		}
		if err := s.ledger.SaveFunds(tx, settings); err != nil {
			return err
		}
		return tx.Delete(&record).Error
	})
}
