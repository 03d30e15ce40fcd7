package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserSettings holds the distribution percentages and the three fund
// buckets for one user. Created with defaults on first access, never
// deleted. The row doubles as the fund ledger: every mutating operation
// locks it for the duration of its transaction.
type UserSettings struct {
	ID                uint            `json:"id" gorm:"primaryKey"`
	UserID            uint            `json:"user_id" gorm:"uniqueIndex;not null"`
	DebtPercentage    decimal.Decimal `json:"debt_percentage" gorm:"type:decimal(5,2);not null"`
	SavingsPercentage decimal.Decimal `json:"savings_percentage" gorm:"type:decimal(5,2);not null"`
	DebtStrategy      DebtStrategy    `json:"debt_strategy" gorm:"size:20;not null;default:snowball"`
	Balance           decimal.Decimal `json:"balance" gorm:"type:decimal(12,2);not null"`
	DebtFund          decimal.Decimal `json:"debt_fund" gorm:"type:decimal(12,2);not null"`
	SavingsFund       decimal.Decimal `json:"savings_fund" gorm:"type:decimal(12,2);not null"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TableName sets the table name.
func (UserSettings) TableName() string {
	return "user_settings"
}

// FundBalance returns the current balance of the given fund.
func (s *UserSettings) FundBalance(f Fund) decimal.Decimal {
	switch f {
	case FundDebt:
		return s.DebtFund
	case FundSavings:
		return s.SavingsFund
	default:
		return s.Balance
	}
}

// SetFundBalance overwrites the balance of the given fund.
func (s *UserSettings) SetFundBalance(f Fund, v decimal.Decimal) {
	switch f {
	case FundDebt:
		s.DebtFund = v
	case FundSavings:
		s.SavingsFund = v
	default:
		s.Balance = v
	}
}

// DefaultSettings returns the settings a user starts with: 30% debt,
// 20% savings, snowball, all funds empty.
func DefaultSettings(userID uint) UserSettings {
	return UserSettings{
		UserID:            userID,
		DebtPercentage:    decimal.NewFromInt(30),
		SavingsPercentage: decimal.NewFromInt(20),
		DebtStrategy:      StrategySnowball,
		Balance:           decimal.Zero,
		DebtFund:          decimal.Zero,
		SavingsFund:       decimal.Zero,
	}
}
