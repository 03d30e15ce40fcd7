package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is a recorded income. Immutable once created except deletion,
// which reverses its distribution effect. DebtPercentage and
// SavingsPercentage are snapshotted at distribution time so the reversal
// uses the rates that were actually applied, not whatever the settings
// say later.
type Income struct {
	ID                uint            `json:"id" gorm:"primaryKey"`
	UserID            uint            `json:"user_id" gorm:"index;not null"`
	Description       string          `json:"description" gorm:"size:255"`
	Amount            decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	IncomeDate        time.Time       `json:"income_date" gorm:"not null"`
	Category          string          `json:"category" gorm:"size:50"`
	MonthlyRepeat     bool            `json:"monthly_repeat" gorm:"default:false"`
	NextIncomeDate    *time.Time      `json:"next_income_date,omitempty"`
	DebtPercentage    decimal.Decimal `json:"debt_percentage" gorm:"type:decimal(5,2);not null"`
	SavingsPercentage decimal.Decimal `json:"savings_percentage" gorm:"type:decimal(5,2);not null"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	DeletedAt         gorm.DeletedAt  `json:"-" gorm:"index"`
	User              User            `json:"-" gorm:"foreignKey:UserID"`
}

// TableName sets the table name.
func (Income) TableName() string {
	return "incomes"
}
