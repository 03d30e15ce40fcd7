package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is one installment payment on a debt. Append-only; deletable
// individually (which credits the debt fund back).
type Payment struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	DebtID      uint            `json:"debt_id" gorm:"index;not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	PaymentDate time.Time       `json:"payment_date" gorm:"not null"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TableName sets the table name.
func (Payment) TableName() string {
	return "payments"
}
