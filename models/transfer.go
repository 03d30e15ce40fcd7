package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer is one journal entry for a fund movement, manual or automatic.
// Immutable once created; the only allowed mutation is whole-record
// deletion together with the inverse ledger movement.
type Transfer struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	UserID       uint            `json:"user_id" gorm:"index;not null"`
	FromFund     Fund            `json:"from_fund" gorm:"size:20;not null"`
	ToFund       Fund            `json:"to_fund" gorm:"size:20;not null"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Description  string          `json:"description" gorm:"size:255"`
	TransferType TransferType    `json:"transfer_type" gorm:"size:20;not null;index"`
	CreatedAt    time.Time       `json:"created_at" gorm:"index"`
	User         User            `json:"-" gorm:"foreignKey:UserID"`
}

// TableName sets the table name.
func (Transfer) TableName() string {
	return "transfers"
}
