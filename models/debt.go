package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Debt is an installment debt. Payments are appended separately;
// remaining amount is always derived from them.
type Debt struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	UserID           uint            `json:"user_id" gorm:"index;not null"`
	Description      string          `json:"description" gorm:"size:255;not null"`
	TotalAmount      decimal.Decimal `json:"total_amount" gorm:"type:decimal(12,2);not null"`
	DueDate          time.Time       `json:"due_date" gorm:"not null"`
	InstallmentCount int             `json:"installment_count" gorm:"not null;default:1"`
	MonthlyRepeat    bool            `json:"monthly_repeat" gorm:"default:false"`
	NextPaymentDate  *time.Time      `json:"next_payment_date,omitempty"`
	Category         string          `json:"category" gorm:"size:50"`
	Payments         []Payment       `json:"payments,omitempty" gorm:"foreignKey:DebtID"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `json:"-" gorm:"index"`
	User             User            `json:"-" gorm:"foreignKey:UserID"`
}

// TableName sets the table name.
func (Debt) TableName() string {
	return "debts"
}

// PaidAmount returns the sum of all loaded payments.
func (d *Debt) PaidAmount() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range d.Payments {
		sum = sum.Add(p.Amount)
	}
	return sum
}

// Remaining returns total minus payments. May go negative when a debt is
// overpaid; callers treat remaining <= 0 as fully paid.
func (d *Debt) Remaining() decimal.Decimal {
	return d.TotalAmount.Sub(d.PaidAmount())
}

// IsPaidOff reports whether the loaded payments cover the total.
func (d *Debt) IsPaidOff() bool {
	return !d.Remaining().IsPositive()
}
