package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingContribution is one payment into a saving goal. Append-only;
// deleting one decrements the parent goal's current amount by the same
// value.
type SavingContribution struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	SavingGoalID     uint            `json:"saving_goal_id" gorm:"index;not null"`
	Amount           decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	ContributionDate time.Time       `json:"contribution_date" gorm:"not null"`
	Description      string          `json:"description" gorm:"size:255"`
	CreatedAt        time.Time       `json:"created_at"`
}

// TableName sets the table name.
func (SavingContribution) TableName() string {
	return "saving_contributions"
}
