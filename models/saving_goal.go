package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Saving goal categories.
const (
	GoalCategoryHouse     = "house"
	GoalCategoryCar       = "car"
	GoalCategoryVacation  = "vacation"
	GoalCategoryEducation = "education"
	GoalCategoryOther     = "other"
)

// GoalCategories lists all valid goal categories.
func GoalCategories() []string {
	return []string{
		GoalCategoryHouse,
		GoalCategoryCar,
		GoalCategoryVacation,
		GoalCategoryEducation,
		GoalCategoryOther,
	}
}

// SavingGoal is a savings target. CurrentAmount is maintained exclusively
// by contribution create/delete so it always equals the contribution sum.
type SavingGoal struct {
	ID            uint                 `json:"id" gorm:"primaryKey"`
	UserID        uint                 `json:"user_id" gorm:"index;not null"`
	Title         string               `json:"title" gorm:"size:255;not null"`
	TargetAmount  decimal.Decimal      `json:"target_amount" gorm:"type:decimal(12,2);not null"`
	CurrentAmount decimal.Decimal      `json:"current_amount" gorm:"type:decimal(12,2);not null"`
	Category      string               `json:"category" gorm:"size:20;not null;default:other"`
	Deadline      time.Time            `json:"deadline" gorm:"not null"`
	Contributions []SavingContribution `json:"contributions,omitempty" gorm:"foreignKey:SavingGoalID"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	DeletedAt     gorm.DeletedAt       `json:"-" gorm:"index"`
	User          User                 `json:"-" gorm:"foreignKey:UserID"`
}

// TableName sets the table name.
func (SavingGoal) TableName() string {
	return "saving_goals"
}

// Progress returns current/target in [0,1+]. Zero target reports zero
// progress instead of dividing.
func (g *SavingGoal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount)
}

// IsHalfway reports whether the goal reached half of its target.
func (g *SavingGoal) IsHalfway() bool {
	if !g.TargetAmount.IsPositive() {
		return false
	}
	// current/target >= 0.5  <=>  2*current >= target, no division needed
	return g.CurrentAmount.Mul(decimal.NewFromInt(2)).GreaterThanOrEqual(g.TargetAmount)
}
