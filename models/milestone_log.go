package models

import "time"

// EntityType names the kind of entity a milestone refers to.
type EntityType string

const (
	EntityDebt       EntityType = "debt"
	EntitySavingGoal EntityType = "saving_goal"
)

// Milestone names a notification-worthy threshold.
type Milestone string

const (
	MilestonePaidOff Milestone = "paid_off"
	MilestoneHalfway Milestone = "halfway"
)

// MilestoneLog records that a milestone notification was attempted for an
// entity. Append-only, never updated; row existence means "already sent",
// which is what makes repeated detector runs idempotent.
type MilestoneLog struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	UserID     uint       `json:"user_id" gorm:"index;not null"`
	EntityType EntityType `json:"entity_type" gorm:"size:20;not null;uniqueIndex:idx_milestone_once,priority:1"`
	EntityID   uint       `json:"entity_id" gorm:"not null;uniqueIndex:idx_milestone_once,priority:2"`
	Milestone  Milestone  `json:"milestone" gorm:"size:20;not null;uniqueIndex:idx_milestone_once,priority:3"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TableName sets the table name.
func (MilestoneLog) TableName() string {
	return "financial_milestones_log"
}
