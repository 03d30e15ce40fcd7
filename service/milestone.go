package service

import (
	"context"
	"fmt"

	"butce/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RunResult holds the counters reported by one detector run.
type RunResult struct {
	DebtsChecked        int `json:"debts_checked"`
	GoalsChecked        int `json:"goals_checked"`
	NewlyPaidOff        int `json:"newly_paid_off"`
	NewlyHalfway        int `json:"newly_halfway"`
	NotificationsSent   int `json:"notifications_sent"`
	NotificationsFailed int `json:"notifications_failed"`
}

// MilestoneService is the batch detector: it scans all debts and saving
// goals, finds entities that newly crossed a milestone, attempts one
// notification per entity and records the attempt in the milestone log.
// Row existence in the log is the dedupe; a milestone is attempted at
// most once, ever, even when delivery fails.
type MilestoneService struct {
	db       *gorm.DB
	notifier Notifier
	log      *logrus.Logger
}

// NewMilestoneService creates the detector.
func NewMilestoneService(db *gorm.DB, notifier Notifier, log *logrus.Logger) *MilestoneService {
	return &MilestoneService{db: db, notifier: notifier, log: log}
}

var milestoneTitles = map[models.Milestone]LocalizedText{
	models.MilestonePaidOff: {EN: "Debt paid off! 🎉", TR: "Borç kapandı! 🎉"},
	models.MilestoneHalfway: {EN: "Halfway there! 🚀", TR: "Yarı yoldasın! 🚀"},
}

func milestoneBody(m models.Milestone, name string) LocalizedText {
	switch m {
	case models.MilestonePaidOff:
		return LocalizedText{
			EN: fmt.Sprintf("Congratulations, you fully paid off \"%s\".", name),
			TR: fmt.Sprintf("Tebrikler, \"%s\" borcunu tamamen ödedin.", name),
		}
	default:
		return LocalizedText{
			EN: fmt.Sprintf("You saved half of your \"%s\" goal.", name),
			TR: fmt.Sprintf("\"%s\" hedefinin yarısını biriktirdin.", name),
		}
	}
}

// Run executes one detector pass. Each entity's notify+log step is
// independent, so a timeout mid-run leaves already-processed entities
// correctly logged and a rerun picks up the rest.
func (s *MilestoneService) Run(ctx context.Context) (*RunResult, error) {
	db := s.db.WithContext(ctx)
	result := &RunResult{}

	if err := s.runDebts(db, result); err != nil {
		return result, err
	}
	if err := s.runGoals(db, result); err != nil {
		return result, err
	}
	return result, nil
}

func (s *MilestoneService) runDebts(db *gorm.DB, result *RunResult) error {
	var debts []models.Debt
	if err := db.Preload("Payments").Find(&debts).Error; err != nil {
		return fmt.Errorf("load debts: %w", err)
	}
	result.DebtsChecked = len(debts)

	var candidates []models.Debt
	for i := range debts {
		if debts[i].IsPaidOff() {
			candidates = append(candidates, debts[i])
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	logged, err := s.loggedIDs(db, models.EntityDebt, models.MilestonePaidOff, debtIDs(candidates))
	if err != nil {
		return err
	}

	for i := range candidates {
		d := &candidates[i]
		if logged[d.ID] {
			continue
		}
		result.NewlyPaidOff++
		s.notifyAndLog(db, result, models.MilestoneLog{
			UserID:     d.UserID,
			EntityType: models.EntityDebt,
			EntityID:   d.ID,
			Milestone:  models.MilestonePaidOff,
		}, d.Description)
	}
	return nil
}

func (s *MilestoneService) runGoals(db *gorm.DB, result *RunResult) error {
	var goals []models.SavingGoal
	if err := db.Find(&goals).Error; err != nil {
		return fmt.Errorf("load goals: %w", err)
	}
	result.GoalsChecked = len(goals)

	var candidates []models.SavingGoal
	for i := range goals {
		if goals[i].IsHalfway() {
			candidates = append(candidates, goals[i])
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	logged, err := s.loggedIDs(db, models.EntitySavingGoal, models.MilestoneHalfway, goalIDs(candidates))
	if err != nil {
		return err
	}

	for i := range candidates {
		g := &candidates[i]
		if logged[g.ID] {
			continue
		}
		result.NewlyHalfway++
		s.notifyAndLog(db, result, models.MilestoneLog{
			UserID:     g.UserID,
			EntityType: models.EntitySavingGoal,
			EntityID:   g.ID,
			Milestone:  models.MilestoneHalfway,
		}, g.Title)
	}
	return nil
}

// loggedIDs returns the set of candidate entity IDs already present in
// the milestone log for the given (type, milestone).
func (s *MilestoneService) loggedIDs(db *gorm.DB, entityType models.EntityType, milestone models.Milestone, ids []uint) (map[uint]bool, error) {
	var rows []models.MilestoneLog
	if err := db.Where(
		"entity_type = ? AND milestone = ? AND entity_id IN ?",
		entityType, milestone, ids,
	).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load milestone log: %w", err)
	}
	logged := make(map[uint]bool, len(rows))
	for _, row := range rows {
		logged[row.EntityID] = true
	}
	return logged, nil
}

// notifyAndLog attempts one delivery and then records the attempt
// unconditionally. Delivery failure is logged and counted, never
// retried: this is an at-most-one-attempt policy. The log insert ignores
// duplicate keys so a resumed run cannot double-insert.
func (s *MilestoneService) notifyAndLog(db *gorm.DB, result *RunResult, entry models.MilestoneLog, name string) {
	var user models.User
	if err := db.First(&user, entry.UserID).Error; err != nil {
		s.log.WithError(err).WithField("user_id", entry.UserID).Warn("milestone: user lookup failed")
		result.NotificationsFailed++
	} else {
		title := milestoneTitles[entry.Milestone]
		body := milestoneBody(entry.Milestone, name)
		data := map[string]string{
			"entity_type": string(entry.EntityType),
			"entity_id":   fmt.Sprintf("%d", entry.EntityID),
			"milestone":   string(entry.Milestone),
		}
		if err := s.notifier.Send(&user, title, body, data); err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{
				"user_id":     entry.UserID,
				"entity_type": entry.EntityType,
				"entity_id":   entry.EntityID,
				"milestone":   entry.Milestone,
			}).Warn("milestone: notification delivery failed")
			result.NotificationsFailed++
		} else {
			result.NotificationsSent++
		}
	}

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error; err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"entity_type": entry.EntityType,
			"entity_id":   entry.EntityID,
		}).Error("milestone: log insert failed")
	}
}

func debtIDs(debts []models.Debt) []uint {
	ids := make([]uint, len(debts))
	for i := range debts {
		ids[i] = debts[i].ID
	}
	return ids
}

func goalIDs(goals []models.SavingGoal) []uint {
	ids := make([]uint, len(goals))
	for i := range goals {
		ids[i] = goals[i].ID
	}
	return ids
}
