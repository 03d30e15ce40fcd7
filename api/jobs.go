package api

import (
	"net/http"

	"butce/config"
	"butce/database"
	"butce/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// JobsHandler exposes the batch jobs to external schedulers.
type JobsHandler struct {
	log *logrus.Logger
}

// NewJobsHandler creates the handler.
func NewJobsHandler(log *logrus.Logger) *JobsHandler {
	return &JobsHandler{log: log}
}

// NewMilestoneDetector wires the detector with the configured
// notification channels.
func NewMilestoneDetector(log *logrus.Logger) *service.MilestoneService {
	cfg := config.GetConfig()
	dispatcher := service.NewDispatcher(
		service.NewPushService(cfg.Push),
		service.NewEmailService(&cfg.Email),
		log,
	)
	return service.NewMilestoneService(database.DB, dispatcher, log)
}

// RunMilestones triggers one milestone detector pass. The endpoint is
// meant for external schedulers and is guarded by a shared secret
// instead of a user token.
// @Summary Run milestone detector
// @Description Scans debts and goals, notifies newly crossed milestones once
// @Tags jobs
// @Produce json
// @Param X-Job-Secret header string true "shared job secret"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /jobs/milestones [post]
func (h *JobsHandler) RunMilestones(c *gin.Context) {
	secret := config.GetConfig().Jobs.Secret
	if secret == "" || c.GetHeader("X-Job-Secret") != secret {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	result, err := NewMilestoneDetector(h.log).Run(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("milestone run failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.log.WithFields(logrus.Fields{
		"debts_checked":        result.DebtsChecked,
		"goals_checked":        result.GoalsChecked,
		"newly_paid_off":       result.NewlyPaidOff,
		"newly_halfway":        result.NewlyHalfway,
		"notifications_sent":   result.NotificationsSent,
		"notifications_failed": result.NotificationsFailed,
	}).Info("milestone run completed")

	c.JSON(http.StatusOK, gin.H{
		"ok":                   true,
		"debts_checked":        result.DebtsChecked,
		"goals_checked":        result.GoalsChecked,
		"newly_paid_off":       result.NewlyPaidOff,
		"newly_halfway":        result.NewlyHalfway,
		"notifications_sent":   result.NotificationsSent,
		"notifications_failed": result.NotificationsFailed,
	})
}
