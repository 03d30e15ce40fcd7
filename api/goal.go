package api

import (
	"strconv"
	"time"

	"butce/database"
	"butce/middleware"
	"butce/models"
	"butce/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GoalHandler serves saving goals and their contributions.
type GoalHandler struct{}

// NewGoalHandler creates the handler.
func NewGoalHandler() *GoalHandler {
	return &GoalHandler{}
}

type CreateGoalRequest struct {
	Title        string          `json:"title" binding:"required"`
	TargetAmount decimal.Decimal `json:"target_amount" binding:"required"`
	Category     string          `json:"category" binding:"omitempty,oneof=house car vacation education other"`
	Deadline     string          `json:"deadline" binding:"required"` // 2006-01-02
}

type UpdateGoalRequest struct {
	Title        string           `json:"title"`
	TargetAmount *decimal.Decimal `json:"target_amount"`
	Category     string           `json:"category" binding:"omitempty,oneof=house car vacation education other"`
	Deadline     string           `json:"deadline"`
}

type CreateContributionRequest struct {
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	ContributionDate string          `json:"contribution_date" binding:"required"` // 2006-01-02
	Description      string          `json:"description"`
}

// GoalView decorates a goal with its progress ratio.
type GoalView struct {
	models.SavingGoal
	Progress decimal.Decimal `json:"progress"`
	Halfway  bool            `json:"halfway"`
}

func goalView(g models.SavingGoal) GoalView {
	return GoalView{
		SavingGoal: g,
		Progress:   g.Progress().Round(4),
		Halfway:    g.IsHalfway(),
	}
}

// Create records a saving goal.
// @Summary Create goal
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateGoalRequest true "goal"
// @Success 200 {object} Response{data=models.SavingGoal}
// @Failure 400 {object} Response
// @Router /api/v1/goals [post]
func (h *GoalHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Geçersiz istek: "+err.Error())
		return
	}
	if !req.TargetAmount.IsPositive() {
		BadRequest(c, "Tutar sıfırdan büyük olmalı")
		return
	}
	deadline, err := time.ParseInLocation("2006-01-02", req.Deadline, time.Local)
	if err != nil {
		BadRequest(c, "Tarih biçimi hatalı, beklenen: 2006-01-02")
		return
	}
	category := req.Category
	if category == "" {
		category = models.GoalCategoryOther
	}

	goal := models.SavingGoal{
		UserID:        userID,
		Title:         req.Title,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: decimal.Zero,
		Category:      category,
		Deadline:      deadline,
	}
	if err := database.DB.Create(&goal).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Hedef kaydedilemedi"))
		return
	}
	SuccessWithMessage(c, "Hedef kaydedildi", goal)
}

// List returns the user's goals with progress, newest deadline last.
// @Summary List goals
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]GoalView}
// @Failure 401 {object} Response
// @Router /api/v1/goals [get]
func (h *GoalHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var goals []models.SavingGoal
	if err := database.DB.Where("user_id = ?", userID).
		Order("deadline ASC").Find(&goals).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Sorgu başarısız"))
		return
	}
	views := make([]GoalView, len(goals))
	for i, g := range goals {
		views[i] = goalView(g)
	}
	Success(c, views)
}

// Get returns one goal with its contributions.
// @Summary Get goal
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Param id path int true "goal ID"
// @Success 200 {object} Response{data=GoalView}
// @Failure 404 {object} Response
// @Router /api/v1/goals/{id} [get]
func (h *GoalHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "Geçersiz ID")
		return
	}
	var goal models.SavingGoal
	if err := database.DB.Preload("Contributions").
		Where("id = ? AND user_id = ?", id, userID).First(&goal).Error; err != nil {
		NotFound(c, "Kayıt bulunamadı")
		return
	}
	Success(c, goalView(goal))
}

// Update changes the goal's descriptive fields and target. The current
// amount only moves through contributions.
// @Summary Update goal
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "goal ID"
// @Param request body UpdateGoalRequest true "goal"
// @Success 200 {object} Response{data=models.SavingGoal}
// @Failure 404 {object} Response
// @Router /api/v1/goals/{id} [put]
func (h *GoalHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "Geçersiz ID")
		return
	}
	var goal models.SavingGoal
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error; err != nil {
		NotFound(c, "Kayıt bulunamadı")
		return
	}
	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Geçersiz istek: "+err.Error())
		return
	}
	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.TargetAmount != nil {
		if !req.TargetAmount.IsPositive() {
			BadRequest(c, "Tutar sıfırdan büyük olmalı")
			return
		}
		updates["target_amount"] = *req.TargetAmount
	}
	if req.Deadline != "" {
		t, err := time.ParseInLocation("2006-01-02", req.Deadline, time.Local)
		if err != nil {
			BadRequest(c, "Tarih biçimi hatalı, beklenen: 2006-01-02")
			return
		}
		updates["deadline"] = t
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&goal).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "Güncelleme başarısız"))
			return
		}
	}
	database.DB.First(&goal, goal.ID)
	SuccessWithMessage(c, "Hedef güncellendi", goal)
}

// Delete removes a goal and its contributions.
// @Summary Delete goal
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Param id path int true "goal ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/goals/{id} [delete]
func (h *GoalHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "Geçersiz ID")
		return
	}
	var goal models.SavingGoal
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error; err != nil {
		NotFound(c, "Kayıt bulunamadı")
		return
	}
	if err := database.DB.Delete(&goal).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Silme başarısız"))
		return
	}
	SuccessWithMessage(c, "Hedef silindi", nil)
}

// CreateContribution records a contribution, spending from the savings
// fund and advancing the goal.
// @Summary Add contribution
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "goal ID"
// @Param request body CreateContributionRequest true "contribution"
// @Success 200 {object} Response{data=models.SavingContribution}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/goals/{id}/contributions [post]
func (h *GoalHandler) CreateContribution(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "Geçersiz ID")
		return
	}
	var req CreateContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Geçersiz istek: "+err.Error())
		return
	}
	date, err := time.ParseInLocation("2006-01-02", req.ContributionDate, time.Local)
	if err != nil {
		BadRequest(c, "Tarih biçimi hatalı, beklenen: 2006-01-02")
		return
	}

	contribution, err := service.NewGoalService(database.DB).AddContribution(userID, uint(id), req.Amount, date, req.Description)
	if err != nil {
		serviceError(c, err, "Katkı kaydedilemedi")
		return
	}
	SuccessWithMessage(c, "Katkı kaydedildi", contribution)
}

// DeleteContribution removes a contribution, crediting the savings fund
// and rolling the goal back.
// @Summary Delete contribution
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Param id path int true "goal ID"
// @Param contributionId path int true "contribution ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/goals/{id}/contributions/{contributionId} [delete]
func (h *GoalHandler) DeleteContribution(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "Geçersiz ID")
		return
	}
	contributionID, err := strconv.ParseUint(c.Param("contributionId"), 10, 32)
	if err != nil {
		BadRequest(c, "Geçersiz ID")
		return
	}
	if err := service.NewGoalService(database.DB).DeleteContribution(userID, uint(id), uint(contributionID)); err != nil {
		serviceError(c, err, "Silme başarısız")
		return
	}
	SuccessWithMessage(c, "Katkı silindi", nil)
}
