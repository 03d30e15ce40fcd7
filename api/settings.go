package api

import (
	"butce/database"
	"butce/middleware"
	"butce/models"
	"butce/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SettingsHandler serves the user's distribution settings and fund
// balances.
type SettingsHandler struct{}

// NewSettingsHandler creates the handler.
func NewSettingsHandler() *SettingsHandler {
	return &SettingsHandler{}
}

type UpdateSettingsRequest struct {
	DebtPercentage    *decimal.Decimal `json:"debt_percentage"`
	SavingsPercentage *decimal.Decimal `json:"savings_percentage"`
	DebtStrategy      string           `json:"debt_strategy" binding:"omitempty,oneof=snowball avalanche"`
}

// Get returns the settings row, creating defaults on first access.
// @Summary Get settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.UserSettings}
// @Failure 401 {object} Response
// @Router /api/v1/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	settings, err := service.NewLedger(database.DB).EnsureSettings(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Ayarlar yüklenemedi"))
		return
	}
	Success(c, settings)
}

// Update changes percentages and strategy. The fund balances are owned
// by the ledger and cannot be set here. Percentages summing past 100 are
// accepted; the client shows a hint, the engine applies them as given.
// @Summary Update settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateSettingsRequest true "settings"
// @Success 200 {object} Response{data=models.UserSettings}
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /api/v1/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Geçersiz istek: "+err.Error())
		return
	}

	settings, err := service.NewLedger(database.DB).EnsureSettings(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Ayarlar yüklenemedi"))
		return
	}

	updates := map[string]interface{}{}
	hundred := decimal.NewFromInt(100)
	if req.DebtPercentage != nil {
		if req.DebtPercentage.IsNegative() || req.DebtPercentage.GreaterThan(hundred) {
			BadRequest(c, "Borç yüzdesi 0 ile 100 arasında olmalı")
			return
		}
		updates["debt_percentage"] = *req.DebtPercentage
	}
	if req.SavingsPercentage != nil {
		if req.SavingsPercentage.IsNegative() || req.SavingsPercentage.GreaterThan(hundred) {
			BadRequest(c, "Birikim yüzdesi 0 ile 100 arasında olmalı")
			return
		}
		updates["savings_percentage"] = *req.SavingsPercentage
	}
	if req.DebtStrategy != "" {
		updates["debt_strategy"] = req.DebtStrategy
	}
	if len(updates) == 0 {
		Success(c, settings)
		return
	}

	if err := database.DB.Model(&models.UserSettings{}).
		Where("id = ?", settings.ID).
		Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Güncelleme başarısız"))
		return
	}
	database.DB.First(settings, settings.ID)
	SuccessWithMessage(c, "Ayarlar güncellendi", settings)
}
