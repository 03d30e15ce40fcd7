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

// DebtHandler serves debts and their installment payments.
type DebtHandler struct{}

// NewDebtHandler creates the handler.
func NewDebtHandler() *DebtHandler {
	return &DebtHandler{}
}

type CreateDebtRequest struct {
	Description      string          `json:"description" binding:"required"`
	TotalAmount      decimal.Decimal `json:"total_amount" binding:"required"`
	DueDate          string          `json:"due_date" binding:"required"` // 2006-01-02
	InstallmentCount int             `json:"installment_count" binding:"omitempty,min=1"`
	MonthlyRepeat    bool            `json:"monthly_repeat"`
	NextPaymentDate  string          `json:"next_payment_date"`
	Category         string          `json:"category"`
}

type UpdateDebtRequest struct {
	Description     string `json:"description"`
	DueDate         string `json:"due_date"`
	Category        string `json:"category"`
	NextPaymentDate string `json:"next_payment_date"`
}

type CreatePaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate string          `json:"payment_date" binding:"required"` // 2006-01-02
}

// DebtView decorates a debt with derived payoff state.
type DebtView struct {
	models.Debt
	PaidAmount decimal.Decimal `json:"paid_amount"`
	Remaining  decimal.Decimal `json:"remaining"`
	PaidOff    bool            `json:"paid_off"`
}

func debtView(d models.Debt) DebtView {
	return DebtView{
		Debt:       d,
		PaidAmount: d.PaidAmount(),
		Remaining:  d.Remaining(),
		PaidOff:    d.IsPaidOff(),
	}
}

// Create records a debt.
// @Summary Create debt
// @Tags debts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateDebtRequest true "debt"
// @Success 200 {object} Response{data=models.Debt}
// @Failure 400 {object} Response
// @Router /api/v1/debts [post]
func (h *DebtHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Geçersiz istek: "+err.Error())
		return
	}
	if !req.TotalAmount.IsPositive() {
		BadRequest(c, "Tutar sıfırdan büyük olmalı")
		return
	}
	due, err := time.ParseInLocation("2006-01-02", req.DueDate, time.Local)
	if err != nil {
		BadRequest(c, "Tarih biçimi hatalı, beklenen: 2006-01-02")
		return
	}
	var next *time.Time
	if req.NextPaymentDate != "" {
		t, err := time.ParseInLocation("2006-01-02", req.NextPaymentDate, time.Local)
		if err != nil {
			BadRequest(c, "Tarih biçimi hatalı, beklenen: 2006-01-02")
			return
		}
		next = &t
	}
	installments := req.InstallmentCount
	if installments < 1 {
		installments = 1
	}

	debt := models.Debt{
		UserID:           userID,
		Description:      req.Description,
		TotalAmount:      req.TotalAmount,
		DueDate:          due,
		InstallmentCount: installments,
		MonthlyRepeat:    req.MonthlyRepeat,
		NextPaymentDate:  next,
		Category:         req.Category,
	}
	if err := database.DB.Create(&debt).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Borç kaydedilemedi"))
		return
	}
	SuccessWithMessage(c, "Borç kaydedildi", debt)
}

// List returns the user's debts ordered by the configured payoff
// strategy, with derived payoff state.
// @Summary List debts
// @Tags debts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]DebtView}
// @Failure 401 {object} Response
// @Router /api/v1/debts [get]
func (h *DebtHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	settings, err := service.NewLedger(database.DB).EnsureSettings(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Sorgu başarısız"))
		return
	}

	var debts []models.Debt
	if err := database.DB.Preload("Payments").
		Where("user_id = ?", userID).Find(&debts).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Sorgu başarısız"))
		return
	}
	service.SortDebts(debts, settings.DebtStrategy)

	views := make([]DebtView, len(debts))
	for i, d := range debts {
		views[i] = debtView(d)
	}
	Success(c, views)
}

// Get returns one debt with its payments.
// @Summary Get debt
// @Tags debts
// @Produce json
// @Security BearerAuth
// @Param id path int true "debt ID"
// @Success 200 {object} Response{data=DebtView}
// @Failure 404 {object} Response
// @Router /api/v1/debts/{id} [get]
func (h *DebtHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "Geçersiz ID")
		return
	}
	var debt models.Debt
	if err := database.DB.Preload("Payments").
		Where("id = ? AND user_id = ?", id, userID).First(&debt).Error; err != nil {
		NotFound(c, "Kayıt bulunamadı")
		return
	}
	Success(c, debtView(debt))
}

// Update changes descriptive fields. The total amount is immutable;
// payoff progress only moves through payments.
// @Summary Update debt
// @Tags debts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "debt ID"
// @Param request body UpdateDebtRequest true "debt"
// @Success 200 {object} Response{data=models.Debt}
// @Failure 404 {object} Response
// @Router /api/v1/debts/{id} [put]
func (h *DebtHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "Geçersiz ID")
		return
	}
	var debt models.Debt
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&debt).Error; err != nil {
		NotFound(c, "Kayıt bulunamadı")
		return
	}
	var req UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Geçersiz istek: "+err.Error())
		return
	}
	updates := map[string]interface{}{}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.DueDate != "" {
		t, err := time.ParseInLocation("2006-01-02", req.DueDate, time.Local)
		if err != nil {
			BadRequest(c, "Tarih biçimi hatalı, beklenen: 2006-01-02")
			return
		}
		updates["due_date"] = t
	}
	if req.NextPaymentDate != "" {
		t, err := time.ParseInLocation("2006-01-02", req.NextPaymentDate, time.Local)
		if err != nil {
			BadRequest(c, "Tarih biçimi hatalı, beklenen: 2006-01-02")
			return
		}
		updates["next_payment_date"] = t
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&debt).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "Güncelleme başarısız"))
			return
		}
	}
	database.DB.First(&debt, debt.ID)
	SuccessWithMessage(c, "Borç güncellendi", debt)
}

// Delete removes a debt and its payments.
// @Summary Delete debt
// @Tags debts
// @Produce json
// @Security BearerAuth
// @Param id path int true "debt ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/debts/{id} [delete]
func (h *DebtHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "Geçersiz ID")
		return
	}
	var debt models.Debt
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&debt).Error; err != nil {
		NotFound(c, "Kayıt bulunamadı")
		return
	}
	if err := database.DB.Delete(&debt).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Silme başarısız"))
		return
	}
	SuccessWithMessage(c, "Borç silindi", nil)
}

// CreatePayment records an installment payment, spending from the debt
// fund.
// @Summary Add payment
// @Tags debts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "debt ID"
// @Param request body CreatePaymentRequest true "payment"
// @Success 200 {object} Response{data=models.Payment}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/debts/{id}/payments [post]
func (h *DebtHandler) CreatePayment(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "Geçersiz ID")
		return
	}
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Geçersiz istek: "+err.Error())
		return
	}
	date, err := time.ParseInLocation("2006-01-02", req.PaymentDate, time.Local)
	if err != nil {
		BadRequest(c, "Tarih biçimi hatalı, beklenen: 2006-01-02")
		return
	}

	payment, err := service.NewDebtService(database.DB).AddPayment(userID, uint(id), req.Amount, date)
	if err != nil {
		serviceError(c, err, "Ödeme kaydedilemedi")
		return
	}
	SuccessWithMessage(c, "Ödeme kaydedildi", payment)
}

// DeletePayment removes a payment, crediting the debt fund back.
// @Summary Delete payment
// @Tags debts
// @Produce json
// @Security BearerAuth
// @Param id path int true "debt ID"
// @Param paymentId path int true "payment ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/debts/{id}/payments/{paymentId} [delete]
func (h *DebtHandler) DeletePayment(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "Geçersiz ID")
		return
	}
	paymentID, err := strconv.ParseUint(c.Param("paymentId"), 10, 32)
	if err != nil {
		BadRequest(c, "Geçersiz ID")
		return
	}
	if err := service.NewDebtService(database.DB).DeletePayment(userID, uint(id), uint(paymentID)); err != nil {
		serviceError(c, err, "Silme başarısız")
		return
	}
	SuccessWithMessage(c, "Ödeme silindi", nil)
}
