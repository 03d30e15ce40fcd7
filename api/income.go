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

// IncomeHandler records incomes and runs the distribution engine.
type IncomeHandler struct{}

// NewIncomeHandler creates the handler.
func NewIncomeHandler() *IncomeHandler {
	return &IncomeHandler{}
}

type CreateIncomeRequest struct {
	Description    string          `json:"description" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	IncomeDate     string          `json:"income_date" binding:"required"` // 2006-01-02
	Category       string          `json:"category"`
	MonthlyRepeat  bool            `json:"monthly_repeat"`
	NextIncomeDate string          `json:"next_income_date"`
}

type IncomeListRequest struct {
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	Category  string `form:"category"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// Create records an income and distributes it across the funds.
// @Summary Create income
// @Description Records an income; the amount is split into debt fund, savings fund and balance by the configured percentages, journaling automatic transfers
// @Tags incomes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateIncomeRequest true "income"
// @Success 200 {object} Response{data=models.Income}
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /api/v1/incomes [post]
func (h *IncomeHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Geçersiz istek: "+err.Error())
		return
	}
	date, err := time.ParseInLocation("2006-01-02", req.IncomeDate, time.Local)
	if err != nil {
		BadRequest(c, "Tarih biçimi hatalı, beklenen: 2006-01-02")
		return
	}
	var next *time.Time
	if req.NextIncomeDate != "" {
		t, err := time.ParseInLocation("2006-01-02", req.NextIncomeDate, time.Local)
		if err != nil {
			BadRequest(c, "Tarih biçimi hatalı, beklenen: 2006-01-02")
			return
		}
		next = &t
	}

	income, err := service.NewDistributionService(database.DB).Distribute(userID, service.IncomeInput{
		Description:    req.Description,
		Amount:         req.Amount,
		IncomeDate:     date,
		Category:       req.Category,
		MonthlyRepeat:  req.MonthlyRepeat,
		NextIncomeDate: next,
	})
	if err != nil {
		serviceError(c, err, "Gelir kaydedilemedi")
		return
	}
	SuccessWithMessage(c, "Gelir kaydedildi", income)
}

// List returns the user's incomes, paged and filterable.
// @Summary List incomes
// @Tags incomes
// @Produce json
// @Security BearerAuth
// @Param page query int false "page" default(1)
// @Param page_size query int false "page size" default(10)
// @Param category query string false "category filter"
// @Param start_date query string false "start date (2006-01-02)"
// @Param end_date query string false "end date (2006-01-02)"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Income}}
// @Failure 401 {object} Response
// @Router /api/v1/incomes [get]
func (h *IncomeHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req IncomeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, "Geçersiz istek: "+err.Error())
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	query := database.DB.Model(&models.Income{}).Where("user_id = ?", userID)
	if req.Category != "" {
		query = query.Where("category = ?", req.Category)
	}
	if req.StartDate != "" {
		if t, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local); err == nil {
			query = query.Where("income_date >= ?", t)
		}
	}
	if req.EndDate != "" {
		if t, err := time.ParseInLocation("2006-01-02", req.EndDate, time.Local); err == nil {
			t = t.Add(24*time.Hour - time.Second)
			query = query.Where("income_date <= ?", t)
		}
	}

	var total int64
	query.Count(&total)
	var list []models.Income
	offset := (req.Page - 1) * req.PageSize
	if err := query.Order("income_date DESC").Offset(offset).Limit(req.PageSize).Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Sorgu başarısız"))
		return
	}
	Success(c, PageResponse{Total: total, Page: req.Page, PageSize: req.PageSize, List: list})
}

// Get returns one income.
// @Summary Get income
// @Tags incomes
// @Produce json
// @Security BearerAuth
// @Param id path int true "income ID"
// @Success 200 {object} Response{data=models.Income}
// @Failure 404 {object} Response
// @Router /api/v1/incomes/{id} [get]
func (h *IncomeHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "Geçersiz ID")
		return
	}
	var income models.Income
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&income).Error; err != nil {
		NotFound(c, "Kayıt bulunamadı")
		return
	}
	Success(c, income)
}

// Delete removes an income and reverses its distribution.
// @Summary Delete income
// @Description Removes the income, debits the distributed amounts back out of the funds (floored at zero) and deletes the same-day automatic transfers
// @Tags incomes
// @Produce json
// @Security BearerAuth
// @Param id path int true "income ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/incomes/{id} [delete]
func (h *IncomeHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "Geçersiz ID")
		return
	}
	if err := service.NewDistributionService(database.DB).DeleteIncome(userID, uint(id)); err != nil {
		serviceError(c, err, "Silme başarısız")
		return
	}
	SuccessWithMessage(c, "Gelir silindi", nil)
}
