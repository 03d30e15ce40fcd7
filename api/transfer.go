package api

import (
	"strconv"

	"butce/database"
	"butce/middleware"
	"butce/models"
	"butce/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TransferHandler serves the transfer journal.
type TransferHandler struct{}

// NewTransferHandler creates the handler.
func NewTransferHandler() *TransferHandler {
	return &TransferHandler{}
}

type CreateTransferRequest struct {
	FromFund    string          `json:"from_fund" binding:"required"`
	ToFund      string          `json:"to_fund" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

type TransferListRequest struct {
	Page         int    `form:"page"`
	PageSize     int    `form:"page_size"`
	TransferType string `form:"transfer_type" binding:"omitempty,oneof=manual automatic"`
}

// Create requests a manual transfer between funds.
// @Summary Create transfer
// @Description Moves money between two funds; validated and applied atomically server-side
// @Tags transfers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransferRequest true "transfer"
// @Success 200 {object} Response{data=models.Transfer}
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /api/v1/transfers [post]
func (h *TransferHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Geçersiz istek: "+err.Error())
		return
	}

	record, err := service.NewTransferService(database.DB).RequestTransfer(
		userID,
		models.Fund(req.FromFund),
		models.Fund(req.ToFund),
		req.Amount,
		req.Description,
	)
	if err != nil {
		serviceError(c, err, "Transfer başarısız")
		return
	}
	SuccessWithMessage(c, "Transfer tamamlandı", record)
}

// List returns the journal, newest first.
// @Summary List transfers
// @Tags transfers
// @Produce json
// @Security BearerAuth
// @Param page query int false "page" default(1)
// @Param page_size query int false "page size" default(10)
// @Param transfer_type query string false "manual or automatic"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Transfer}}
// @Failure 401 {object} Response
// @Router /api/v1/transfers [get]
func (h *TransferHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req TransferListRequest
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

	query := database.DB.Model(&models.Transfer{}).Where("user_id = ?", userID)
	if req.TransferType != "" {
		query = query.Where("transfer_type = ?", req.TransferType)
	}

	var total int64
	query.Count(&total)
	var list []models.Transfer
	offset := (req.Page - 1) * req.PageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(req.PageSize).Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Sorgu başarısız"))
		return
	}
	Success(c, PageResponse{Total: total, Page: req.Page, PageSize: req.PageSize, List: list})
}

// Delete removes a transfer and replays its inverse against the funds.
// @Summary Delete transfer
// @Description Reverses the transfer; refused when the destination fund no longer covers the amount
// @Tags transfers
// @Produce json
// @Security BearerAuth
// @Param id path int true "transfer ID"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/transfers/{id} [delete]
func (h *TransferHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "Geçersiz ID")
		return
	}
	if err := service.NewTransferService(database.DB).DeleteTransfer(userID, uint(id)); err != nil {
		serviceError(c, err, "Silme başarısız")
		return
	}
	SuccessWithMessage(c, "Transfer geri alındı", nil)
}
