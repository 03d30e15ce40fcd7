package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"butce/database"
	"butce/middleware"
	"butce/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler serves CSV and Excel exports.
type ExportHandler struct{}

// NewExportHandler creates the handler.
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

func exportRange(c *gin.Context) (time.Time, time.Time, bool) {
	startStr := c.Query("start_time")
	endStr := c.Query("end_time")
	if startStr == "" || endStr == "" {
		BadRequest(c, "Başlangıç ve bitiş tarihi gerekli")
		return time.Time{}, time.Time{}, false
	}
	start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
	if err != nil {
		BadRequest(c, "Tarih biçimi hatalı, beklenen: 2006-01-02")
		return time.Time{}, time.Time{}, false
	}
	end, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
	if err != nil {
		BadRequest(c, "Tarih biçimi hatalı, beklenen: 2006-01-02")
		return time.Time{}, time.Time{}, false
	}
	end = end.Add(24*time.Hour - time.Second)
	return start, end, true
}

// ExportCSV streams the transfer journal as a CSV file.
// @Summary Export transfers as CSV
// @Tags export
// @Produce text/csv
// @Security BearerAuth
// @Param start_time query string true "start date (2024-01-01)"
// @Param end_time query string true "end date (2024-12-31)"
// @Success 200 {file} file "CSV file"
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	start, end, ok := exportRange(c)
	if !ok {
		return
	}

	var transfers []models.Transfer
	if err := database.DB.
		Where("user_id = ? AND created_at >= ? AND created_at <= ?", userID, start, end).
		Order("created_at DESC").
		Find(&transfers).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Sorgu başarısız"))
		return
	}

	buf := new(bytes.Buffer)
	// BOM so Excel renders Turkish characters
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	headers := []string{"ID", "Kaynak Fon", "Hedef Fon", "Tutar", "Tür", "Açıklama", "Tarih"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "CSV oluşturulamadı")
		return
	}
	for _, tr := range transfers {
		row := []string{
			fmt.Sprintf("%d", tr.ID),
			string(tr.FromFund),
			string(tr.ToFund),
			tr.Amount.StringFixed(2),
			string(tr.TransferType),
			tr.Description,
			tr.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "CSV oluşturulamadı")
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "CSV oluşturulamadı")
		return
	}

	filename := fmt.Sprintf("transfers_%s_%s.csv", c.Query("start_time"), c.Query("end_time"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportXLSX builds an Excel workbook with transfers, debts and goals
// sheets.
// @Summary Export workbook
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param start_time query string true "start date (2024-01-01)"
// @Param end_time query string true "end date (2024-12-31)"
// @Success 200 {file} file "XLSX file"
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /api/v1/export/xlsx [get]
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	start, end, ok := exportRange(c)
	if !ok {
		return
	}

	var transfers []models.Transfer
	if err := database.DB.
		Where("user_id = ? AND created_at >= ? AND created_at <= ?", userID, start, end).
		Order("created_at DESC").
		Find(&transfers).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Sorgu başarısız"))
		return
	}
	var debts []models.Debt
	if err := database.DB.Preload("Payments").
		Where("user_id = ?", userID).Find(&debts).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Sorgu başarısız"))
		return
	}
	var goals []models.SavingGoal
	if err := database.DB.Where("user_id = ?", userID).Find(&goals).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Sorgu başarısız"))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const transferSheet = "Transferler"
	f.SetSheetName("Sheet1", transferSheet)
	transferHeaders := []string{"ID", "Kaynak Fon", "Hedef Fon", "Tutar", "Tür", "Açıklama", "Tarih"}
	for i, head := range transferHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(transferSheet, cell, head)
	}
	for r, tr := range transfers {
		values := []interface{}{
			tr.ID,
			string(tr.FromFund),
			string(tr.ToFund),
			tr.Amount.StringFixed(2),
			string(tr.TransferType),
			tr.Description,
			tr.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			f.SetCellValue(transferSheet, cell, v)
		}
	}

	const debtSheet = "Borçlar"
	f.NewSheet(debtSheet)
	debtHeaders := []string{"ID", "Açıklama", "Toplam", "Ödenen", "Kalan", "Vade", "Kategori"}
	for i, head := range debtHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(debtSheet, cell, head)
	}
	for r, d := range debts {
		values := []interface{}{
			d.ID,
			d.Description,
			d.TotalAmount.StringFixed(2),
			d.PaidAmount().StringFixed(2),
			d.Remaining().StringFixed(2),
			d.DueDate.Format("2006-01-02"),
			d.Category,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			f.SetCellValue(debtSheet, cell, v)
		}
	}

	const goalSheet = "Hedefler"
	f.NewSheet(goalSheet)
	goalHeaders := []string{"ID", "Başlık", "Hedef", "Biriken", "Kategori", "Son Tarih"}
	for i, head := range goalHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(goalSheet, cell, head)
	}
	for r, g := range goals {
		values := []interface{}{
			g.ID,
			g.Title,
			g.TargetAmount.StringFixed(2),
			g.CurrentAmount.StringFixed(2),
			g.Category,
			g.Deadline.Format("2006-01-02"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			f.SetCellValue(goalSheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Dosya oluşturulamadı"))
		return
	}

	filename := fmt.Sprintf("butce_%s_%s.xlsx", c.Query("start_time"), c.Query("end_time"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
