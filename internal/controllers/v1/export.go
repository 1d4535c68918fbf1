package v1

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ledgerlite/backend/internal/auth"
	"github.com/ledgerlite/backend/internal/httputil"
	"github.com/ledgerlite/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// ExportController lets users take their transaction history with them
// as JSON, CSV or an Excel workbook.
type ExportController struct {
	transactions *repository.TransactionRepository
	categories   *repository.CategoryRepository
}

func NewExportController(transactions *repository.TransactionRepository, categories *repository.CategoryRepository) ExportController {
	return ExportController{transactions: transactions, categories: categories}
}

func (co ExportController) RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/json", httputil.OptionsGet)
	r.GET("/json", co.JSON)
	r.OPTIONS("/csv", httputil.OptionsGet)
	r.GET("/csv", co.CSV)
	r.OPTIONS("/xlsx", httputil.OptionsGet)
	r.GET("/xlsx", co.XLSX)
}

// exportRow is one transaction with its category resolved to a name.
type exportRow struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Note        string    `json:"note"`
}

type ExportResponse struct {
	Data []exportRow `json:"data"` // All transactions of the user
}

var exportHeader = []string{"ID", "Date", "Type", "Category", "Amount", "Description", "Note"}

func (row exportRow) strings() []string {
	return []string{row.ID.String(), row.Date, row.Type, row.Category, row.Amount, row.Description, row.Note}
}

// rows loads all transactions of the user and joins the category names
// in memory. The category catalog is small, one query beats one join
// per row.
func (co ExportController) rows(c *gin.Context) ([]exportRow, error) {
	user := auth.CurrentUser(c)

	transactions, err := co.transactions.FindByUser(user.ID, repository.TransactionFilter{})
	if err != nil {
		return nil, err
	}

	categories, err := co.categories.FindAll("")
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}

	rows := make([]exportRow, 0, len(transactions))
	for _, transaction := range transactions {
		rows = append(rows, exportRow{
			ID:          transaction.ID,
			Date:        transaction.Date.String(),
			Type:        string(transaction.Type),
			Category:    names[transaction.CategoryID],
			Amount:      transaction.Amount.String(),
			Description: transaction.Description,
			Note:        transaction.Note,
		})
	}

	return rows, nil
}

// @Summary		Export transactions as JSON
// @Description	Returns all transactions of the authenticated user with resolved category names
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/api/v1/export/json [get]
func (co ExportController) JSON(c *gin.Context) {
	rows, err := co.rows(c)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExportResponse{Data: rows})
}

// @Summary		Export transactions as CSV
// @Description	Returns all transactions of the authenticated user as a CSV download
// @Tags			Export
// @Produce		text/csv
// @Success		200
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/api/v1/export/csv [get]
func (co ExportController) CSV(c *gin.Context) {
	rows, err := co.rows(c)
	if err != nil {
		renderError(c, err)
		return
	}

	filename := fmt.Sprintf("transactions_%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if err := writeCSV(c.Writer, rows); err != nil {
		// The response is already streaming, only logging is left
		log.Error().Str("request-id", requestid.Get(c)).Msgf("csv export: %v", err)
	}
}

// writeCSV streams the rows as CSV. The leading UTF-8 BOM lets
// spreadsheet applications detect the encoding.
func writeCSV(out io.Writer, rows []exportRow) error {
	if _, err := out.Write([]byte("\xEF\xBB\xBF")); err != nil {
		return err
	}

	w := csv.NewWriter(out)
	if err := w.Write(exportHeader); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row.strings()); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// @Summary		Export transactions as Excel workbook
// @Description	Returns all transactions of the authenticated user as an xlsx download
// @Tags			Export
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/api/v1/export/xlsx [get]
func (co ExportController) XLSX(c *gin.Context) {
	rows, err := co.rows(c)
	if err != nil {
		renderError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Transactions"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})

	for i, header := range exportHeader {
		cell := fmt.Sprintf("%c1", 'A'+i)
		_ = f.SetCellValue(sheet, cell, header)
		_ = f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	_ = f.SetColWidth(sheet, "A", "A", 38)
	_ = f.SetColWidth(sheet, "B", "D", 14)
	_ = f.SetColWidth(sheet, "E", "G", 24)

	for i, row := range rows {
		_ = f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &[]any{
			row.ID.String(), row.Date, row.Type, row.Category, row.Amount, row.Description, row.Note,
		})
	}

	filename := fmt.Sprintf("transactions_%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if err := f.Write(c.Writer); err != nil {
		renderError(c, err)
	}
}
