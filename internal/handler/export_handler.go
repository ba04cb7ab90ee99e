package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/handler/helper"
)

var exportHeaders = []string{"ID", "Question", "Answer", "Category", "Difficulty"}

// ExportQuestions выгружает весь банк вопросов в CSV или Excel
// GET /questions/export?format=csv|xlsx
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		respondError(c, http.StatusBadRequest)
		return
	}

	questions, err := h.questionService.ListAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, "QuestionHandler", err)
		return
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		exportXLSX(c, questions, filename)
	default:
		exportCSV(c, questions, filename)
	}
}

// exportCSV пишет вопросы в CSV с BOM для корректного UTF-8 в Excel
func exportCSV(c *gin.Context, questions []entity.Question, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи BOM: %v", err)
		return
	}

	writer := csv.NewWriter(c.Writer)
	if err := writer.Write(exportHeaders); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи заголовков CSV: %v", err)
		return
	}
	for _, q := range questions {
		record := []string{
			strconv.FormatUint(uint64(q.ID), 10),
			helper.SanitizeForExcel(q.Question),
			helper.SanitizeForExcel(q.Answer),
			strconv.FormatUint(uint64(q.Category), 10),
			strconv.Itoa(q.Difficulty),
		}
		if err := writer.Write(record); err != nil {
			log.Printf("[QuestionHandler] Ошибка записи вопроса #%d в CSV: %v", q.ID, err)
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Printf("[QuestionHandler] Ошибка при Flush CSV: %v", err)
	}
}

// exportXLSX пишет вопросы в Excel через StreamWriter
func exportXLSX(c *gin.Context, questions []entity.Question, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Questions"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		log.Printf("[QuestionHandler] Ошибка переименования листа: %v", err)
		respondError(c, http.StatusInternalServerError)
		return
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[QuestionHandler] Ошибка создания StreamWriter: %v", err)
		respondError(c, http.StatusInternalServerError)
		return
	}

	headers := make([]interface{}, len(exportHeaders))
	for i, hdr := range exportHeaders {
		headers[i] = hdr
	}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи заголовков: %v", err)
	}

	for i, q := range questions {
		rowNum := i + 2 // 1 - заголовки
		row := []interface{}{q.ID, helper.SanitizeForExcel(q.Question), helper.SanitizeForExcel(q.Answer), q.Category, q.Difficulty}
		if err := sw.SetRow(fmt.Sprintf("A%d", rowNum), row); err != nil {
			log.Printf("[QuestionHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[QuestionHandler] Ошибка при Flush: %v", err)
		respondError(c, http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи Excel в response: %v", err)
	}
}
