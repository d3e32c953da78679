package handler

import (
	"log"
	"net/http"

	"lending-finance-backend/internal/models"
	"lending-finance-backend/internal/services/finance"
	"lending-finance-backend/internal/services/importer"

	"github.com/gin-gonic/gin"
)

type ImportHandler struct {
	parser  *importer.Service
	finance *finance.Service
}

func NewImportHandler(parser *importer.Service, finance *finance.Service) *ImportHandler {
	return &ImportHandler{parser: parser, finance: finance}
}

// Upload receives a statement file, decodes it from ISO-8859-1 and returns
// the parsed ImportResult for review. Malformed rows come back with
// validation errors; only a read failure rejects the whole request.
func (h *ImportHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	defer file.Close()

	text, err := importer.DecodeStatement(file)
	if err != nil {
		log.Println("ERROR decoding statement:", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read file"})
		return
	}

	result := h.parser.Parse(text)
	log.Printf("Parsed %s: %d rows, %d valid, %d invalid",
		header.Filename, result.TotalRows, result.ValidRows, result.InvalidRows)

	c.JSON(http.StatusOK, gin.H{
		"filename": header.Filename,
		"result":   result,
	})
}

// Save persists reviewed import rows. Each row is saved independently and
// the response carries a (saved, failed) count pair.
func (h *ImportHandler) Save(c *gin.Context) {
	var payload struct {
		Filename     string                     `json:"filename"`
		Transactions []models.ImportTransaction `json:"transactions"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if len(payload.Transactions) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no transactions to save"})
		return
	}

	result, err := h.finance.SaveImport(payload.Filename, payload.Transactions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "import saved",
		"batch_id": result.BatchID.String(),
		"saved":    result.Saved,
		"failed":   result.Failed,
	})
}
