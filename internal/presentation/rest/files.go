package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agarciagaray/mi-riesgo/internal/application/dto"
)

// UploadFile processes a parsed flat-file batch. Record-level failures come
// back in the result body; the endpoint errors only on malformed requests.
func (h *Handler) UploadFile(c *gin.Context) {
	var req dto.IngestFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	if req.FileName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "file name is required"})
		return
	}
	if len(req.Records) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "no records to process"})
		return
	}

	result, err := h.ingest.Execute(c.Request.Context(), req)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "file ingestion failed", "file_name", req.FileName, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	if h.metrics != nil {
		h.metrics.IngestedRecords.Add(float64(result.ProcessedRecords))
	}

	status := http.StatusOK
	if result.Status == "error" {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, result)
}
