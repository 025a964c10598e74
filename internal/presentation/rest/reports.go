package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agarciagaray/mi-riesgo/internal/application/dto"
	"github.com/agarciagaray/mi-riesgo/internal/domain/port"
)

// GetCreditReport returns the full consultation payload for one person.
func (h *Handler) GetCreditReport(c *gin.Context) {
	identifier := c.Param("identifier")
	if identifier == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "national identifier is required"})
		return
	}

	report, err := h.reports.Execute(c.Request.Context(), dto.GetReportRequest{
		NationalIdentifier: identifier,
	})
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			if h.metrics != nil {
				h.metrics.ReportNotFound.Inc()
			}
			c.JSON(http.StatusNotFound, gin.H{"message": "No se encontró historial crediticio para la cédula consultada."})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "report assembly failed", "identifier", identifier, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	if h.metrics != nil {
		h.metrics.ReportsAssembled.Inc()
	}
	c.JSON(http.StatusOK, report)
}

// ScoreReport computes the risk score for a person.
func (h *Handler) ScoreReport(c *gin.Context) {
	var req dto.ScoreReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	if req.NationalIdentifier == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "national identifier is required"})
		return
	}

	score, err := h.scoring.Execute(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No se encontró historial crediticio para la cédula consultada."})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "scoring failed", "identifier", req.NationalIdentifier, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, score)
}

// GetDashboard returns the portfolio analytics.
func (h *Handler) GetDashboard(c *gin.Context) {
	stats, err := h.dashboard.Execute(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "dashboard aggregation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
