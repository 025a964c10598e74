package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agarciagaray/mi-riesgo/internal/application/dto"
	"github.com/agarciagaray/mi-riesgo/internal/domain/port"
)

// ListClients returns the full client roster.
func (h *Handler) ListClients(c *gin.Context) {
	clients, err := h.clients.Execute(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list clients failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// UpdateClient applies an analyst edit to a client record.
func (h *Handler) UpdateClient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid client id"})
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	req.ClientID = id

	client, err := h.updateCli.Execute(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "client not found"})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "update client failed", "client_id", id, "error", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, client)
}

// ListCompanies returns the registered reporting entities.
func (h *Handler) ListCompanies(c *gin.Context) {
	companies, err := h.companies.Execute(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list companies failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}
