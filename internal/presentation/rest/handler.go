package rest

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agarciagaray/mi-riesgo/internal/application/usecase"
	"github.com/agarciagaray/mi-riesgo/pkg/auth"
	"github.com/agarciagaray/mi-riesgo/pkg/observability"
)

// Handler exposes the bureau use cases over HTTP.
type Handler struct {
	reports    *usecase.GetCreditReportUseCase
	scoring    *usecase.ScoreReportUseCase
	dashboard  *usecase.AggregatePortfolioUseCase
	clients    *usecase.ListClientsUseCase
	companies  *usecase.ListCompaniesUseCase
	updateCli  *usecase.UpdateClientUseCase
	updateLoan *usecase.UpdateLoanUseCase
	ingest     *usecase.IngestFileUseCase

	metrics *observability.BureauMetrics
	logger  *slog.Logger
	ready   func() error
}

// NewHandler wires the use cases into an HTTP handler. ready reports
// readiness of the backing store; nil means always ready.
func NewHandler(
	reports *usecase.GetCreditReportUseCase,
	scoring *usecase.ScoreReportUseCase,
	dashboard *usecase.AggregatePortfolioUseCase,
	clients *usecase.ListClientsUseCase,
	companies *usecase.ListCompaniesUseCase,
	updateCli *usecase.UpdateClientUseCase,
	updateLoan *usecase.UpdateLoanUseCase,
	ingest *usecase.IngestFileUseCase,
	metrics *observability.BureauMetrics,
	logger *slog.Logger,
	ready func() error,
) *Handler {
	return &Handler{
		reports:    reports,
		scoring:    scoring,
		dashboard:  dashboard,
		clients:    clients,
		companies:  companies,
		updateCli:  updateCli,
		updateLoan: updateLoan,
		ingest:     ingest,
		metrics:    metrics,
		logger:     logger,
		ready:      ready,
	}
}

// RegisterRoutes registers all HTTP routes. Everything under /api requires a
// valid staff token; analyst edits and file uploads additionally require the
// corresponding role.
func (h *Handler) RegisterRoutes(router *gin.Engine, jwtService *auth.JWTService) {
	router.GET("/healthz", h.Health)
	router.GET("/readyz", h.Ready)

	api := router.Group("/api")
	api.Use(auth.Middleware(jwtService))
	if h.metrics != nil {
		api.Use(h.observe())
	}
	{
		api.GET("/reports/:identifier", h.GetCreditReport)
		api.POST("/risk-score", h.ScoreReport)
		api.GET("/dashboard", h.GetDashboard)

		api.GET("/clients", h.ListClients)
		api.PUT("/clients/:id", auth.RequireRole(auth.RoleManager), h.UpdateClient)

		api.PUT("/loans/:id", auth.RequireRole(auth.RoleManager), h.UpdateLoan)

		api.GET("/companies", h.ListCompanies)

		api.POST("/files/upload", auth.RequireRole(auth.RoleManager), h.UploadFile)
	}
}

// observe records request latency per route and status.
func (h *Handler) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		h.metrics.RequestDuration.WithLabelValues(
			route, strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
