package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agarciagaray/mi-riesgo/internal/application/usecase"
	"github.com/agarciagaray/mi-riesgo/internal/domain/service"
	"github.com/agarciagaray/mi-riesgo/internal/infrastructure/persistence/memory"
	"github.com/agarciagaray/mi-riesgo/internal/presentation/rest"
	"github.com/agarciagaray/mi-riesgo/pkg/auth"
)

type fixture struct {
	router     *gin.Engine
	jwtService *auth.JWTService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	require.NoError(t, memory.Seed(context.Background(), store, time.Now().UTC()))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	resolver := service.NewLoanStatusResolver()

	reports := usecase.NewGetCreditReportUseCase(store.Clients(), store.Loans(), resolver)
	scoring := usecase.NewScoreReportUseCase(reports, nil, service.NewRiskScorer(), time.Second, logger)
	dashboard := usecase.NewAggregatePortfolioUseCase(store.Clients(), store.Loans(), store.Companies(), service.NewPortfolioAggregator())
	clients := usecase.NewListClientsUseCase(store.Clients())
	companies := usecase.NewListCompaniesUseCase(store.Companies())
	updateCli := usecase.NewUpdateClientUseCase(store.Clients(), nil)
	updateLoan := usecase.NewUpdateLoanUseCase(store.Loans(), resolver, nil)
	ingest := usecase.NewIngestFileUseCase(store.Clients(), store.Loans(), nil, logger)

	jwtService, err := auth.NewJWTService(auth.JWTConfig{Secret: "test-secret", Issuer: "miriesgo-central"})
	require.NoError(t, err)

	handler := rest.NewHandler(
		reports, scoring, dashboard, clients, companies,
		updateCli, updateLoan, ingest,
		nil, logger, nil,
	)

	router := gin.New()
	handler.RegisterRoutes(router, jwtService)
	return &fixture{router: router, jwtService: jwtService}
}

func (f *fixture) request(t *testing.T, method, path string, body any, roles ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if len(roles) > 0 {
		token, err := f.jwtService.GenerateToken(1, 1, roles)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoints(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusOK, f.request(t, http.MethodGet, "/healthz", nil).Code)
	assert.Equal(t, http.StatusOK, f.request(t, http.MethodGet, "/readyz", nil).Code)
}

func TestAPIRequiresToken(t *testing.T) {
	f := newFixture(t)

	w := f.request(t, http.MethodGet, "/api/clients", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetCreditReport(t *testing.T) {
	f := newFixture(t)

	w := f.request(t, http.MethodGet, "/api/reports/123456780", nil, auth.RoleAnalyst)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Client struct {
			NationalIdentifier string `json:"national_identifier"`
		} `json:"client"`
		Loans []struct {
			DisplayStatus string `json:"display_status"`
		} `json:"loans"`
		DebtSummary struct {
			TotalCredits int `json:"total_credits"`
		} `json:"debt_summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "123456780", resp.Client.NationalIdentifier)
	require.Len(t, resp.Loans, 1)
	assert.Equal(t, "Vigente", resp.Loans[0].DisplayStatus)
	assert.Equal(t, 1, resp.DebtSummary.TotalCredits)
}

func TestGetCreditReport_NotFound(t *testing.T) {
	f := newFixture(t)

	w := f.request(t, http.MethodGet, "/api/reports/000000000", nil, auth.RoleAnalyst)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestScoreReportEndpoint(t *testing.T) {
	f := newFixture(t)

	w := f.request(t, http.MethodPost, "/api/risk-score",
		map[string]string{"national_identifier": "303030303"}, auth.RoleAnalyst)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Score      int    `json:"score"`
		Assessment string `json:"assessment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// The seeded client carries the Fraude flag.
	assert.Equal(t, 320, resp.Score)
	assert.Equal(t, "Muy Alto", resp.Assessment)
}

func TestDashboardEndpoint(t *testing.T) {
	f := newFixture(t)

	w := f.request(t, http.MethodGet, "/api/dashboard", nil, auth.RoleAnalyst)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		General struct {
			TotalClients     int            `json:"total_clients"`
			MoraDistribution map[string]int `json:"mora_distribution"`
		} `json:"general"`
		Company []json.RawMessage `json:"company"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.General.TotalClients)
	assert.Len(t, resp.Company, 1)
}

func TestUpdateLoanRequiresManagerRole(t *testing.T) {
	f := newFixture(t)

	body := map[string]any{"status": "Pagado"}

	w := f.request(t, http.MethodPut, "/api/loans/1000", body, auth.RoleAnalyst)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.request(t, http.MethodPut, "/api/loans/1000", body, auth.RoleManager)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateClientEndpoint(t *testing.T) {
	f := newFixture(t)

	// Seeded client IDs are assigned in order; 1 is Carlos.
	body := map[string]any{
		"full_name": "Carlos Andrés García Martínez",
		"address":   "Nueva Calle 1 # 2-3, Bogotá",
		"flags":     []string{},
	}
	w := f.request(t, http.MethodPut, "/api/clients/1", body, auth.RoleManager)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Addresses []struct {
			Value string `json:"value"`
		} `json:"addresses"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Addresses)
	assert.Equal(t, "Nueva Calle 1 # 2-3, Bogotá", resp.Addresses[0].Value)
}

func TestUploadFileEndpoint(t *testing.T) {
	f := newFixture(t)

	body := map[string]any{
		"file_name": "reporte_202406.txt",
		"records": []map[string]any{
			{
				"client_national_identifier": "710000001",
				"client_full_name":           "Nuevo Cliente Pruebas",
				"client_birth_date":          "1991-02-10",
				"company_id":                 1,
				"loan_id":                    9001,
				"origination_date":           "2024-05-01",
				"original_amount":            "2500000",
				"modality":                   "Mensual",
				"interest_rate":              "2.3",
				"installments":               10,
				"current_balance":            "2500000",
				"status":                     "Vigente",
			},
		},
	}

	w := f.request(t, http.MethodPost, "/api/files/upload", body, auth.RoleManager)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status     string `json:"status"`
		NewClients int    `json:"new_clients"`
		NewLoans   int    `json:"new_loans"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 1, resp.NewClients)
	assert.Equal(t, 1, resp.NewLoans)

	// The ingested person is immediately consultable.
	report := f.request(t, http.MethodGet, "/api/reports/710000001", nil, auth.RoleAnalyst)
	assert.Equal(t, http.StatusOK, report.Code)
}
