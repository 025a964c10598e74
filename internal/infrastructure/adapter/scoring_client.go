package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agarciagaray/mi-riesgo/internal/domain/model"
	"github.com/agarciagaray/mi-riesgo/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Remote scoring adapter
// ---------------------------------------------------------------------------

// ScoringClientConfig holds configuration for the remote scoring service.
type ScoringClientConfig struct {
	// BaseURL is the base URL of the scoring API.
	BaseURL string
	// APIKey authenticates requests to the scoring service.
	APIKey string
	// Timeout bounds each HTTP call.
	Timeout time.Duration
}

// RemoteScoringClient implements port.ScoringClient against an external
// scoring API. Callers own the fallback policy: any error returned here
// makes the use case score locally instead.
type RemoteScoringClient struct {
	config ScoringClientConfig
	client *http.Client
}

// NewRemoteScoringClient creates the adapter. A nil httpClient gets a
// default client bound to the configured timeout.
func NewRemoteScoringClient(config ScoringClientConfig, httpClient *http.Client) *RemoteScoringClient {
	if httpClient == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &RemoteScoringClient{config: config, client: httpClient}
}

// scoreRequest is the wire payload sent to the scoring service. Only the
// facts relevant to scoring travel; contact data stays home.
type scoreRequest struct {
	NationalIdentifier string          `json:"national_identifier"`
	Flags              []string        `json:"flags"`
	Loans              []scoreLoan     `json:"loans"`
	TotalOriginal      decimal.Decimal `json:"total_original_amount"`
	TotalBalance       decimal.Decimal `json:"total_current_balance"`
}

type scoreLoan struct {
	Status        string `json:"status"`
	Installments  int    `json:"installments"`
	PaidCount     int    `json:"paid_count"`
	OverdueCount  int    `json:"overdue_count"`
	MaxDaysLate   int    `json:"max_days_late"`
	TotalPayments int    `json:"total_payments"`
}

type scoreResponse struct {
	Score      int    `json:"score"`
	Assessment string `json:"assessment"`
	Reasoning  string `json:"reasoning"`
}

// ScoreReport calls the remote scoring API and maps its answer into the
// domain result.
func (c *RemoteScoringClient) ScoreReport(ctx context.Context, report model.CreditReport) (model.RiskScore, error) {
	loans := make([]scoreLoan, 0, len(report.Loans))
	for _, loan := range report.Loans {
		loans = append(loans, scoreLoan{
			Status:        loan.Status().String(),
			Installments:  loan.Installments(),
			PaidCount:     loan.PaidCount(),
			OverdueCount:  loan.OverdueCount(),
			MaxDaysLate:   loan.MaxDaysLate(),
			TotalPayments: len(loan.Payments()),
		})
	}

	body, err := json.Marshal(scoreRequest{
		NationalIdentifier: report.Client.NationalIdentifier(),
		Flags:              report.Client.Flags(),
		Loans:              loans,
		TotalOriginal:      report.DebtSummary.TotalOriginalAmount,
		TotalBalance:       report.DebtSummary.TotalCurrentBalance,
	})
	if err != nil {
		return model.RiskScore{}, fmt.Errorf("marshal scoring request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/v1/score", bytes.NewReader(body))
	if err != nil {
		return model.RiskScore{}, fmt.Errorf("build scoring request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return model.RiskScore{}, fmt.Errorf("scoring request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return model.RiskScore{}, fmt.Errorf("scoring service returned status %d", resp.StatusCode)
	}

	var payload scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return model.RiskScore{}, fmt.Errorf("decode scoring response: %w", err)
	}

	assessment, err := valueobject.NewRiskAssessment(payload.Assessment)
	if err != nil {
		return model.RiskScore{}, fmt.Errorf("scoring response: %w", err)
	}
	if payload.Score < 300 || payload.Score > 850 {
		return model.RiskScore{}, fmt.Errorf("scoring response out of range: %d", payload.Score)
	}

	return model.RiskScore{
		Score:      payload.Score,
		Assessment: assessment,
		Reasoning:  payload.Reasoning,
	}, nil
}
