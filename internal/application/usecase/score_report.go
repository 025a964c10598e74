package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agarciagaray/mi-riesgo/internal/application/dto"
	"github.com/agarciagaray/mi-riesgo/internal/domain/port"
	"github.com/agarciagaray/mi-riesgo/internal/domain/service"
)

// defaultScoringTimeout bounds the remote scoring call so a slow
// collaborator never blocks the report view.
const defaultScoringTimeout = 5 * time.Second

// ScoreReportUseCase computes the risk score for a person's credit report.
// When a remote scoring collaborator is configured its answer is preferred
// verbatim; any failure falls back to the local deterministic scorer in a
// single attempt, with no retries. Scoring failures never reach the user.
type ScoreReportUseCase struct {
	reports       *GetCreditReportUseCase
	scoringClient port.ScoringClient // nil = local scoring only
	scorer        *service.RiskScorer
	timeout       time.Duration
	logger        *slog.Logger
}

// NewScoreReportUseCase wires dependencies. scoringClient may be nil.
func NewScoreReportUseCase(
	reports *GetCreditReportUseCase,
	scoringClient port.ScoringClient,
	scorer *service.RiskScorer,
	timeout time.Duration,
	logger *slog.Logger,
) *ScoreReportUseCase {
	if timeout <= 0 {
		timeout = defaultScoringTimeout
	}
	return &ScoreReportUseCase{
		reports:       reports,
		scoringClient: scoringClient,
		scorer:        scorer,
		timeout:       timeout,
		logger:        logger,
	}
}

// Execute scores the report identified by the national identifier.
func (uc *ScoreReportUseCase) Execute(
	ctx context.Context,
	req dto.ScoreReportRequest,
) (dto.RiskScoreResponse, error) {
	report, err := uc.reports.Assemble(ctx, req.NationalIdentifier)
	if err != nil {
		return dto.RiskScoreResponse{}, fmt.Errorf("assemble report: %w", err)
	}

	if uc.scoringClient != nil {
		scoreCtx, cancel := context.WithTimeout(ctx, uc.timeout)
		defer cancel()

		score, err := uc.scoringClient.ScoreReport(scoreCtx, report)
		if err == nil {
			return toRiskScoreResponse(score), nil
		}
		uc.logger.WarnContext(ctx, "remote scoring failed, using local scorer",
			"national_identifier", req.NationalIdentifier,
			"error", err,
		)
	}

	return toRiskScoreResponse(uc.scorer.Score(report)), nil
}
